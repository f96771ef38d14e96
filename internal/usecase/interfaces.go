package usecase

import (
	"context"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/groq"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/zoho"
	"github.com/kundurahul/peace-trail-backend/internal/infra/queue"
)

type OTPRepositoryInterface interface {
	Upsert(ctx context.Context, record entity.OTPRecord) error
	FindByEmail(ctx context.Context, email string) (*entity.OTPRecord, error)
	Delete(ctx context.Context, email string) error
}

type OTPMailer interface {
	SendOTP(to, code string) error
}

// InvoiceGateway is what the booking pipeline needs from Zoho.
type InvoiceGateway interface {
	FindContactByEmail(email string) (string, error)
	CreateContact(input zoho.CreateContactInput) (string, error)
	CreateInvoice(input zoho.CreateInvoiceInput) (string, error)
	EmailInvoice(input zoho.EmailInvoiceInput) error
}

// BookingStore is the spreadsheet-backed system of record.
type BookingStore interface {
	SaveBooking(record entity.BookingRecord) error
}

// PackageCatalog reads the packages sheet.
type PackageCatalog interface {
	GetAllPackages() ([]entity.TravelPackage, error)
	FilterPackagesByTags(tags []string) ([]entity.TravelPackage, error)
}

type AlertProducerInterface interface {
	PublishBookingAlert(ctx context.Context, payload queue.BookingAlertPayload) error
}

type RecommenderInterface interface {
	Recommend(prompt string) (*groq.Recommendation, error)
}
