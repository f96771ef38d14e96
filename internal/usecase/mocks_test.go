package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/groq"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/zoho"
	"github.com/kundurahul/peace-trail-backend/internal/infra/queue"
)

// MockOTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Upsert(ctx context.Context, record entity.OTPRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOTPRepository) FindByEmail(ctx context.Context, email string) (*entity.OTPRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.OTPRecord), args.Error(1)
}

func (m *MockOTPRepository) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// MockOTPMailer
type MockOTPMailer struct {
	mock.Mock
}

func (m *MockOTPMailer) SendOTP(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

// MockInvoiceGateway
type MockInvoiceGateway struct {
	mock.Mock
}

func (m *MockInvoiceGateway) FindContactByEmail(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceGateway) CreateContact(input zoho.CreateContactInput) (string, error) {
	args := m.Called(input)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceGateway) CreateInvoice(input zoho.CreateInvoiceInput) (string, error) {
	args := m.Called(input)
	return args.String(0), args.Error(1)
}

func (m *MockInvoiceGateway) EmailInvoice(input zoho.EmailInvoiceInput) error {
	args := m.Called(input)
	return args.Error(0)
}

// MockBookingStore
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) SaveBooking(record entity.BookingRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

// MockCatalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetAllPackages() ([]entity.TravelPackage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TravelPackage), args.Error(1)
}

func (m *MockCatalog) FilterPackagesByTags(tags []string) ([]entity.TravelPackage, error) {
	args := m.Called(tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TravelPackage), args.Error(1)
}

// MockAlertProducer
type MockAlertProducer struct {
	mock.Mock
}

func (m *MockAlertProducer) PublishBookingAlert(ctx context.Context, payload queue.BookingAlertPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockRecommender
type MockRecommender struct {
	mock.Mock
}

func (m *MockRecommender) Recommend(prompt string) (*groq.Recommendation, error) {
	args := m.Called(prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groq.Recommendation), args.Error(1)
}
