package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/zoho"
	"github.com/kundurahul/peace-trail-backend/internal/infra/queue"
)

// BookPackageUseCase runs the confirmation pipeline: resolve the customer
// in Zoho, invoice them, and save the booking row. The pipeline is
// lossy-forward: invoicing trouble is downgraded to a warning and the row
// is saved with the fallback invoice id, because a guest who paid a deposit
// must never lose their seat over a billing hiccup.
type BookPackageUseCase struct {
	Gateway InvoiceGateway
	Store   BookingStore
	Alerts  AlertProducerInterface // optional, may be nil
	CCEmail string
}

func NewBookPackageUseCase(gateway InvoiceGateway, store BookingStore, alerts AlertProducerInterface, ccEmail string) *BookPackageUseCase {
	return &BookPackageUseCase{
		Gateway: gateway,
		Store:   store,
		Alerts:  alerts,
		CCEmail: ccEmail,
	}
}

func (uc *BookPackageUseCase) Execute(ctx context.Context, req entity.BookingRequest) BookingResult {
	// Two independent gates, both before any external call.
	if err := req.ValidateContact(); err != nil {
		return BookingResult{Status: StatusFail, Message: "Invalid Customer Details"}
	}
	if err := req.ValidateTrip(); err != nil {
		return BookingResult{Status: StatusFail, Message: "Invalid Booking Details"}
	}

	ref := uuid.New().String()
	var warnings []string

	customerID, err := uc.resolveCustomer(req)
	if err != nil {
		log.Printf("booking %s: customer resolution failed: %v", ref, err)
		warnings = append(warnings, "customer resolution failed: "+err.Error())
		customerID = ""
	}

	invoiceID := entity.FallbackInvoiceID
	if customerID == "" {
		warnings = append(warnings, "invoicing skipped: no usable customer id")
	} else {
		id, err := uc.sendInvoice(customerID, req)
		if err != nil {
			log.Printf("booking %s: invoicing failed: %v", ref, err)
			warnings = append(warnings, "invoicing failed: "+err.Error())
		} else {
			invoiceID = id
		}
	}

	record := entity.BookingRecord{
		InvoiceID: invoiceID,
		PackageID: req.PackageID,
		Email:     req.Email,
		StartDate: req.TourDate,
	}
	if err := uc.Store.SaveBooking(record); err != nil {
		log.Printf("booking %s: sheet save failed: %v", ref, err)
		return BookingResult{
			Status:     StatusFail,
			Message:    "Can't save in Google Sheet.",
			BookingRef: ref,
			Warnings:   warnings,
		}
	}

	if len(warnings) > 0 {
		uc.publishAlert(ctx, ref, req, invoiceID, warnings)
	}

	return BookingResult{
		Status:     StatusSuccess,
		Message:    "Booking Saved.",
		BookingRef: ref,
		Warnings:   warnings,
	}
}

// resolveCustomer returns the Zoho contact id for the email, creating the
// contact when it does not exist. Lookup never mutates an existing contact.
func (uc *BookPackageUseCase) resolveCustomer(req entity.BookingRequest) (string, error) {
	contactID, err := uc.Gateway.FindContactByEmail(req.Email)
	if err != nil {
		return "", fmt.Errorf("contact lookup: %w", err)
	}
	if contactID != "" {
		return contactID, nil
	}

	contactID, err = uc.Gateway.CreateContact(zoho.CreateContactInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Mobile,
	})
	if err != nil {
		return "", fmt.Errorf("contact creation: %w", err)
	}
	return contactID, nil
}

// sendInvoice creates the invoice and triggers Zoho's mailer. An error in
// either step discards the invoice id; no cancellation is attempted.
func (uc *BookPackageUseCase) sendInvoice(customerID string, req entity.BookingRequest) (string, error) {
	invoiceID, err := uc.Gateway.CreateInvoice(zoho.CreateInvoiceInput{
		CustomerID:   customerID,
		PackageID:    req.PackageID,
		PackageTitle: req.PackageTitle,
		TourDate:     req.TourDate,
		Rate:         req.Price,
		Quantity:     req.Persons,
	})
	if err != nil {
		return "", fmt.Errorf("invoice creation: %w", err)
	}

	err = uc.Gateway.EmailInvoice(zoho.EmailInvoiceInput{
		InvoiceID:    invoiceID,
		ToEmail:      req.Email,
		CCEmail:      uc.CCEmail,
		PackageTitle: req.PackageTitle,
	})
	if err != nil {
		return "", fmt.Errorf("invoice delivery: %w", err)
	}
	return invoiceID, nil
}

func (uc *BookPackageUseCase) publishAlert(ctx context.Context, ref string, req entity.BookingRequest, invoiceID string, warnings []string) {
	if uc.Alerts == nil {
		return
	}
	err := uc.Alerts.PublishBookingAlert(ctx, queue.BookingAlertPayload{
		BookingRef:   ref,
		Email:        req.Email,
		PackageID:    req.PackageID,
		PackageTitle: req.PackageTitle,
		TourDate:     req.TourDate,
		InvoiceID:    invoiceID,
		Warnings:     warnings,
	})
	if err != nil {
		log.Printf("booking %s: alert publish failed: %v", ref, err)
	}
}
