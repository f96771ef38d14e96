package entity

import "errors"

// FallbackInvoiceID is written to the booking sheet when invoicing was
// skipped or failed. The row is still saved; only the invoice reference
// is a placeholder.
const FallbackInvoiceID = "0000000000"

// BookingRequest is the transient input to the booking pipeline. It is
// never persisted as-is; it is derived into an invoice and a BookingRecord.
type BookingRequest struct {
	Name         string  `json:"name"`
	Mobile       string  `json:"mobile"`
	Email        string  `json:"email"`
	PackageID    string  `json:"packageId"`
	PackageTitle string  `json:"packageTitle"`
	TourDate     string  `json:"tourDate"`
	Price        float64 `json:"price"`
	Persons      int     `json:"persons"`
}

// ValidateContact is the first gate: the fields needed to resolve or
// create a customer in the invoicing system.
func (b BookingRequest) ValidateContact() error {
	if b.Name == "" || b.Email == "" || b.Mobile == "" {
		return errors.New("name, email and mobile are required")
	}
	return nil
}

// ValidateTrip is the second gate: the fields needed to invoice and save.
func (b BookingRequest) ValidateTrip() error {
	if b.PackageID == "" || b.PackageTitle == "" || b.TourDate == "" {
		return errors.New("packageId, packageTitle and tourDate are required")
	}
	if b.Price <= 0 {
		return errors.New("price must be positive")
	}
	if b.Persons < 1 {
		return errors.New("persons must be at least 1")
	}
	return nil
}

// BookingRecord is the row written to the spreadsheet store, keyed by the
// invoice id (or FallbackInvoiceID).
type BookingRecord struct {
	InvoiceID string `json:"id"`
	PackageID string `json:"package_id"`
	Email     string `json:"email"`
	StartDate string `json:"start_date"`
}
