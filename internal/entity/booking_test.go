package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContact(t *testing.T) {
	b := BookingRequest{Name: "R", Email: "r@x.com", Mobile: "9999999999"}
	assert.NoError(t, b.ValidateContact())

	b.Email = ""
	assert.Error(t, b.ValidateContact())
}

func TestValidateTrip(t *testing.T) {
	b := BookingRequest{
		PackageID:    "P1",
		PackageTitle: "Goa Trip",
		TourDate:     "2025-01-10",
		Price:        5000,
		Persons:      2,
	}
	assert.NoError(t, b.ValidateTrip())

	b.Persons = 0
	assert.Error(t, b.ValidateTrip())

	b.Persons = 1
	b.Price = 0
	assert.Error(t, b.ValidateTrip())

	b.Price = 5000
	b.TourDate = ""
	assert.Error(t, b.ValidateTrip())
}
