package gsheet

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
)

func TestTransformRows(t *testing.T) {
	rows := []PackageRow{
		{
			ID:        float64(7),
			Name:      "Goa Trip",
			Days:      "4",
			Price:     float64(5000),
			Itinerary: "Day 1: Arrival | Day 2: Beach",
			Featured:  "TRUE",
			Tags:      "beach, party",
		},
	}

	packages := transformRows(rows)

	assert.Len(t, packages, 1)
	pkg := packages[0]
	assert.Equal(t, "7", pkg.ID)
	assert.Equal(t, 4, pkg.Days)
	assert.Equal(t, 5000, pkg.Price)
	assert.True(t, pkg.Featured)
	assert.Equal(t, []string{"Day 1: Arrival", "Day 2: Beach"}, pkg.ItineraryList)
	assert.Equal(t, []string{"beach", "party"}, pkg.Tags)
	// Missing image falls back to the bundled placeholder.
	assert.Equal(t, "/travel-package.jpg", pkg.ImageURL)
}

func TestSaveBookingAcknowledged(t *testing.T) {
	var got saveBookingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(ackResponse{Success: true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SaveBooking(entity.BookingRecord{
		InvoiceID: "INV-77",
		PackageID: "P1",
		Email:     "r@x.com",
		StartDate: "2025-01-10",
	})

	assert.NoError(t, err)
	assert.Equal(t, "saveBooking", got.Action)
	assert.Equal(t, "INV-77", got.ID)
	assert.Equal(t, "P1", got.PackageID)
	assert.Equal(t, "2025-01-10", got.StartDate)
}

func TestSaveBookingNotAcknowledged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ackResponse{Success: false, Message: "sheet full"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.SaveBooking(entity.BookingRecord{InvoiceID: "INV-77"})

	assert.Error(t, err)
}

func TestGetAllPackages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getAllPackages", r.URL.Query().Get("action"))
		json.NewEncoder(w).Encode(packagesResponse{
			Packages: []PackageRow{{ID: "1", Name: "Goa Trip"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	packages, err := client.GetAllPackages()

	assert.NoError(t, err)
	assert.Len(t, packages, 1)
	assert.Equal(t, "Goa Trip", packages[0].Name)
}
