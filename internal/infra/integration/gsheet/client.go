package gsheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
)

// Client wraps the Google Apps Script deployment that fronts the packages
// and bookings spreadsheet.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetAllPackages fetches every package row and coerces the sheet's loosely
// typed cells into entity.TravelPackage.
func (c *Client) GetAllPackages() ([]entity.TravelPackage, error) {
	req, err := http.NewRequest("GET", c.url+"?action=getAllPackages", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet getAllPackages request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheet getAllPackages rejected (status %d)", resp.StatusCode)
	}

	var response packagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("sheet getAllPackages decode failed: %w", err)
	}

	return transformRows(response.Packages), nil
}

// FilterPackagesByTags asks the sheet for packages carrying any of the tags.
func (c *Client) FilterPackagesByTags(tags []string) ([]entity.TravelPackage, error) {
	var response packagesResponse
	if err := c.post(filterByTagsRequest{Action: "filterPackagesByTags", Tags: tags}, &response); err != nil {
		return nil, err
	}
	return transformRows(response.Packages), nil
}

// SaveBooking appends a booking row. The ack's success flag is the only
// signal the sheet gives back.
func (c *Client) SaveBooking(record entity.BookingRecord) error {
	var ack ackResponse
	err := c.post(saveBookingRequest{
		Action:    "saveBooking",
		ID:        record.InvoiceID,
		PackageID: record.PackageID,
		Email:     record.Email,
		StartDate: record.StartDate,
	}, &ack)
	if err != nil {
		return err
	}
	if !ack.Success {
		log.Printf("sheet saveBooking not acknowledged: %s", ack.Message)
		return fmt.Errorf("sheet did not acknowledge booking")
	}
	return nil
}

func (c *Client) post(payload interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sheet marshal failed: %w", err)
	}

	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ sheet POST (status %d): %s", resp.StatusCode, string(body))
		return fmt.Errorf("sheet rejected request (status %d)", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("sheet decode failed: %w", err)
	}
	return nil
}

func transformRows(rows []PackageRow) []entity.TravelPackage {
	packages := make([]entity.TravelPackage, 0, len(rows))
	for _, row := range rows {
		pkg := entity.TravelPackage{
			ID:          coerceString(row.ID),
			Name:        row.Name,
			Days:        coerceInt(row.Days),
			Price:       coerceInt(row.Price),
			Location:    row.Location,
			Itinerary:   row.Itinerary,
			ImageURL:    row.ImageURL,
			Description: row.Description,
			Featured:    coerceBool(row.Featured),
		}
		if pkg.ImageURL == "" {
			pkg.ImageURL = "/travel-package.jpg"
		}
		pkg.ItineraryList = entity.ParseItinerary(row.Itinerary)
		pkg.Tags = entity.ParseTags(row.Tags)
		packages = append(packages, pkg)
	}
	return packages
}

func coerceString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	default:
		return ""
	}
}

func coerceInt(v interface{}) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		var n int
		fmt.Sscanf(t, "%d", &n)
		return n
	default:
		return 0
	}
}

func coerceBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "TRUE" || t == "true"
	default:
		return false
	}
}
