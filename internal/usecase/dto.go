package usecase

import (
	"github.com/kundurahul/peace-trail-backend/internal/entity"
	"github.com/kundurahul/peace-trail-backend/internal/infra/integration/groq"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusInvalid = "invalid"
)

// StatusResult is the short status/message pair every pipeline reports back
// to the browser.
type StatusResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// BookingResult is the terminal result of the booking pipeline. Warnings
// carry degraded steps (failed lookup, skipped invoice) alongside a success
// so operators can observe them; they never change the status itself.
type BookingResult struct {
	Status     string   `json:"status"`
	Message    string   `json:"message,omitempty"`
	BookingRef string   `json:"booking_ref,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
}

type RecommendationOutput struct {
	Status   string                 `json:"status"`
	Content  *groq.Recommendation   `json:"content"`
	Packages []entity.TravelPackage `json:"packages"`
}
