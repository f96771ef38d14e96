package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
	"github.com/kundurahul/peace-trail-backend/internal/infra/http/middleware"
	"github.com/kundurahul/peace-trail-backend/internal/usecase"
)

type BookingHandler struct {
	BookUC *usecase.BookPackageUseCase
}

func NewBookingHandler(bookUC *usecase.BookPackageUseCase) *BookingHandler {
	return &BookingHandler{BookUC: bookUC}
}

func (h *BookingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input entity.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.BookUC.Execute(r.Context(), input)
	middleware.RecordBooking(result.Status, len(result.Warnings) > 0)

	writeJSON(w, http.StatusOK, result)
}
