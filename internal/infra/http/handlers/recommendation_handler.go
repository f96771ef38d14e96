package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kundurahul/peace-trail-backend/internal/infra/http/middleware"
	"github.com/kundurahul/peace-trail-backend/internal/usecase"
)

type RecommendationHandler struct {
	RecommendUC *usecase.RecommendUseCase
}

func NewRecommendationHandler(recommendUC *usecase.RecommendUseCase) *RecommendationHandler {
	return &RecommendationHandler{RecommendUC: recommendUC}
}

func (h *RecommendationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.RecommendUC.Execute(r.Context(), input.Prompt)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		middleware.RecordIntegrationError("groq")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, output)
}
