package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kundurahul/peace-trail-backend/internal/infra/http/middleware"
	"github.com/kundurahul/peace-trail-backend/internal/usecase"
)

type OTPHandler struct {
	SendUC   *usecase.SendOTPUseCase
	VerifyUC *usecase.VerifyOTPUseCase
}

func NewOTPHandler(sendUC *usecase.SendOTPUseCase, verifyUC *usecase.VerifyOTPUseCase) *OTPHandler {
	return &OTPHandler{SendUC: sendUC, VerifyUC: verifyUC}
}

func (h *OTPHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.SendUC.Execute(r.Context(), input.Email)
	middleware.RecordOTPIssued(result.Status)

	writeJSON(w, http.StatusOK, result)
}

func (h *OTPHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := h.VerifyUC.Execute(r.Context(), input.Email, input.OTP)
	middleware.RecordOTPVerified(result.Status)

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
