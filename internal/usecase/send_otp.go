package usecase

import (
	"context"
	"crypto/rand"
	"log"
	"math/big"
	"net/mail"
	"strconv"
	"time"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
)

type SendOTPUseCase struct {
	Repo   OTPRepositoryInterface
	Mailer OTPMailer
	Now    func() time.Time
}

func NewSendOTPUseCase(repo OTPRepositoryInterface, mailer OTPMailer) *SendOTPUseCase {
	return &SendOTPUseCase{
		Repo:   repo,
		Mailer: mailer,
		Now:    time.Now,
	}
}

// Execute issues a fresh code for the email, overwriting any previous one,
// and delivers it by mail. The code is never returned to the caller.
func (uc *SendOTPUseCase) Execute(ctx context.Context, email string) StatusResult {
	if email == "" {
		return StatusResult{Status: StatusFail, Message: "Email absent."}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return StatusResult{Status: StatusFail, Message: "Invalid email address."}
	}

	code, err := generateCode()
	if err != nil {
		log.Printf("otp generation failed: %v", err)
		return StatusResult{Status: StatusFail, Message: "Could not generate OTP."}
	}

	record := entity.OTPRecord{
		Email:    email,
		Code:     code,
		IssuedAt: uc.Now().UTC().Format(time.RFC3339),
	}

	if err := uc.Repo.Upsert(ctx, record); err != nil {
		log.Printf("otp save failed for %s: %v", email, err)
		return StatusResult{Status: StatusFail, Message: "Could not save OTP."}
	}

	if err := uc.Mailer.SendOTP(email, code); err != nil {
		// The persisted code stays live; a re-send just overwrites it.
		log.Printf("otp delivery failed for %s: %v", email, err)
		return StatusResult{Status: StatusFail, Message: "Could not deliver OTP."}
	}

	return StatusResult{Status: StatusSuccess, Message: "OTP sent."}
}

// generateCode draws a uniform 6-digit code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
