package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/kundurahul/peace-trail-backend/internal/infra/database"
)

type VerifyOTPUseCase struct {
	Repo OTPRepositoryInterface

	// SingleUse deletes the record after a successful verification, so a
	// verified code cannot be replayed inside its window.
	SingleUse bool
	Now       func() time.Time
}

func NewVerifyOTPUseCase(repo OTPRepositoryInterface, singleUse bool) *VerifyOTPUseCase {
	return &VerifyOTPUseCase{
		Repo:      repo,
		SingleUse: singleUse,
		Now:       time.Now,
	}
}

// Execute compares the submitted code against the stored record. Expiry is
// checked before the code itself, so a stale-but-correct code reports
// "expired", and a wrong code inside the window reports "wrong", never the
// other way around.
func (uc *VerifyOTPUseCase) Execute(ctx context.Context, email, code string) StatusResult {
	if email == "" || code == "" {
		return StatusResult{Status: StatusFail, Message: "Email and OTP are required."}
	}

	record, err := uc.Repo.FindByEmail(ctx, email)
	if errors.Is(err, database.ErrOTPNotFound) {
		return StatusResult{Status: StatusFail, Message: "No OTP issued for this email."}
	}
	if err != nil {
		log.Printf("otp lookup failed for %s: %v", email, err)
		return StatusResult{Status: StatusFail, Message: "Could not verify OTP."}
	}

	expired, err := record.Expired(uc.Now())
	if err != nil {
		log.Printf("otp record for %s has a bad timestamp: %v", email, err)
		return StatusResult{Status: StatusFail, Message: "Could not verify OTP."}
	}
	if expired {
		return StatusResult{Status: StatusInvalid, Message: "OTP expired."}
	}

	if record.Code != code {
		return StatusResult{Status: StatusInvalid, Message: "Wrong OTP."}
	}

	if uc.SingleUse {
		if err := uc.Repo.Delete(ctx, email); err != nil {
			log.Printf("otp cleanup failed for %s: %v", email, err)
		}
	}

	return StatusResult{Status: StatusSuccess, Message: "Email verified."}
}
