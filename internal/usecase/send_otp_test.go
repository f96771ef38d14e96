package usecase_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
	"github.com/kundurahul/peace-trail-backend/internal/usecase"
)

func TestSendOTPSuccess(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockOTPRepository)
	mockMailer := new(MockOTPMailer)

	var savedRecord entity.OTPRecord
	mockRepo.On("Upsert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		savedRecord = args.Get(1).(entity.OTPRecord)
	}).Return(nil)

	var mailedCode string
	mockMailer.On("SendOTP", "a@x.com", mock.Anything).Run(func(args mock.Arguments) {
		mailedCode = args.String(1)
	}).Return(nil)

	uc := usecase.NewSendOTPUseCase(mockRepo, mockMailer)
	result := uc.Execute(ctx, "a@x.com")

	assert.Equal(t, usecase.StatusSuccess, result.Status)

	// The mailed code is the persisted code and has exactly 6 digits.
	assert.Equal(t, savedRecord.Code, mailedCode)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{5}$`), mailedCode)
	assert.Equal(t, "a@x.com", savedRecord.Email)

	_, err := time.Parse(time.RFC3339, savedRecord.IssuedAt)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestSendOTPEmptyEmail(t *testing.T) {
	uc := usecase.NewSendOTPUseCase(new(MockOTPRepository), new(MockOTPMailer))

	result := uc.Execute(context.Background(), "")

	assert.Equal(t, usecase.StatusFail, result.Status)
}

func TestSendOTPPersistenceFailureSkipsDelivery(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockOTPRepository)
	mockMailer := new(MockOTPMailer)
	mockRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("mongo down"))

	uc := usecase.NewSendOTPUseCase(mockRepo, mockMailer)
	result := uc.Execute(ctx, "a@x.com")

	assert.Equal(t, usecase.StatusFail, result.Status)
	assert.Equal(t, "Could not save OTP.", result.Message)
	mockMailer.AssertNotCalled(t, "SendOTP", mock.Anything, mock.Anything)
}

func TestSendOTPDeliveryFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockOTPRepository)
	mockMailer := new(MockOTPMailer)
	mockRepo.On("Upsert", ctx, mock.Anything).Return(nil)
	mockMailer.On("SendOTP", "a@x.com", mock.Anything).Return(errors.New("smtp refused"))

	uc := usecase.NewSendOTPUseCase(mockRepo, mockMailer)
	result := uc.Execute(ctx, "a@x.com")

	assert.Equal(t, usecase.StatusFail, result.Status)
	assert.Equal(t, "Could not deliver OTP.", result.Message)
	// The code was still persisted before delivery failed.
	mockRepo.AssertNumberOfCalls(t, "Upsert", 1)
}
