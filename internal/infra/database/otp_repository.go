package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kundurahul/peace-trail-backend/internal/entity"
)

// ErrOTPNotFound is returned when no code was ever issued for the email.
var ErrOTPNotFound = errors.New("no otp record for email")

const otpCollection = "otp-verification"

type OTPRepository struct {
	coll *mongo.Collection
}

func NewOTPRepository(client *mongo.Client, dbName string) *OTPRepository {
	return &OTPRepository{
		coll: client.Database(dbName).Collection(otpCollection),
	}
}

// Upsert overwrites the live code for the email. Last write wins; no
// history is kept.
func (r *OTPRepository) Upsert(ctx context.Context, record entity.OTPRecord) error {
	filter := bson.M{"_id": record.Email}
	update := bson.M{"$set": bson.M{"otp": record.Code, "time": record.IssuedAt}}

	_, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// FindByEmail returns the live record, or ErrOTPNotFound.
func (r *OTPRepository) FindByEmail(ctx context.Context, email string) (*entity.OTPRecord, error) {
	var record entity.OTPRecord
	err := r.coll.FindOne(ctx, bson.M{"_id": email}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOTPNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes the record; used by the single-use verification policy.
func (r *OTPRepository) Delete(ctx context.Context, email string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": email})
	return err
}
