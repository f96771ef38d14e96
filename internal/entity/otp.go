package entity

import "time"

// OTPTTL is how long an issued code stays verifiable.
const OTPTTL = 5 * time.Minute

// OTPRecord is the document stored in the otp-verification collection.
// The email is the document key, so there is at most one live code per
// address and a re-issue overwrites the previous one.
type OTPRecord struct {
	Email    string `bson:"_id"`
	Code     string `bson:"otp"`
	IssuedAt string `bson:"time"` // RFC 3339
}

// Expired reports whether the record is past its window at the given instant.
func (r OTPRecord) Expired(now time.Time) (bool, error) {
	issued, err := time.Parse(time.RFC3339, r.IssuedAt)
	if err != nil {
		return false, err
	}
	return now.Sub(issued) > OTPTTL, nil
}
