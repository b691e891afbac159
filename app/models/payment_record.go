package models

import "time"

// PaymentIntentSucceeded is the provider status of a completed payment.
const PaymentIntentSucceeded = "succeeded"

// PaymentRecord is a transient projection of a Stripe payment intent used by
// the analytics view. Amount is in minor units.
type PaymentRecord struct {
	ID          string
	Status      string
	Amount      int64
	Currency    string
	Description string
	CreatedAt   time.Time
}

// Succeeded reports whether the payment completed.
func (r *PaymentRecord) Succeeded() bool {
	return r.Status == PaymentIntentSucceeded
}

// DateKey returns the local calendar date of the payment, used as the
// analytics grouping key.
func (r *PaymentRecord) DateKey() string {
	return r.CreatedAt.Local().Format("2006-01-02")
}
