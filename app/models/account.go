package models

// Account describes the Stripe account the configured credential belongs to.
// Used only by the connectivity check, never by the dashboard views.
type Account struct {
	ID              string
	Email           string
	Country         string
	DefaultCurrency string
}
