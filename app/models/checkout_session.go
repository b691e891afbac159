package models

// Checkout session modes as sent to the provider.
const (
	CheckoutModePayment      = "payment"
	CheckoutModeSubscription = "subscription"
)

// CheckoutSession is an ephemeral provider-hosted payment flow. Only the
// redirect URL is surfaced to the caller.
type CheckoutSession struct {
	ID   string
	URL  string
	Mode string
}
