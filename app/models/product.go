package models

// Product is a read-through projection of a Stripe product. It is never
// persisted locally; every view rebuilds it from the provider response.
type Product struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	Metadata    map[string]string
}
