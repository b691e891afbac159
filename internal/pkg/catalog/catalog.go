// Package catalog assembles the product/price cards for the storefront view
// and initiates provider-hosted checkout sessions.
package catalog

import (
	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

const (
	productLimit = 100
	priceLimit   = 10

	// PlaceholderImage is shown for products without an image.
	PlaceholderImage = "https://via.placeholder.com/300x200?text=No+Image"

	// Card labels for the two billing cadences.
	LabelSubscription = "Subscription"
	LabelOneTime      = "One-time payment"
)

// API is the slice of the Stripe boundary the catalog view needs.
type API interface {
	ListProducts(limit int64) ([]models.Product, error)
	ListPrices(productID string, limit int64) ([]models.Price, error)
	CreateCheckoutSession(in stripe.CheckoutInput) (models.CheckoutSession, error)
}

// Card is one (product, price) pair rendered on the catalog page.
type Card struct {
	ProductID      string
	ProductName    string
	Description    string
	ImageURL       string
	PriceID        string
	FormattedPrice string
	Recurring      bool
	Label          string
}

// Service loads catalog data fresh on every page load; nothing is cached
// between requests.
type Service struct {
	api     API
	baseURL string
}

func NewService(api API, baseURL string) *Service {
	return &Service{api: api, baseURL: baseURL}
}

// Cards fetches up to 100 products and up to 10 prices each, producing one
// card per (product, price) pair in provider order.
func (s *Service) Cards() ([]Card, error) {
	products, err := s.api.ListProducts(productLimit)
	if err != nil {
		return nil, err
	}

	var cards []Card
	for _, product := range products {
		prices, err := s.api.ListPrices(product.ID, priceLimit)
		if err != nil {
			return nil, err
		}
		for i := range prices {
			cards = append(cards, buildCard(product, prices[i]))
		}
	}
	return cards, nil
}

// Checkout creates a checkout session for one unit of the given price and
// returns the redirect URL. The session mode follows the price's cadence and
// the success/cancel URLs lead back to the catalog with a query marker.
func (s *Service) Checkout(priceID string, recurring bool) (string, error) {
	session, err := s.api.CreateCheckoutSession(stripe.CheckoutInput{
		PriceID:    priceID,
		Recurring:  recurring,
		SuccessURL: s.baseURL + "/?success=true",
		CancelURL:  s.baseURL + "/?canceled=true",
	})
	if err != nil {
		return "", err
	}
	return session.URL, nil
}

func buildCard(product models.Product, price models.Price) Card {
	card := Card{
		ProductID:      product.ID,
		ProductName:    product.Name,
		Description:    product.Description,
		ImageURL:       product.ImageURL,
		PriceID:        price.ID,
		FormattedPrice: price.Formatted(),
		Recurring:      price.Recurring(),
		Label:          LabelOneTime,
	}
	if card.Description == "" {
		card.Description = "No description"
	}
	if card.ImageURL == "" {
		card.ImageURL = PlaceholderImage
	}
	if card.Recurring {
		card.Label = LabelSubscription
	}
	return card
}
