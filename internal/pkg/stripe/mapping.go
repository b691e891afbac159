package stripe

import (
	"time"

	stripeapi "github.com/stripe/stripe-go/v82"

	"github.com/stripeboard/stripeboard/app/models"
)

// The provider boundary maps every raw Stripe object to a typed record and
// rejects responses missing required fields instead of passing loosely-typed
// data into the views.

func productFromAPI(p *stripeapi.Product) (models.Product, error) {
	if p == nil || p.ID == "" {
		return models.Product{}, NewError(CodeMalformedResponse, "product response missing id", nil)
	}

	product := models.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Metadata:    p.Metadata,
	}
	if len(p.Images) > 0 {
		product.ImageURL = p.Images[0]
	}
	return product, nil
}

func priceFromAPI(p *stripeapi.Price) (models.Price, error) {
	if p == nil || p.ID == "" {
		return models.Price{}, NewError(CodeMalformedResponse, "price response missing id", nil)
	}
	if p.Product == nil || p.Product.ID == "" {
		return models.Price{}, NewError(CodeMalformedResponse, "price response missing product reference", nil)
	}

	price := models.Price{
		ID:         p.ID,
		ProductID:  p.Product.ID,
		UnitAmount: p.UnitAmount,
		Currency:   string(p.Currency),
		Nickname:   p.Nickname,
	}
	if p.Recurring != nil {
		price.RecurringInterval = string(p.Recurring.Interval)
	}
	return price, nil
}

func paymentRecordFromAPI(pi *stripeapi.PaymentIntent) (models.PaymentRecord, error) {
	if pi == nil || pi.ID == "" {
		return models.PaymentRecord{}, NewError(CodeMalformedResponse, "payment intent response missing id", nil)
	}

	description := pi.Description
	if description == "" {
		description = "Payment"
	}
	return models.PaymentRecord{
		ID:          pi.ID,
		Status:      string(pi.Status),
		Amount:      pi.Amount,
		Currency:    string(pi.Currency),
		Description: description,
		CreatedAt:   time.Unix(pi.Created, 0),
	}, nil
}

func sessionFromAPI(s *stripeapi.CheckoutSession) (models.CheckoutSession, error) {
	if s == nil || s.ID == "" || s.URL == "" {
		return models.CheckoutSession{}, NewError(CodeMalformedResponse, "checkout session response missing id or url", nil)
	}

	return models.CheckoutSession{
		ID:   s.ID,
		URL:  s.URL,
		Mode: string(s.Mode),
	}, nil
}

func accountFromAPI(a *stripeapi.Account) (models.Account, error) {
	if a == nil || a.ID == "" {
		return models.Account{}, NewError(CodeMalformedResponse, "account response missing id", nil)
	}

	return models.Account{
		ID:              a.ID,
		Email:           a.Email,
		Country:         a.Country,
		DefaultCurrency: string(a.DefaultCurrency),
	}, nil
}
