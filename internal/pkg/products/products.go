// Package products implements the product/price creation workflow and the
// recently-created listing behind the creation form.
package products

import (
	"errors"
	"fmt"

	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

const recentLimit = 5

// ErrInvalid marks local validation failures. No provider call has been made
// when Create returns an error wrapping it.
var ErrInvalid = errors.New("invalid product form")

// PartialError reports a price creation that failed after the product was
// already created. The product now exists on the provider without its
// intended price and must not be silently discarded.
type PartialError struct {
	ProductID string
	Err       error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("price creation failed, product %s was created without a price: %v", e.ProductID, e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// API is the slice of the Stripe boundary the creation form needs.
type API interface {
	CreateProduct(in stripe.ProductInput) (models.Product, error)
	CreatePrice(in stripe.PriceInput) (models.Price, error)
	ListProducts(limit int64) ([]models.Product, error)
	ListPrices(productID string, limit int64) ([]models.Price, error)
}

// CreateResult summarizes a fully successful product-then-price creation.
type CreateResult struct {
	Product models.Product
	Price   models.Price
}

// Summary is the confirmation line shown to the user.
func (r *CreateResult) Summary() string {
	return fmt.Sprintf("Product created successfully! Product ID: %s, Name: %s, Price ID: %s, Price: %s",
		r.Product.ID, r.Product.Name, r.Price.ID, r.Price.FormattedWithInterval())
}

// RecentItem is one entry of the recently-created list. Price is nil when
// the product has no price yet.
type RecentItem struct {
	Product models.Product
	Price   *models.Price
}

// Description returns the product description or its fallback text.
func (r *RecentItem) Description() string {
	if r.Product.Description == "" {
		return "No description"
	}
	return r.Product.Description
}

// PriceInfo returns the formatted latest price or its fallback text.
func (r *RecentItem) PriceInfo() string {
	if r.Price == nil {
		return "No price set"
	}
	return r.Price.FormattedWithInterval()
}

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Create validates the form locally and then creates a product followed by a
// price referencing it. Validation failures return before any provider call.
// A price failure after a successful product creation returns a PartialError
// naming the orphaned product.
func (s *Service) Create(form *models.ProductForm) (*CreateResult, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	amount, err := form.MinorUnits()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	product, err := s.api.CreateProduct(stripe.ProductInput{
		Name:        form.Name,
		Description: form.Description,
		ImageURL:    form.ImageURL,
		Metadata:    form.Metadata(),
	})
	if err != nil {
		return nil, err
	}

	priceInput := stripe.PriceInput{
		ProductID:  product.ID,
		UnitAmount: amount,
		Currency:   form.Currency,
		Nickname:   form.Nickname,
	}
	if form.Recurring() {
		priceInput.RecurringInterval = form.Interval
	}

	price, err := s.api.CreatePrice(priceInput)
	if err != nil {
		return nil, &PartialError{ProductID: product.ID, Err: err}
	}

	return &CreateResult{Product: product, Price: price}, nil
}

// Recent fetches the 5 most recent products and, for each, its most recently
// created price if any. Best effort: the caller renders an inline error in
// place of the list on failure.
func (s *Service) Recent() ([]RecentItem, error) {
	products, err := s.api.ListProducts(recentLimit)
	if err != nil {
		return nil, err
	}

	items := make([]RecentItem, 0, len(products))
	for _, product := range products {
		item := RecentItem{Product: product}
		prices, err := s.api.ListPrices(product.ID, 1)
		if err != nil {
			return nil, err
		}
		if len(prices) > 0 {
			item.Price = &prices[0]
		}
		items = append(items, item)
	}
	return items, nil
}
