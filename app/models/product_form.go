package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Price types selectable in the creation form.
const (
	PriceTypeOneTime   = "one_time"
	PriceTypeRecurring = "recurring"
)

// MinimumAmount is the smallest chargeable amount in major units ($0.50).
var MinimumAmount = decimal.New(50, -2)

var (
	ErrAmountRequired = errors.New("price amount is required")
	ErrAmountInvalid  = errors.New("price amount must be a number")
	ErrAmountTooSmall = errors.New("price amount must be at least $0.50")
)

// ProductForm carries the raw creation-form input. Amount stays a string so
// that parse failures are reported as validation errors instead of being
// silently coerced.
type ProductForm struct {
	Name          string `form:"name" validate:"required"`
	Description   string `form:"description"`
	ImageURL      string `form:"image_url" validate:"omitempty,url"`
	PriceType     string `form:"price_type" validate:"oneof=one_time recurring"`
	Interval      string `form:"interval" validate:"omitempty,oneof=day week month year"`
	Amount        string `form:"amount" validate:"required"`
	Currency      string `form:"currency" validate:"oneof=usd eur gbp cad aud"`
	Nickname      string `form:"nickname"`
	MetadataKey   string `form:"metadata_key"`
	MetadataValue string `form:"metadata_value"`
}

func (f *ProductForm) Validate() error {
	v := validator.New()
	if err := v.Struct(f); err != nil {
		return err
	}
	_, err := f.MinorUnits()
	return err
}

// Recurring reports whether the form describes a subscription price.
func (f *ProductForm) Recurring() bool {
	return f.PriceType == PriceTypeRecurring
}

// MinorUnits converts the entered major-unit amount to integer minor units.
// The value is multiplied by 100 and truncated, so any two-decimal input maps
// exactly and distinct two-decimal inputs never collide.
func (f *ProductForm) MinorUnits() (int64, error) {
	if f.Amount == "" {
		return 0, ErrAmountRequired
	}
	d, err := decimal.NewFromString(f.Amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAmountInvalid, f.Amount)
	}
	if d.LessThan(MinimumAmount) {
		return 0, ErrAmountTooSmall
	}
	return d.Mul(decimal.NewFromInt(100)).IntPart(), nil
}

// Metadata returns the optional key/value pair, or nil when incomplete.
func (f *ProductForm) Metadata() map[string]string {
	if f.MetadataKey == "" || f.MetadataValue == "" {
		return nil
	}
	return map[string]string{f.MetadataKey: f.MetadataValue}
}
