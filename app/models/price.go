package models

import (
	"fmt"
	"strings"
)

// Price binds an amount, currency and optional billing cadence to a product.
// UnitAmount is in minor units (cents).
type Price struct {
	ID                string
	ProductID         string
	UnitAmount        int64
	Currency          string
	Nickname          string
	RecurringInterval string
}

// Recurring reports whether the price carries a billing cadence.
func (p *Price) Recurring() bool {
	return p.RecurringInterval != ""
}

// Formatted renders the amount in major units, e.g. "$19.99 USD".
func (p *Price) Formatted() string {
	return FormatMinorAmount(p.UnitAmount, p.Currency)
}

// FormattedWithInterval appends the billing cadence for recurring prices,
// e.g. "$19.99 USD per month".
func (p *Price) FormattedWithInterval() string {
	if p.Recurring() {
		return fmt.Sprintf("%s per %s", p.Formatted(), p.RecurringInterval)
	}
	return p.Formatted()
}

// FormatMinorAmount renders a minor-unit amount as a two-decimal major-unit
// string with the upper-cased currency code.
func FormatMinorAmount(amount int64, currency string) string {
	return fmt.Sprintf("$%.2f %s", float64(amount)/100, strings.ToUpper(currency))
}
