package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/stripeboard/stripeboard/internal/pkg/catalog"
	"github.com/stripeboard/stripeboard/internal/pkg/constants"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

// HandleCatalogIndex renders the product catalog. A fetch failure becomes a
// single inline banner and the page still renders with zero cards.
func HandleCatalogIndex(c *fiber.Ctx) error {
	var (
		cards  []catalog.Card
		banner string
	)

	cards, err := catalogService.Cards()
	if err != nil {
		banner = "Error fetching Stripe products: " + stripe.UserMessage(err)
		cards = nil
	}

	return c.Render("catalog", fiber.Map{
		"Layout":   layout(c, "catalog", "Available Products"),
		"Cards":    cards,
		"Error":    banner,
		"Success":  c.Query("success") == "true",
		"Canceled": c.Query("canceled") == "true",
	}, "layouts/main")
}

// HandleCatalogCheckout creates a checkout session for the selected price and
// redirects the browser to the provider-hosted page. Failures are surfaced on
// the catalog as a flash banner instead of being dropped.
func HandleCatalogCheckout(c *fiber.Ctx) error {
	priceID := c.FormValue("price_id")
	recurring := c.FormValue("recurring") == "true"

	if priceID == "" {
		fm := fiber.Map{"type": "error", "message": "No price selected."}
		return flash.WithError(c, fm).Redirect(constants.CatalogRoute)
	}

	url, err := catalogService.Checkout(priceID, recurring)
	if err != nil {
		fm := fiber.Map{"type": "error", "message": "Error creating checkout session: " + stripe.UserMessage(err)}
		return flash.WithError(c, fm).Redirect(constants.CatalogRoute)
	}

	return c.Redirect(url, fiber.StatusSeeOther)
}
