package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/constants"
	"github.com/stripeboard/stripeboard/internal/pkg/products"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

// HandleProductNew renders the empty creation form with its defaults and the
// recently-created list.
func HandleProductNew(c *fiber.Ctx) error {
	form := &models.ProductForm{
		PriceType: models.PriceTypeOneTime,
		Interval:  "month",
		Currency:  "usd",
	}
	return renderProductForm(c, form, "")
}

// HandleProductCreate runs the composite product-then-price creation. On any
// failure the form re-renders with the submitted values preserved and a
// single inline error; on success the form is cleared via redirect and a
// confirmation flash summarizes the created objects.
func HandleProductCreate(c *fiber.Ctx) error {
	form := parseProductForm(c)

	result, err := productService.Create(form)
	if err != nil {
		return renderProductForm(c, form, createErrorMessage(err))
	}

	fm := fiber.Map{"type": "success", "message": result.Summary()}
	return flash.WithSuccess(c, fm).Redirect(constants.ProductNewRoute)
}

func parseProductForm(c *fiber.Ctx) *models.ProductForm {
	form := &models.ProductForm{
		Name:          c.FormValue("name"),
		Description:   c.FormValue("description"),
		ImageURL:      c.FormValue("image_url"),
		PriceType:     c.FormValue("price_type", models.PriceTypeOneTime),
		Interval:      c.FormValue("interval", "month"),
		Amount:        c.FormValue("amount"),
		Currency:      c.FormValue("currency", "usd"),
		Nickname:      c.FormValue("nickname"),
		MetadataKey:   c.FormValue("metadata_key"),
		MetadataValue: c.FormValue("metadata_value"),
	}
	return form
}

func createErrorMessage(err error) string {
	var partial *products.PartialError
	switch {
	case errors.As(err, &partial):
		return "Stripe Error: price creation failed, product " + partial.ProductID +
			" was created without a price: " + stripe.UserMessage(partial.Err)
	case errors.Is(err, models.ErrAmountTooSmall):
		return "Error: Price amount must be at least $0.50."
	case errors.Is(err, models.ErrAmountInvalid):
		return "Error: Price amount must be a number."
	case errors.Is(err, products.ErrInvalid):
		return "Error: Product name and price amount are required."
	case stripe.IsProviderError(err):
		return "Stripe Error: " + stripe.UserMessage(err)
	default:
		return "Error: " + stripe.UserMessage(err)
	}
}

// renderProductForm renders the creation page. The recently-created list is
// best effort: its fetch failure becomes inline text in place of the list,
// never a page failure.
func renderProductForm(c *fiber.Ctx, form *models.ProductForm, errMsg string) error {
	var recentErr string
	recent, err := productService.Recent()
	if err != nil {
		recentErr = "Error fetching products: " + stripe.UserMessage(err)
		recent = nil
	}

	return c.Render("product_new", fiber.Map{
		"Layout":      layout(c, "products", "Create New Product"),
		"Form":        form,
		"Error":       errMsg,
		"Recent":      recent,
		"RecentError": recentErr,
	}, "layouts/main")
}
