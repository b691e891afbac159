package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/analytics"
	"github.com/stripeboard/stripeboard/internal/pkg/catalog"
	"github.com/stripeboard/stripeboard/internal/pkg/products"
	"github.com/stripeboard/stripeboard/internal/pkg/viewmodel"
)

// CatalogService is what the catalog view needs from its service.
type CatalogService interface {
	Cards() ([]catalog.Card, error)
	Checkout(priceID string, recurring bool) (string, error)
}

// ProductService is what the creation form needs from its service.
type ProductService interface {
	Create(form *models.ProductForm) (*products.CreateResult, error)
	Recent() ([]products.RecentItem, error)
}

// AnalyticsService is what the analytics view needs from its service.
type AnalyticsService interface {
	Report() (*analytics.Report, error)
}

var (
	catalogService   CatalogService
	productService   ProductService
	analyticsService AnalyticsService
	devMode          bool
)

// Initialize injects the view services. Must run before the router installs
// any handler.
func Initialize(cat CatalogService, prod ProductService, an AnalyticsService, isDev bool) {
	catalogService = cat
	productService = prod
	analyticsService = an
	devMode = isDev
}

func layout(c *fiber.Ctx, page, title string) viewmodel.Layout {
	return viewmodel.Layout{
		Page:  page,
		Title: title,
		Msg:   flash.Get(c),
		IsDev: devMode,
	}
}
