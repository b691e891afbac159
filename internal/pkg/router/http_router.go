package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stripeboard/stripeboard/app/controllers"
	"github.com/stripeboard/stripeboard/internal/pkg/constants"
)

// HttpRouter wires the three dashboard views.
type HttpRouter struct{}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (HttpRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.CatalogRoute, controllers.HandleCatalogIndex)
	app.Post(constants.CheckoutRoute, controllers.HandleCatalogCheckout)

	app.Get(constants.ProductNewRoute, controllers.HandleProductNew)
	app.Post(constants.ProductCreateRoute, controllers.HandleProductCreate)

	app.Get(constants.AnalyticsRoute, controllers.HandleAnalytics)
}
