package router

import (
	"github.com/gofiber/fiber/v2"

	apiv1 "github.com/stripeboard/stripeboard/internal/api/v1"
)

// ApiRouter wires the JSON status endpoints under /api/v1.
type ApiRouter struct {
	server *apiv1.APIServer
}

func NewApiRouter(server *apiv1.APIServer) *ApiRouter {
	return &ApiRouter{server: server}
}

func (a ApiRouter) InstallRouter(app *fiber.App) {
	v1 := app.Group("/api/v1")
	v1.Get("/ping", a.server.GetPing)
	v1.Get("/stripe/status", a.server.GetStripeStatus)
}
