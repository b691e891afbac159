package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

// AccountAPI is the slice of the Stripe boundary the status endpoint needs.
type AccountAPI interface {
	GetAccount() (models.Account, error)
}

// APIServer serves the small JSON surface next to the HTML views.
type APIServer struct {
	api AccountAPI
}

func NewAPIServer(api AccountAPI) *APIServer {
	return &APIServer{api: api}
}

// GetPing handles the ping endpoint.
func (*APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"ping": "pong"})
}

// GetStripeStatus verifies provider connectivity by retrieving the account
// the credential belongs to.
func (s *APIServer) GetStripeStatus(c *fiber.Ctx) error {
	account, err := s.api.GetAccount()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"connected": false,
			"error":     stripe.UserMessage(err),
		})
	}

	return c.JSON(fiber.Map{
		"connected": true,
		"account": fiber.Map{
			"id":               account.ID,
			"email":            account.Email,
			"country":          account.Country,
			"default_currency": account.DefaultCurrency,
		},
	})
}
