package viewmodel

import "github.com/gofiber/fiber/v2"

// Layout carries the data every page template needs.
type Layout struct {
	Page  string
	Title string
	Msg   fiber.Map
	IsDev bool
}
