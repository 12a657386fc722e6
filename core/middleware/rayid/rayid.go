// Package rayid provides request ID middleware for Fiber.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the ray ID.
const Header = "X-Ray-Id"

// New returns a middleware that assigns a unique ray ID to every request.
// An incoming X-Ray-Id header is honored so callers can propagate their own.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
