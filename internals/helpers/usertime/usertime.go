package usertime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Nomes dos locals preenchidos pelo AuthMiddleware
const (
	LocUserTimezone = "user_timezone" // string, ex "America/Sao_Paulo"
	LocUserLoc      = "user_loc"      // *time.Location
)

// GetUserLocation resolve o *time.Location do usuário logado:
// 1) c.Locals("user_loc") se o middleware já resolveu
// 2) c.Locals("user_timezone") (string) → LoadLocation
// 3) fallback: America/Sao_Paulo
// 4) último fallback: time.UTC
func GetUserLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return time.UTC
	}

	if v := c.Locals(LocUserLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	if v := c.Locals(LocUserTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			if loc, err := time.LoadLocation(strings.TrimSpace(s)); err == nil {
				c.Locals(LocUserLoc, loc) // cache para a próxima chamada
				return loc
			}
		}
	}

	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.UTC
}
