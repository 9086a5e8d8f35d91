package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"luxemarket/internal/services"
)

const (
	sidCookie   = "sid"
	localSID    = "sid"
	localNotice = "notices"
)

func ensureSID(c *fiber.Ctx) string {
	if sid, ok := c.Locals(localSID).(string); ok && sid != "" {
		return sid
	}
	sid := c.Cookies(sidCookie)
	if _, err := uuid.Parse(sid); err != nil {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sidCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false,
		})
	}
	c.Locals(localSID, sid)
	return sid
}

// Session makes sure page requests carry a sid cookie and exposes the toast
// queue to render.
func Session(n *services.Notices) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ensureSID(c)
		c.Locals(localNotice, n)
		return c.Next()
	}
}

// owner identifies the caller of an API request for search de-duplication.
// API searches never share a key with the marketplace page of the same session.
func owner(c *fiber.Ctx) string {
	if sid := c.Cookies(sidCookie); sid != "" {
		if _, err := uuid.Parse(sid); err == nil {
			return "api:" + sid
		}
	}
	return "api:ip:" + c.IP()
}
