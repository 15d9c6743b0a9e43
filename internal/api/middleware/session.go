package middleware

import (
	"github.com/Tyler2517/creditkeeper/internal/session"
	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "ck_session"

const sessionLocal = "session"

// Session resolves the browser session from the cookie, minting one when the
// cookie is absent or stale, and makes it available to handlers via Locals.
func Session(manager *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := manager.GetOrCreate(c.Cookies(SessionCookie))

		if c.Cookies(SessionCookie) != sess.ID {
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sess.ID,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionLocal, sess)
		return c.Next()
	}
}

// SessionFrom returns the session attached by the Session middleware, or nil
// when the route was not registered behind it.
func SessionFrom(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(sessionLocal).(*session.Session)
	return sess
}
