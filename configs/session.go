package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionCookieName = "davetiye_session"

// SetupSession oturum deposunu oluşturur. Video deposunun TTL'i ile aynı süre kullanılmalı.
func SetupSession(expiration time.Duration, secure bool) *session.Store {
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	return session.New(session.Config{
		Expiration:     expiration,
		CookieName:     sessionCookieName,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
	})
}
