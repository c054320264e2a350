package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// ErrSessionStoreMissing session middleware'i çalışmadan session istendiğinde döner.
var ErrSessionStoreMissing = errors.New("session store bulunamadı")

// PendingVideoKey oluşturma oturumunda yüklenen videonun kimliğinin tutulduğu anahtar.
const PendingVideoKey = "pending_video"

// SessionStart router'ın Locals'a koyduğu store üzerinden isteğin session'ını açar.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetPendingVideoID session'daki video kimliğini döndürür; yoksa boş string.
func GetPendingVideoID(sess *session.Session) string {
	id, _ := sess.Get(PendingVideoKey).(string)
	return id
}

// SetPendingVideoID video kimliğini session'a yazar ve kaydeder.
func SetPendingVideoID(sess *session.Session, id string) error {
	sess.Set(PendingVideoKey, id)
	return sess.Save()
}
