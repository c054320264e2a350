// Package flashmessages bir sonraki isteğe taşınan tek seferlik mesajları ve
// form verisini session üzerinde tutar.
package flashmessages

import (
	"encoding/json"

	"davetiye.link/configs/configslog"
	"davetiye.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	flashFormDataKey = "flash_form_data"
)

// FlashMessages okunduktan sonra session'dan silinen mesajlar.
type FlashMessages struct {
	Success string
	Error   string
}

// SetFlashMessage mesajı session'a yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	return sess.Save()
}

// GetFlashMessages mesajları okur ve siler.
func GetFlashMessages(c *fiber.Ctx) (FlashMessages, error) {
	var msgs FlashMessages
	sess, err := utils.SessionStart(c)
	if err != nil {
		return msgs, err
	}
	changed := false
	if v, ok := sess.Get(FlashSuccessKey).(string); ok {
		msgs.Success = v
		sess.Delete(FlashSuccessKey)
		changed = true
	}
	if v, ok := sess.Get(FlashErrorKey).(string); ok {
		msgs.Error = v
		sess.Delete(FlashErrorKey)
		changed = true
	}
	if changed {
		if err := sess.Save(); err != nil {
			return msgs, err
		}
	}
	return msgs, nil
}

// SetFlashFormData hatalı form verisini bir sonraki gösterim için saklar.
func SetFlashFormData(c *fiber.Ctx, data any) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(flashFormDataKey, string(raw))
	return sess.Save()
}

// GetFlashFormData saklanan form verisini out'a çözer ve siler. Veri yoksa false döner.
func GetFlashFormData(c *fiber.Ctx, out any) bool {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return false
	}
	raw, ok := sess.Get(flashFormDataKey).(string)
	if !ok {
		return false
	}
	sess.Delete(flashFormDataKey)
	if err := sess.Save(); err != nil {
		configslog.Log.Warn("Flash form verisi silinemedi", zap.Error(err))
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		configslog.Log.Warn("Flash form verisi çözülemedi", zap.Error(err))
		return false
	}
	return true
}
