package renderer

import (
	"net/http"

	"davetiye.link/configs/configslog"
	"davetiye.link/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// Render template'i layout ile birlikte verilen status koduyla çizer.
// Render hatası 500 sayfasına düşer.
func Render(c *fiber.Ctx, template, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if err := c.Status(code).Render(template, data, layout); err != nil {
		configslog.Log.Error("Template render edilemedi", zap.String("template", template), zap.Error(err))
		return c.Status(http.StatusInternalServerError).SendString("Internal Server Error")
	}
	return nil
}

// SetFlashMessages flash mesajlarını view verisine ekler.
func SetFlashMessages(data fiber.Map, msgs flashmessages.FlashMessages) {
	if msgs.Success != "" {
		data[FlashSuccessKeyView] = msgs.Success
	}
	if msgs.Error != "" {
		data[FlashErrorKeyView] = msgs.Error
	}
}
