package handlers

import (
	"errors"

	"davetiye.link/configs/configslog"
	"davetiye.link/pkg/renderer"
	"davetiye.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventHandler davetiyeyi token'dan çözüp misafire gösterir.
type EventHandler struct {
	invitationService services.IInvitationService
	baseURL           string
}

// NewEventHandler yeni bir EventHandler örneği oluşturur.
func NewEventHandler(invitationService services.IInvitationService, baseURL string) *EventHandler {
	return &EventHandler{invitationService: invitationService, baseURL: baseURL}
}

// ShowEvent (GET /event/:token) davetiye sayfası. Çözülemeyen token'lar genel
// "davetiye yok" sayfasına düşer.
func (h *EventHandler) ShowEvent(c *fiber.Ctx) error {
	token := c.Params("token")
	view, err := h.invitationService.Open(c.UserContext(), token)
	if err != nil {
		return renderUnavailable(c, err)
	}
	return renderer.Render(c, "pages/event", "layouts/main", fiber.Map{
		"Title":        view.Record.Names,
		"View":         view,
		"CalendarPath": "/event/" + token + "/calendar.ics",
	})
}

// CalendarFile (GET /event/:token/calendar.ics) davetiyeyi takvim dosyası olarak indirir.
// ?yearly=1 yıldönümü tekrarı ekler.
func (h *EventHandler) CalendarFile(c *fiber.Ctx) error {
	token := c.Params("token")
	yearly := c.QueryBool("yearly", false)

	base := h.baseURL
	if base == "" {
		base = c.BaseURL()
	}
	data, err := h.invitationService.CalendarFile(c.UserContext(), token, base, yearly)
	if err != nil {
		if errors.Is(err, services.ErrInvitationUnavailable) {
			return renderUnavailable(c, err)
		}
		configslog.Log.Error("CalendarFile: takvim dosyası üretilemedi", zap.Error(err))
		return renderError(c, "The calendar file could not be created.")
	}

	c.Attachment("invitation.ics")
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	return c.Send(data)
}

// renderUnavailable token çözülemediğinde gösterilen sayfa. Hata ayrıntısı misafire gösterilmez.
func renderUnavailable(c *fiber.Ctx, err error) error {
	configslog.SLog.Debugf("Davetiye açılamadı: %v", err)
	return renderer.Render(c, "errors/unavailable", "layouts/error_layout", fiber.Map{
		"Title": "Invitation unavailable",
	}, fiber.StatusNotFound)
}

// renderError standart 500 hata sayfasını render eder.
func renderError(c *fiber.Ctx, message string) error {
	return renderer.Render(c, "errors/500", "layouts/error_layout", fiber.Map{
		"Title":   "Server Error",
		"Message": message,
	}, fiber.StatusInternalServerError)
}
