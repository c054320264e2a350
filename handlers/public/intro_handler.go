package handlers

import (
	"davetiye.link/pkg/renderer"
	"davetiye.link/pkg/videostore"
	"davetiye.link/services"
	"davetiye.link/utils"

	"github.com/gofiber/fiber/v2"
)

// IntroHandler davetiyeden önce oynatılan tanıtım videosu sayfası.
type IntroHandler struct {
	invitationService services.IInvitationService
	videos            *videostore.Store
	defaultVideoURL   string
}

// NewIntroHandler yeni bir IntroHandler örneği oluşturur.
func NewIntroHandler(invitationService services.IInvitationService, videos *videostore.Store, defaultVideoURL string) *IntroHandler {
	return &IntroHandler{invitationService: invitationService, videos: videos, defaultVideoURL: defaultVideoURL}
}

// ShowIntro (GET /intro/:token) videoyu oynatır, bitince davetiyeye geçer.
func (h *IntroHandler) ShowIntro(c *fiber.Ctx) error {
	token := c.Params("token")
	view, err := h.invitationService.Open(c.UserContext(), token)
	if err != nil {
		return renderUnavailable(c, err)
	}
	_, eventPath := services.InvitationPaths(token)
	return renderer.Render(c, "pages/intro", "layouts/main", fiber.Map{
		"Title":     view.Record.Names,
		"EventPath": eventPath,
	})
}

// Video (GET /intro/video) oturumda yüklenmiş video varsa onu, yoksa varsayılan klibi verir.
func (h *IntroHandler) Video(c *fiber.Ctx) error {
	var id string
	if sess, err := utils.SessionStart(c); err == nil {
		id = utils.GetPendingVideoID(sess)
	}
	video, ok := h.videos.Get(id)
	if !ok {
		if h.defaultVideoURL == "" {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Redirect(h.defaultVideoURL, fiber.StatusFound)
	}

	c.Set(fiber.HeaderETag, video.ETag)
	c.Set(fiber.HeaderCacheControl, "private, no-cache")
	if c.Fresh() {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, video.ContentType)
	return c.Send(video.Data)
}
