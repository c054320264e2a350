package handlers

import (
	"errors"

	"davetiye.link/configs/configslog"
	"davetiye.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InvitationHandler davetiye linki üretme ve çözme uç noktaları.
type InvitationHandler struct {
	invitationService services.IInvitationService
	baseURL           string
}

func NewInvitationHandler(invitationService services.IInvitationService, baseURL string) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService, baseURL: baseURL}
}

// CreateInvitation (POST /api/invitations) JSON gövdeden token ve paylaşım linklerini üretir.
func (h *InvitationHandler) CreateInvitation(c *fiber.Ctx) error {
	var req services.ShareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	base := h.baseURL
	if base == "" {
		base = c.BaseURL()
	}
	result, err := h.invitationService.Share(c.UserContext(), req, base)
	if err != nil {
		var svcErr services.InvitationServiceError
		if errors.As(err, &svcErr) {
			status := fiber.StatusBadRequest
			if errors.Is(err, services.ErrInvitationTooLong) {
				status = fiber.StatusRequestEntityTooLarge
			}
			return c.Status(status).JSON(fiber.Map{"error": svcErr.Error()})
		}
		configslog.Log.Error("API CreateInvitation hatası", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invitation could not be created"})
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetInvitation (GET /api/invitations/:token) token'ı çözülmüş davetiye olarak döndürür.
func (h *InvitationHandler) GetInvitation(c *fiber.Ctx) error {
	view, err := h.invitationService.Open(c.UserContext(), c.Params("token"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrInvitationUnavailable.Error()})
	}
	return c.JSON(view)
}
