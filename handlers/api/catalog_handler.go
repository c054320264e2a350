package handlers

import (
	"davetiye.link/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler tema ve hediye kataloğunu JSON olarak sunar.
type CatalogHandler struct {
	catalogService services.ICatalogService
}

func NewCatalogHandler(catalogService services.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog (GET /api/catalog)
func (h *CatalogHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"themes":       h.catalogService.Themes(),
		"gifts":        h.catalogService.Gifts(),
		"defaultTheme": h.catalogService.DefaultThemeCode(),
	})
}
