package routes

import (
	api_handlers "davetiye.link/handlers/api"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes /api altındaki JSON uç noktalarını tanımlar.
func registerAPIRoutes(app *fiber.App, deps Dependencies) {
	catalogHandler := api_handlers.NewCatalogHandler(deps.Catalog)
	invitationHandler := api_handlers.NewInvitationHandler(deps.Invitations, deps.Config.BaseURL)
	calendarHandler := api_handlers.NewCalendarHandler()

	apiGroup := app.Group("/api")
	apiGroup.Get("/catalog", catalogHandler.GetCatalog)                  // GET /api/catalog
	apiGroup.Post("/invitations", invitationHandler.CreateInvitation)    // POST /api/invitations
	apiGroup.Get("/invitations/:token", invitationHandler.GetInvitation) // GET /api/invitations/{token}
	apiGroup.Get("/calendar", calendarHandler.GetMonth)                  // GET /api/calendar
}
