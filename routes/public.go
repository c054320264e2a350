package routes

import (
	public_handlers "davetiye.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes oluşturma akışı ile misafirin açtığı intro ve davetiye sayfaları.
func registerPublicRoutes(app *fiber.App, deps Dependencies) {
	createHandler := public_handlers.NewCreateHandler(deps.Invitations, deps.Catalog, deps.Videos, deps.Config.BaseURL)
	introHandler := public_handlers.NewIntroHandler(deps.Invitations, deps.Videos, deps.Config.DefaultIntroVideoURL)
	eventHandler := public_handlers.NewEventHandler(deps.Invitations, deps.Config.BaseURL)

	// --- Oluşturma ---
	app.Get("/create", createHandler.ShowCreate)               // GET /create
	app.Post("/create/calendar", createHandler.CalendarAction) // POST /create/calendar (ay gezinme, gün seçimi)
	app.Post("/create", createHandler.Share)                   // POST /create

	// --- Misafir ---
	// /intro/video, /intro/:token'dan önce tanımlanmalı.
	app.Get("/intro/video", introHandler.Video)                      // GET /intro/video
	app.Get("/intro/:token", introHandler.ShowIntro)                 // GET /intro/{token}
	app.Get("/event/:token/calendar.ics", eventHandler.CalendarFile) // GET /event/{token}/calendar.ics
	app.Get("/event/:token", eventHandler.ShowEvent)                 // GET /event/{token}
}
