package routes

import (
	"errors"

	"davetiye.link/configs"
	"davetiye.link/configs/configslog"
	"davetiye.link/pkg/videostore"
	"davetiye.link/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Dependencies rotaların ihtiyaç duyduğu servisler ve depolar.
type Dependencies struct {
	Config       *configs.AppConfig
	Catalog      services.ICatalogService
	Invitations  services.IInvitationService
	Videos       *videostore.Store
	SessionStore *session.Store
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	// --- Genel Middleware'ler ---
	app.Use(recoverMiddleware.New()) // Panic yakalama
	app.Use(logger.New())            // İstek loglama
	app.Use(initializeSessionStore(deps.SessionStore))

	// --- Rota Grupları ---
	registerAPIRoutes(app, deps)
	registerPublicRoutes(app, deps)

	// --- Kök URL ("/") Yönlendirmesi ---
	app.Get("/", rootRedirector)

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

// initializeSessionStore session store'u handler'ların erişebilmesi için Locals'a koyar.
func initializeSessionStore(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	return c.Redirect("/create", fiber.StatusFound)
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Page Not Found"}, "layouts/error_layout")
	}
}

// ErrorHandler handler'lardan dönen hataları loglar ve JSON hata gövdesi döner.
// fiber.Error kodları korunur.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		configslog.Log.Error("İstek işlenemedi", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": utils.StatusMessage(code)})
}
