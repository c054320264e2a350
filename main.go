package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"davetiye.link/configs"
	"davetiye.link/configs/configsdatabase"
	"davetiye.link/configs/configslog"
	"davetiye.link/database"
	"davetiye.link/pkg/videostore"
	"davetiye.link/routes"
	"davetiye.link/services"
	"davetiye.link/views"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Fatal("Yapılandırma yüklenemedi", zap.Error(err))
	}

	configsdatabase.InitDB(cfg.DB)
	defer configsdatabase.CloseDB()

	if cfg.AutoMigrate {
		if err := database.Initialize(configsdatabase.GetDB(), true, true); err != nil {
			configslog.Log.Fatal("Veritabanı hazırlanamadı", zap.Error(err))
		}
	}

	catalog := services.NewCatalogService()
	if err := catalog.Reload(context.Background()); err != nil {
		configslog.Log.Fatal("Katalog yüklenemedi", zap.Error(err))
	}

	videos := videostore.New(videostore.Config{
		MaxEntries:    cfg.VideoStoreEntries,
		MaxBytes:      cfg.VideoStoreBytes,
		MaxVideoBytes: cfg.VideoMaxBytes,
		TTL:           cfg.SessionExpiration,
	})

	app := fiber.New(fiber.Config{
		AppName:      "davetiye.link",
		Views:        views.NewEngine(),
		BodyLimit:    int(cfg.VideoMaxBytes) + 1<<20,
		ErrorHandler: routes.ErrorHandler,
	})

	routes.SetupRoutes(app, routes.Dependencies{
		Config:       cfg,
		Catalog:      catalog,
		Invitations:  services.NewInvitationService(catalog, cfg.TokenMaxLength),
		Videos:       videos,
		SessionStore: configs.SetupSession(cfg.SessionExpiration, cfg.IsProduction()),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		configslog.SLog.Info("Sunucu kapatılıyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu düzgün kapatılamadı", zap.Error(err))
		}
	}()

	configslog.SLog.Infof("Sunucu başlatılıyor: %s", cfg.Addr())
	if err := app.Listen(cfg.Addr()); err != nil {
		configslog.Log.Fatal("Sunucu başlatılamadı", zap.Error(err))
	}
}
