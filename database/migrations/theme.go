package migrations

import (
	"davetiye.link/configs/configslog"
	"davetiye.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateThemesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating themes table...")
	if err := db.AutoMigrate(&models.Theme{}); err != nil {
		configslog.Log.Error("Failed to migrate themes table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Themes table migrated successfully")
	return nil
}
