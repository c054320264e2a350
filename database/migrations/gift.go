package migrations

import (
	"errors"

	"davetiye.link/configs/configslog"
	"davetiye.link/models"

	"gorm.io/gorm"
)

func MigrateGiftsTable(db *gorm.DB) error {
	configslog.SLog.Info("Gift tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.Gift{}); err != nil {
		errMsg := "Gift tablosu migrate edilemedi: " + err.Error()
		configslog.Log.Error(errMsg)
		return errors.New(errMsg)
	}

	configslog.SLog.Info("Gift tablosu migrate işlemi tamamlandı.")
	return nil
}
