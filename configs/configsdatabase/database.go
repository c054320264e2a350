package configsdatabase

import (
	"fmt"

	"davetiye.link/configs"
	"davetiye.link/configs/configslog"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// Open yapılandırmaya göre yeni bir gorm bağlantısı açar.
func Open(cfg configs.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("desteklenmeyen veritabanı sürücüsü: %q", cfg.Driver)
	}
	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

// InitDB global bağlantıyı kurar; bağlantı kurulamazsa uygulama durdurulur.
func InitDB(cfg configs.DatabaseConfig) {
	conn, err := Open(cfg)
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.String("driver", cfg.Driver), zap.Error(err))
	}
	db = conn
	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu (%s)", cfg.Driver)
}

// GetDB InitDB ile kurulan bağlantıyı döndürür.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Veritabanı başlatılmadan GetDB çağrıldı")
	}
	return db
}

// CloseDB alttaki sql.DB bağlantısını kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
}
