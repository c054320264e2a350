package main

import (
	"flag"
	"os"

	"davetiye.link/configs"
	"davetiye.link/configs/configsdatabase"
	"davetiye.link/configs/configslog"
	"davetiye.link/database"

	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	cfg, err := configs.Load()
	if err != nil {
		configslog.Log.Error("Yapılandırma yüklenemedi", zap.Error(err))
		os.Exit(1)
	}

	configsdatabase.InitDB(cfg.DB)
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	if err := database.Initialize(db, *migrateFlag, *seedFlag); err != nil {
		configslog.Log.Error("Veritabanı başlatma işlemi başarısız", zap.Error(err))
		configsdatabase.CloseDB()
		configslog.SyncLogger()
		os.Exit(1)
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
