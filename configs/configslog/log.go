package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log yapısal alanlarla loglama için (zap.String, zap.Error ...).
	Log *zap.Logger = zap.NewNop()
	// SLog printf tarzı loglama için.
	SLog *zap.SugaredLogger = Log.Sugar()
)

// InitLogger global logger'ları APP_ENV ve LOG_LEVEL ortam değişkenlerine göre kurar.
// production ortamında JSON, diğerlerinde renkli konsol çıktısı kullanılır.
func InitLogger() {
	var cfg zap.Config
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(lvl)); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		// Logger kurulamazsa uygulama sessiz çalışmasın
		logger = zap.NewExample()
		logger.Error("Logger yapılandırılamadı, örnek logger kullanılıyor", zap.Error(err))
	}
	SetLogger(logger)
}

// SetLogger global logger'ları verilen logger ile değiştirir (testlerde zaptest ile kullanılır).
func SetLogger(logger *zap.Logger) {
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır. main içinde defer ile çağrılır.
func SyncLogger() {
	_ = Log.Sync()
}
