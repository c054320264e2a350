package configs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"davetiye.link/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

// AppConfig uygulamanın çalışma ayarları.
type AppConfig struct {
	Env     string
	Host    string
	Port    int
	BaseURL string // boşsa paylaşım linkleri isteğin adresinden üretilir

	DB DatabaseConfig

	SessionExpiration time.Duration
	AutoMigrate       bool

	VideoMaxBytes        int64
	VideoStoreBytes      int64
	VideoStoreEntries    int
	DefaultIntroVideoURL string

	TokenMaxLength int
}

// DatabaseConfig katalog veritabanı ayarları.
type DatabaseConfig struct {
	Driver   string // postgres | sqlite
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite dosyası veya ":memory:"
}

// DSN seçili sürücü için bağlantı dizesi.
func (c DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Addr Fiber'ın dinleyeceği adres.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsProduction production ortamında mı çalışıyoruz?
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load .env dosyasını (varsa) ve ortam değişkenlerini okuyup doğrular.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		configslog.Log.Warn(".env dosyası okunamadı, yalnızca ortam değişkenleri kullanılacak")
	}

	var errs error
	cfg := &AppConfig{
		Env:     getEnv("APP_ENV", "development"),
		Host:    getEnv("APP_HOST", "0.0.0.0"),
		BaseURL: strings.TrimRight(getEnv("APP_BASE_URL", ""), "/"),
		DB: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "davetiye"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "davetiye.db"),
		},
		DefaultIntroVideoURL: getEnv("DEFAULT_INTRO_VIDEO_URL",
			"https://assets.mixkit.co/videos/preview/mixkit-bride-and-groom-walking-in-a-field-34246-large.mp4"),
	}

	cfg.Port = getEnvInt("APP_PORT", 3000, &errs)
	cfg.DB.Port = getEnvInt("DB_PORT", 5432, &errs)
	cfg.SessionExpiration = getEnvDuration("SESSION_EXPIRATION", 24*time.Hour, &errs)
	cfg.AutoMigrate = getEnvBool("AUTO_MIGRATE", true, &errs)
	cfg.VideoMaxBytes = int64(getEnvInt("VIDEO_MAX_BYTES", 50<<20, &errs))
	cfg.VideoStoreBytes = int64(getEnvInt("VIDEO_STORE_BYTES", 512<<20, &errs))
	cfg.VideoStoreEntries = getEnvInt("VIDEO_STORE_ENTRIES", 64, &errs)
	cfg.TokenMaxLength = getEnvInt("TOKEN_MAX_LENGTH", 8192, &errs)

	errs = multierr.Append(errs, cfg.Validate())
	if errs != nil {
		return nil, errs
	}
	return cfg, nil
}

// Validate değerlerin kendi içinde tutarlı olup olmadığını kontrol eder.
func (c *AppConfig) Validate() error {
	var errs error
	if c.Port <= 0 || c.Port > 65535 {
		errs = multierr.Append(errs, fmt.Errorf("APP_PORT geçersiz: %d", c.Port))
	}
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		errs = multierr.Append(errs, fmt.Errorf("DB_DRIVER desteklenmiyor: %q", c.DB.Driver))
	}
	if c.VideoMaxBytes <= 0 {
		errs = multierr.Append(errs, errors.New("VIDEO_MAX_BYTES pozitif olmalı"))
	}
	if c.VideoStoreBytes < c.VideoMaxBytes {
		errs = multierr.Append(errs, errors.New("VIDEO_STORE_BYTES, VIDEO_MAX_BYTES değerinden küçük olamaz"))
	}
	if c.VideoStoreEntries <= 0 {
		errs = multierr.Append(errs, errors.New("VIDEO_STORE_ENTRIES pozitif olmalı"))
	}
	if c.SessionExpiration <= 0 {
		errs = multierr.Append(errs, errors.New("SESSION_EXPIRATION pozitif olmalı"))
	}
	if c.TokenMaxLength < 64 {
		errs = multierr.Append(errs, errors.New("TOKEN_MAX_LENGTH en az 64 olmalı"))
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		errs = multierr.Append(errs, fmt.Errorf("APP_BASE_URL http(s) ile başlamalı: %q", c.BaseURL))
	}
	return errs
}

func getEnv(key, defaultVal string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int, errs *error) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("%s tamsayı olmalı: %w", key, err))
		return defaultVal
	}
	return v
}

func getEnvBool(key string, defaultVal bool, errs *error) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("%s true/false olmalı: %w", key, err))
		return defaultVal
	}
	return v
}

func getEnvDuration(key string, defaultVal time.Duration, errs *error) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errs = multierr.Append(*errs, fmt.Errorf("%s süre olmalı (ör. 24h): %w", key, err))
		return defaultVal
	}
	return v
}
