package services

import (
	"context"
	"sync"

	"davetiye.link/configs/configslog"
	"davetiye.link/models"
	"davetiye.link/repositories"

	"go.uber.org/zap"
)

// CatalogServiceError özel servis hataları
type CatalogServiceError string

func (e CatalogServiceError) Error() string { return string(e) }

const (
	ErrCatalogEmpty      CatalogServiceError = "katalogda hiç tema yok"
	ErrCatalogLoadFailed CatalogServiceError = "katalog yüklenemedi"
)

// ICatalogService tema ve hediye kataloğu için arayüz.
// Katalog başlangıçta bir kez yüklenir, istekler bellekten okunur.
type ICatalogService interface {
	Reload(ctx context.Context) error
	Themes() []models.Theme
	Gifts() []models.Gift
	ThemeFor(code string) models.Theme
	Gift(code string) (models.Gift, bool)
	DefaultThemeCode() string
}

// CatalogService ICatalogService arayüzünü uygular.
type CatalogService struct {
	themeRepo repositories.IThemeRepository
	giftRepo  repositories.IGiftRepository

	mu           sync.RWMutex
	themes       []models.Theme
	gifts        []models.Gift
	themeByCode  map[string]models.Theme
	giftByCode   map[string]models.Gift
	defaultTheme models.Theme
}

// NewCatalogService global veritabanı bağlantısını kullanan repository'lerle servis oluşturur.
func NewCatalogService() *CatalogService {
	return NewCatalogServiceWithRepos(repositories.NewThemeRepository(), repositories.NewGiftRepository())
}

// NewCatalogServiceWithRepos verilen repository'lerle servis oluşturur.
func NewCatalogServiceWithRepos(themeRepo repositories.IThemeRepository, giftRepo repositories.IGiftRepository) *CatalogService {
	return &CatalogService{themeRepo: themeRepo, giftRepo: giftRepo}
}

// Reload kataloğu veritabanından yeniden okur. Hata durumunda eski katalog korunur.
func (s *CatalogService) Reload(ctx context.Context) error {
	count, err := s.themeRepo.CountAll(ctx)
	if err != nil {
		configslog.Log.Error("Tema sayısı okunamadı", zap.Error(err))
		return ErrCatalogLoadFailed
	}
	if count == 0 {
		configslog.Log.Warn("Katalogda tema yok; seed çalıştırıldı mı?")
		return ErrCatalogEmpty
	}
	themes, err := s.themeRepo.FindAll(ctx)
	if err != nil {
		configslog.Log.Error("Temalar okunamadı", zap.Error(err))
		return ErrCatalogLoadFailed
	}
	if len(themes) == 0 {
		return ErrCatalogEmpty
	}
	gifts, err := s.giftRepo.FindAll(ctx)
	if err != nil {
		configslog.Log.Error("Hediyeler okunamadı", zap.Error(err))
		return ErrCatalogLoadFailed
	}

	themeByCode := make(map[string]models.Theme, len(themes))
	defaultTheme := themes[0]
	for _, t := range themes {
		themeByCode[t.Code] = t
		if t.IsDefault {
			defaultTheme = t
		}
	}
	giftByCode := make(map[string]models.Gift, len(gifts))
	for _, g := range gifts {
		giftByCode[g.Code] = g
	}

	s.mu.Lock()
	s.themes, s.gifts = themes, gifts
	s.themeByCode, s.giftByCode = themeByCode, giftByCode
	s.defaultTheme = defaultTheme
	s.mu.Unlock()

	configslog.SLog.Infof("Katalog yüklendi: %d tema, %d hediye (varsayılan tema: %s)", len(themes), len(gifts), defaultTheme.Code)
	return nil
}

func (s *CatalogService) Themes() []models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Theme(nil), s.themes...)
}

func (s *CatalogService) Gifts() []models.Gift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Gift(nil), s.gifts...)
}

// ThemeFor koda ait temayı, bilinmeyen kodlarda varsayılan temayı döndürür.
func (s *CatalogService) ThemeFor(code string) models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.themeByCode[code]; ok {
		return t
	}
	return s.defaultTheme
}

func (s *CatalogService) Gift(code string) (models.Gift, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.giftByCode[code]
	return g, ok
}

func (s *CatalogService) DefaultThemeCode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultTheme.Code
}

// Arayüz uyumluluğu kontrolü
var _ ICatalogService = (*CatalogService)(nil)
