package repositories

import (
	"context"

	"davetiye.link/configs/configsdatabase"
	"davetiye.link/configs/configslog"
	"davetiye.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IThemeRepository tema veritabanı işlemleri için arayüz.
type IThemeRepository interface {
	FindAll(ctx context.Context) ([]models.Theme, error)
	CountAll(ctx context.Context) (int64, error)
}

// ThemeRepository IThemeRepository arayüzünü uygular.
type ThemeRepository struct {
	db *gorm.DB
}

// NewThemeRepository global bağlantıyı kullanan bir ThemeRepository oluşturur.
func NewThemeRepository() IThemeRepository {
	return &ThemeRepository{db: configsdatabase.GetDB()}
}

// NewThemeRepositoryWithDB verilen bağlantı (veya transaction) ile çalışır.
func NewThemeRepositoryWithDB(db *gorm.DB) IThemeRepository {
	return &ThemeRepository{db: db}
}

func (r *ThemeRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll tüm temaları sıralama değerine göre getirir.
func (r *ThemeRepository) FindAll(ctx context.Context) ([]models.Theme, error) {
	var themes []models.Theme
	err := r.getDB(ctx).Order("sort_order asc").Order("id asc").Find(&themes).Error
	if err != nil {
		configslog.Log.Error("ThemeRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return themes, nil
}

// CountAll tema sayısını döndürür.
func (r *ThemeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&models.Theme{}).Count(&count).Error; err != nil {
		configslog.Log.Error("ThemeRepository.CountAll: DB error", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// Arayüz uyumluluğu kontrolü
var _ IThemeRepository = (*ThemeRepository)(nil)
