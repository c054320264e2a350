package repositories

import (
	"context"

	"davetiye.link/configs/configsdatabase"
	"davetiye.link/configs/configslog"
	"davetiye.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGiftRepository hediye veritabanı işlemleri için arayüz.
type IGiftRepository interface {
	FindAll(ctx context.Context) ([]models.Gift, error)
}

// GiftRepository IGiftRepository arayüzünü uygular.
type GiftRepository struct {
	db *gorm.DB
}

// NewGiftRepository global bağlantıyı kullanan bir GiftRepository oluşturur.
func NewGiftRepository() IGiftRepository {
	return &GiftRepository{db: configsdatabase.GetDB()}
}

// NewGiftRepositoryWithDB verilen bağlantı (veya transaction) ile çalışır.
func NewGiftRepositoryWithDB(db *gorm.DB) IGiftRepository {
	return &GiftRepository{db: db}
}

func (r *GiftRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// FindAll tüm hediyeleri sıralama değerine göre getirir.
func (r *GiftRepository) FindAll(ctx context.Context) ([]models.Gift, error) {
	var gifts []models.Gift
	err := r.getDB(ctx).Order("sort_order asc").Order("id asc").Find(&gifts).Error
	if err != nil {
		configslog.Log.Error("GiftRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return gifts, nil
}

// Arayüz uyumluluğu kontrolü
var _ IGiftRepository = (*GiftRepository)(nil)
