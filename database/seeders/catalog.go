package seeders

import (
	_ "embed"
	"errors"
	"fmt"

	"davetiye.link/configs/configslog"
	"davetiye.link/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog seed dosyasının yapısı.
type Catalog struct {
	Themes []models.Theme `yaml:"themes"`
	Gifts  []models.Gift  `yaml:"gifts"`
}

// LoadCatalog gömülü catalog.yaml dosyasını çözer.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog verilen YAML içeriğini çözer ve temel tutarlılık kontrollerini yapar.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("katalog dosyası çözülemedi: %w", err)
	}
	if len(c.Themes) == 0 {
		return nil, errors.New("katalogda en az bir tema olmalı")
	}
	defaults := 0
	seen := map[string]bool{}
	for _, t := range c.Themes {
		if t.Code == "" || seen["theme:"+t.Code] {
			return nil, fmt.Errorf("tema kodu boş veya tekrarlı: %q", t.Code)
		}
		seen["theme:"+t.Code] = true
		if t.IsDefault {
			defaults++
		}
	}
	if defaults > 1 {
		return nil, errors.New("katalogda birden fazla varsayılan tema var")
	}
	for _, g := range c.Gifts {
		if g.Code == "" || seen["gift:"+g.Code] {
			return nil, fmt.Errorf("hediye kodu boş veya tekrarlı: %q", g.Code)
		}
		seen["gift:"+g.Code] = true
	}
	return &c, nil
}

// SeedCatalog temaları ve hediyeleri ekler. Mevcut kodlar atlanır, tekrar çalıştırmak güvenlidir.
func SeedCatalog(db *gorm.DB) error {
	catalog, err := LoadCatalog()
	if err != nil {
		configslog.Log.Error("Katalog seed dosyası okunamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Katalog seed işlemi başlıyor...")
	var createdCount int64
	var errorOccurred bool

	for _, theme := range catalog.Themes {
		created, err := createIfMissing(db, &models.Theme{}, theme.Code, &theme)
		if err != nil {
			configslog.Log.Error("Tema oluşturulamadı", zap.String("code", theme.Code), zap.Error(err))
			errorOccurred = true
			continue
		}
		if created {
			createdCount++
		}
	}

	for _, gift := range catalog.Gifts {
		created, err := createIfMissing(db, &models.Gift{}, gift.Code, &gift)
		if err != nil {
			configslog.Log.Error("Hediye oluşturulamadı", zap.String("code", gift.Code), zap.Error(err))
			errorOccurred = true
			continue
		}
		if created {
			createdCount++
		}
	}

	if errorOccurred {
		return errors.New("katalog seed edilirken en az bir hata oluştu")
	}
	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni katalog kaydı seed edildi.", createdCount)
	} else {
		configslog.SLog.Info("Tüm katalog kayıtları zaten mevcut, yeni ekleme yapılmadı.")
	}
	return nil
}

// createIfMissing code ile kayıt yoksa record'u oluşturur.
func createIfMissing(db *gorm.DB, probe interface{}, code string, record interface{}) (bool, error) {
	var count int64
	if err := db.Model(probe).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		configslog.SLog.Debugf("Katalog kaydı '%s' zaten mevcut, oluşturma atlanıyor.", code)
		return false, nil
	}
	if err := db.Create(record).Error; err != nil {
		return false, err
	}
	configslog.SLog.Infof("Katalog kaydı '%s' oluşturuldu.", code)
	return true, nil
}
