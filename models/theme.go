package models

// Theme davetiye sayfasının görsel temasıdır. Token içinde yalnızca Code taşınır.
type Theme struct {
	BaseModel
	Code       string `gorm:"type:varchar(50);uniqueIndex;not null" json:"id" yaml:"code"`
	Name       string `gorm:"type:varchar(100);not null" json:"name" yaml:"name"`
	Swatch     string `gorm:"type:varchar(32)" json:"swatch" yaml:"swatch"`         // oluşturma formundaki renk örneği
	Background string `gorm:"type:varchar(32)" json:"background" yaml:"background"` // sayfa arka planı
	Accent     string `gorm:"type:varchar(32)" json:"accent" yaml:"accent"`
	Text       string `gorm:"type:varchar(32)" json:"text" yaml:"text"`
	Card       string `gorm:"type:varchar(32)" json:"card" yaml:"card"` // yarı saydam kart rengi
	SortOrder  int    `gorm:"type:integer;default:0" json:"-" yaml:"sort_order"`
	IsDefault  bool   `gorm:"type:boolean;default:false" json:"default" yaml:"default"`
}
