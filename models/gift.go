package models

// Gift hediye listesinde seçilebilecek bir öğe.
type Gift struct {
	BaseModel
	Code      string `gorm:"type:varchar(50);uniqueIndex;not null" json:"id" yaml:"code"`
	Name      string `gorm:"type:varchar(100);not null" json:"name" yaml:"name"`
	Icon      string `gorm:"type:varchar(16)" json:"icon" yaml:"icon"`
	SortOrder int    `gorm:"type:integer;default:0" json:"-" yaml:"sort_order"`
}
