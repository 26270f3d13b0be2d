package specification

import "gorm.io/gorm"

// EnabledOnly keeps templates the catalog has switched on.
type EnabledOnly struct{}

func (s EnabledOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("enabled = ?", true)
}

// ByCategory filters templates by their category tag.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}
