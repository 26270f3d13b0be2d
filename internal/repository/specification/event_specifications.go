package specification

import (
	"time"

	"gorm.io/gorm"
)

// OccurredSince keeps events at or after the given timestamp.
type OccurredSince struct {
	Since time.Time
}

func (s OccurredSince) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("occurred_at >= ?", s.Since)
}

// OrderByOccurrence orders events ascending by timestamp, the order the
// segmentation primitives require.
type OrderByOccurrence struct{}

func (s OrderByOccurrence) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("occurred_at ASC")
}
