package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event rows are written by the ingestion pipeline; this service only reads them.
type Event struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Kind       string         `gorm:"type:varchar(50);not null;index"`
	URL        string         `gorm:"type:text"`
	Title      *string        `gorm:"type:text"`
	Text       string         `gorm:"type:text"`
	Locator    *string        `gorm:"type:text"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	OccurredAt time.Time      `gorm:"not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
}

func (Event) TableName() string {
	return "activity_events"
}
