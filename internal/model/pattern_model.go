package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Pattern struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_patterns_user_sequence"`
	SequenceKey string         `gorm:"type:text;not null;uniqueIndex:idx_patterns_user_sequence"`
	Sequence    datatypes.JSON `gorm:"type:jsonb;not null"`
	Support     int            `gorm:"not null"`
	Confidence  float64        `gorm:"not null"`
	FirstSeen   time.Time      `gorm:"not null"`
	LastSeen    time.Time      `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Pattern) TableName() string {
	return "behavior_patterns"
}
