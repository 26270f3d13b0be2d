package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Template struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name                string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description         string         `gorm:"type:text"`
	Category            string         `gorm:"type:varchar(100);not null;index"`
	Steps               datatypes.JSON `gorm:"type:jsonb;not null"`
	MinSupport          int            `gorm:"not null;default:1"`
	MinConfidence       float64        `gorm:"not null;default:0"`
	FuzzyMatch          bool           `gorm:"not null;default:false"`
	ConfidenceThreshold float64        `gorm:"not null;default:0.5"`
	Enabled             bool           `gorm:"not null;default:true"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (Template) TableName() string {
	return "workflow_templates"
}
