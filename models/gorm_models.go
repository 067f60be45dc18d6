// models/gorm_models.go
package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormDraftRecord 选秀归档模型
type GormDraftRecord struct {
	gorm.Model
	DraftID   string         `gorm:"uniqueIndex;not null"`
	HostName  string         `gorm:"not null"`
	GuestName string         `gorm:"not null"`
	Preset    string         `gorm:"not null"`
	Events    datatypes.JSON `gorm:"type:jsonb;not null"`
	Duration  int            `gorm:"default:0"` // 选秀时长(秒)
}
