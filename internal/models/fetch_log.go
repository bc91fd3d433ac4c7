package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FetchLog - сырые ответы внешних API для аудита и отладки.
// Все запросы одного запуска воркера делят общий batch_id.
type FetchLog struct {
	ID        uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	BatchID   uuid.UUID      `gorm:"type:char(36);index" json:"batch_id"`
	Source    string         `gorm:"not null;index" json:"source"`
	FetchedAt time.Time      `gorm:"not null" json:"fetched_at"`
	Payload   datatypes.JSON `gorm:"not null" json:"payload"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (l *FetchLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
