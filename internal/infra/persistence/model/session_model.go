package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table.
type SessionModel struct {
	Token     string     `gorm:"type:varchar(64);primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
