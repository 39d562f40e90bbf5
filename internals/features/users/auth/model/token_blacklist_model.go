package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel guarda access tokens revogados por logout até expirarem.
type TokenBlacklistModel struct {
	TokenBlacklistID        uuid.UUID `gorm:"type:uuid;primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	TokenBlacklistToken     string    `gorm:"type:text;not null;index:idx_token_blacklist_token;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time `gorm:"type:timestamptz;not null;column:token_blacklist_expired_at" json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:token_blacklist_created_at" json:"token_blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }

func (m *TokenBlacklistModel) BeforeCreate(tx *gorm.DB) error {
	if m.TokenBlacklistID == uuid.Nil {
		m.TokenBlacklistID = uuid.New()
	}
	return nil
}
