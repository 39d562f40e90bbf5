package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenModel guarda o HMAC do refresh token, nunca o token em claro.
type RefreshTokenModel struct {
	RefreshTokenID        uuid.UUID `gorm:"type:uuid;primaryKey;column:refresh_token_id" json:"refresh_token_id"`
	RefreshTokenUserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_refresh_tokens_user;column:refresh_token_user_id" json:"refresh_token_user_id"`
	RefreshTokenHash      []byte    `gorm:"type:bytea;not null;column:refresh_token_hash" json:"-"`
	RefreshTokenExpiresAt time.Time `gorm:"type:timestamptz;not null;column:refresh_token_expires_at" json:"refresh_token_expires_at"`
	RefreshTokenCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:refresh_token_created_at" json:"refresh_token_created_at"`

	User UserModel `gorm:"foreignKey:RefreshTokenUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }

func (m *RefreshTokenModel) BeforeCreate(tx *gorm.DB) error {
	if m.RefreshTokenID == uuid.Nil {
		m.RefreshTokenID = uuid.New()
	}
	return nil
}
