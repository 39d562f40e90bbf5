package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_users_user_name;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_user_email;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"type:varchar(255);not null;column:user_password" json:"-"`

	// preenchido só em contas criadas/vinculadas via Google
	UserGoogleID *string `gorm:"type:varchar(64);uniqueIndex:uq_users_user_google_id;column:user_google_id" json:"-"`

	// IANA, usado para resolver "hoje"/"agora" no dashboard
	UserTimezone string `gorm:"type:varchar(64);not null;default:'America/Sao_Paulo';column:user_timezone" json:"user_timezone"`

	// preferências livres do frontend (tema, ordenação do dashboard, etc)
	UserPreferences datatypes.JSONMap `gorm:"type:jsonb;column:user_preferences" json:"user_preferences,omitempty"`

	UserCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
