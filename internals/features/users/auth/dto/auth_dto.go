package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	authModel "agendaestudos_backend/internals/features/users/auth/model"
)

/* =========================================================
   REQUESTS
   ========================================================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"user_email" validate:"required,email,max=255"`
	Password string `json:"user_password" validate:"required,min=8,max=72"`

	Timezone string `json:"user_timezone" validate:"omitempty,max=64"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Timezone = strings.TrimSpace(r.Timezone)
}

type LoginRequest struct {
	// aceita user_name OU e-mail
	Identifier string `json:"identifier" validate:"required,max=255"`
	Password   string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type UpdatePreferencesRequest struct {
	Timezone    *string           `json:"user_timezone" validate:"omitempty,max=64"`
	Preferences datatypes.JSONMap `json:"user_preferences"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type UserResponse struct {
	UserID       uuid.UUID         `json:"user_id"`
	UserName     string            `json:"user_name"`
	Email        string            `json:"user_email"`
	Timezone     string            `json:"user_timezone"`
	Preferences  datatypes.JSONMap `json:"user_preferences,omitempty"`
	CreatedAt    time.Time         `json:"user_created_at"`
}

func FromUserModel(u authModel.UserModel) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		UserName:    u.UserName,
		Email:       u.UserEmail,
		Timezone:    u.UserTimezone,
		Preferences: u.UserPreferences,
		CreatedAt:   u.UserCreatedAt,
	}
}

type TokenPairResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
