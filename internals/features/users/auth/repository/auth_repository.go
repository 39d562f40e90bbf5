package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "agendaestudos_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("user_email = ? OR user_name = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("user_google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&authModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", hashed).Error
}

/* ====================== REFRESH TOKEN ====================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshTokenModel) error {
	return db.Create(token).Error
}

// FindRefreshTokenByHash só devolve tokens ainda válidos.
func FindRefreshTokenByHash(db *gorm.DB, hash []byte, now time.Time) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := db.
		Where("refresh_token_hash = ? AND refresh_token_expires_at > ?", hash, now).
		First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	return db.Where("refresh_token_hash = ?", hash).
		Delete(&authModel.RefreshTokenModel{}).Error
}

func DeleteRefreshTokensOfUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("refresh_token_user_id = ?", userID).
		Delete(&authModel.RefreshTokenModel{}).Error
}

/* ====================== BLACKLIST ====================== */

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiredAt: expiredAt,
	}).Error
}

// CleanupExpiredTokens remove blacklist e refresh tokens vencidos.
func CleanupExpiredTokens(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Where("token_blacklist_expired_at <= ?", now).
		Delete(&authModel.TokenBlacklistModel{})
	if res.Error != nil {
		return 0, res.Error
	}
	deleted := res.RowsAffected

	res = db.Where("refresh_token_expires_at <= ?", now).
		Delete(&authModel.RefreshTokenModel{})
	if res.Error != nil {
		return deleted, res.Error
	}
	return deleted + res.RowsAffected, nil
}
