package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	configs "agendaestudos_backend/internals/configs"
	authModel "agendaestudos_backend/internals/features/users/auth/model"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// IssueAccessToken assina o access JWT com user_id e user_timezone nos claims,
// os mesmos que o middleware de auth coloca nos Locals.
func IssueAccessToken(user *authModel.UserModel, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id":       user.UserID.String(),
		"user_name":     user.UserName,
		"user_timezone": user.UserTimezone,
		"iat":           now.Unix(),
		"exp":           now.Add(AccessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Falha ao assinar o token")
	}
	return signed, nil
}

// IssueRefreshToken assina o refresh JWT (só sub + exp) com o secret próprio.
func IssueRefreshToken(userID uuid.UUID, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.JWTRefreshSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Falha ao assinar o refresh token")
	}
	return signed, nil
}

// ParseRefreshToken valida assinatura/expiração e extrai o sub.
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Método de assinatura inválido")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token inválido")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token inválido")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token inválido")
	}
	return userID, nil
}

// RefreshTokenHash calcula o HMAC-SHA256 gravado no banco; o token em claro
// nunca é persistido.
func RefreshTokenHash(raw string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

// AccessTokenExpiry extrai o exp de um access token já emitido (para a
// blacklist no logout). Token ilegível conta como expirando agora + TTL.
func AccessTokenExpiry(raw string, now time.Time) time.Time {
	parser := jwt.Parser{SkipClaimsValidation: true}
	claims := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			return time.Unix(int64(exp), 0)
		}
	}
	return now.Add(AccessTokenTTL)
}
