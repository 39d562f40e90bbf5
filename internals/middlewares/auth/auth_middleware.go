package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"agendaestudos_backend/internals/configs"
	authModel "agendaestudos_backend/internals/features/users/auth/model"
)

// AuthMiddleware valida o access token e guarda user_id/user_timezone nos Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// blacklist (logout explícito)
		var existing authModel.TokenBlacklistModel
		if err := db.Where("token_blacklist_token = ?", tokenString).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token revogado")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET ausente")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
		}

		userID, ok := claims["user_id"].(string)
		if !ok || strings.TrimSpace(userID) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sem user_id")
		}
		c.Locals("user_id", userID)

		if tz, ok := claims["user_timezone"].(string); ok && tz != "" {
			c.Locals("user_timezone", tz)
		}

		return c.Next()
	}
}

// Authorization: Bearer xxx, com fallback para cookie access_token.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, nil
		}
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("token de acesso ausente")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("claim exp ausente")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("claim exp inválida")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token expirado")
	}
	return nil
}
