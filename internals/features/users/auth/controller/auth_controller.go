package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "agendaestudos_backend/internals/features/users/auth/dto"
	authRepo "agendaestudos_backend/internals/features/users/auth/repository"
	authService "agendaestudos_backend/internals/features/users/auth/service"
	helper "agendaestudos_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

var validate = validator.New()

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authService.Register(h.DB, req)
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Conta criada com sucesso para "+user.UserName+"! Agora você pode fazer o login.",
		authDTO.FromUserModel(*user))
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authService.Login(h.DB, req)
	if err != nil {
		return err
	}

	pair, err := authService.IssueTokenPair(h.DB, user, time.Now())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Login realizado com sucesso!", pair)
}

// POST /api/auth/login-google
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req authDTO.LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authService.LoginGoogle(h.DB, req.IDToken)
	if err != nil {
		return err
	}

	pair, err := authService.IssueTokenPair(h.DB, user, time.Now())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Login realizado com sucesso!", pair)
}

// POST /api/auth/refresh
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	now := time.Now()
	user, err := authService.Refresh(h.DB, req.RefreshToken, now)
	if err != nil {
		return err
	}

	pair, err := authService.IssueTokenPair(h.DB, user, now)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Token renovado", pair)
}

// POST /api/auth/logout  (autenticado)
func (h *AuthController) Logout(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	_ = c.BodyParser(&req) // refresh no corpo é opcional no logout

	access := strings.TrimPrefix(strings.TrimSpace(c.Get("Authorization")), "Bearer ")
	if err := authService.Logout(h.DB, access, req.RefreshToken, time.Now()); err != nil {
		return err
	}
	return helper.JsonOK(c, "Logout realizado. Até a próxima!", nil)
}

// GET /api/auth/me  (autenticado)
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	user, err := authRepo.FindUserByID(h.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}
	return helper.JsonOK(c, "ok", authDTO.FromUserModel(*user))
}

// PATCH /api/auth/me/preferencias  (autenticado)
func (h *AuthController) UpdatePreferences(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req authDTO.UpdatePreferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	user, err := authRepo.FindUserByID(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}

	updates := map[string]interface{}{}
	if req.Timezone != nil {
		tz := strings.TrimSpace(*req.Timezone)
		if _, err := time.LoadLocation(tz); err != nil {
			return helper.JsonValidationError(c, map[string][]string{"user_timezone": {"timezone"}})
		}
		updates["user_timezone"] = tz
	}
	if req.Preferences != nil {
		updates["user_preferences"] = req.Preferences
	}
	if len(updates) > 0 {
		if err := h.DB.Model(user).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar as preferências")
		}
	}

	user, _ = authRepo.FindUserByID(h.DB, userID)
	return helper.JsonUpdated(c, "Preferências salvas!", authDTO.FromUserModel(*user))
}

// POST /api/auth/change-password  (autenticado)
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	if err := authService.ChangePassword(h.DB, userID, req); err != nil {
		return err
	}
	return helper.JsonOK(c, "Senha alterada com sucesso!", nil)
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
