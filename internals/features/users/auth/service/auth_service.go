package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	configs "agendaestudos_backend/internals/configs"
	authDTO "agendaestudos_backend/internals/features/users/auth/dto"
	authModel "agendaestudos_backend/internals/features/users/auth/model"
	authRepo "agendaestudos_backend/internals/features/users/auth/repository"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, req authDTO.RegisterRequest) (*authModel.UserModel, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	user := authModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
	}
	if tz := strings.TrimSpace(req.Timezone); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Fuso horário desconhecido")
		}
		user.UserTimezone = tz
	}

	if err := authRepo.CreateUser(db, &user); err != nil {
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Nome de usuário ou e-mail já cadastrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar a conta")
	}
	return &user, nil
}

/* ==========================
   LOGIN (user_name ou e-mail)
========================== */

func Login(db *gorm.DB, req authDTO.LoginRequest) (*authModel.UserModel, error) {
	user, err := authRepo.FindUserByEmailOrUsername(db, req.Identifier)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// mesmo erro do caso senha errada: não vazar existência da conta
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas")
	}
	return user, nil
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, idToken string) (*authModel.UserModel, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token do Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao decodificar o token do Google")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	name, googleID := claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}

	// conta local com o mesmo e-mail: vincula em vez de duplicar
	if user, err = authRepo.FindUserByEmail(db, email); err == nil {
		if err := db.Model(user).Update("user_google_id", googleID).Error; err != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao vincular conta Google")
		}
		user.UserGoogleID = &googleID
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}

	novo := authModel.UserModel{
		UserName:     uniqueUserName(db, name),
		UserEmail:    email,
		UserPassword: generateDummyPassword(),
		UserGoogleID: &googleID,
	}
	if err := authRepo.CreateUser(db, &novo); err != nil {
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "E-mail já cadastrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Falha ao criar a conta Google")
	}
	return &novo, nil
}

/* ==========================
   REFRESH (com rotação)
========================== */

func Refresh(db *gorm.DB, rawRefresh string, now time.Time) (*authModel.UserModel, error) {
	userID, err := ParseRefreshToken(rawRefresh)
	if err != nil {
		return nil, err
	}

	hash := RefreshTokenHash(rawRefresh)
	if _, err := authRepo.FindRefreshTokenByHash(db, hash, now); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token desconhecido")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não encontrado")
	}

	// rotação: o token usado deixa de valer
	if err := authRepo.DeleteRefreshTokenByHash(db, hash); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}
	return user, nil
}

// IssueTokenPair emite access + refresh e persiste o hash do refresh.
func IssueTokenPair(db *gorm.DB, user *authModel.UserModel, now time.Time) (authDTO.TokenPairResponse, error) {
	var pair authDTO.TokenPairResponse

	access, err := IssueAccessToken(user, now)
	if err != nil {
		return pair, err
	}
	refresh, err := IssueRefreshToken(user.UserID, now)
	if err != nil {
		return pair, err
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      RefreshTokenHash(refresh),
		RefreshTokenExpiresAt: now.Add(RefreshTokenTTL),
	}); err != nil {
		return pair, fiber.NewError(fiber.StatusInternalServerError, "Falha ao persistir a sessão")
	}

	pair.AccessToken = access
	pair.RefreshToken = refresh
	pair.User = authDTO.FromUserModel(*user)
	return pair, nil
}

/* ==========================
   LOGOUT
========================== */

// Logout põe o access token na blacklist até o exp dele e derruba o refresh,
// se enviado.
func Logout(db *gorm.DB, accessToken, rawRefresh string, now time.Time) error {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Token ausente")
	}

	if err := authRepo.BlacklistToken(db, accessToken, AccessTokenExpiry(accessToken, now)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha no logout")
	}

	if rawRefresh = strings.TrimSpace(rawRefresh); rawRefresh != "" {
		_ = authRepo.DeleteRefreshTokenByHash(db, RefreshTokenHash(rawRefresh))
	}
	return nil
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, userID uuid.UUID, req authDTO.ChangePasswordRequest) error {
	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.CurrentPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Senha atual incorreta")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao processar a senha")
	}
	if err := authRepo.UpdateUserPassword(db, userID, string(hashed)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao trocar a senha")
	}

	// sessões antigas caem junto com a senha
	_ = authRepo.DeleteRefreshTokensOfUser(db, userID)
	return nil
}

/* ==========================
   helpers
========================== */

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite e afins não expõem PgError
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

// uniqueUserName resolve colisão de nome vindo do Google com um sufixo curto.
func uniqueUserName(db *gorm.DB, base string) string {
	name := strings.TrimSpace(base)
	if name == "" {
		name = "estudante"
	}
	var n int64
	if err := db.Table("users").Where("user_name = ?", name).Count(&n).Error; err == nil && n == 0 {
		return name
	}
	return name + "_" + randomSuffix(4)
}

func generateDummyPassword() string {
	// conta Google não loga por senha; hash de um segredo aleatório
	raw := randomSuffix(32)
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return raw
	}
	return string(hashed)
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)[:n]
}
