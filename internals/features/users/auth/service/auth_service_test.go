package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	configs "agendaestudos_backend/internals/configs"
	authDTO "agendaestudos_backend/internals/features/users/auth/dto"
	authModel "agendaestudos_backend/internals/features/users/auth/model"
	authRepo "agendaestudos_backend/internals/features/users/auth/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	configs.JWTSecret = "segredo-de-teste"
	configs.JWTRefreshSecret = "segredo-refresh-de-teste"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.RefreshTokenModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func statusDe(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("esperava *fiber.Error, veio %T: %v", err, err)
	}
	return fe.Code
}

func TestRegisterELogin(t *testing.T) {
	db := setupDB(t)

	user, err := Register(db, authDTO.RegisterRequest{
		UserName: "ana",
		Email:    "ana@teste.dev",
		Password: "senha-secreta",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.UserPassword == "senha-secreta" {
		t.Fatal("senha não pode ser gravada em claro")
	}
	if user.UserTimezone != "America/Sao_Paulo" {
		t.Fatalf("timezone default errado: %s", user.UserTimezone)
	}

	// login por user_name
	if _, err := Login(db, authDTO.LoginRequest{Identifier: "ana", Password: "senha-secreta"}); err != nil {
		t.Fatalf("login por nome: %v", err)
	}
	// login por e-mail
	if _, err := Login(db, authDTO.LoginRequest{Identifier: "ana@teste.dev", Password: "senha-secreta"}); err != nil {
		t.Fatalf("login por e-mail: %v", err)
	}

	// senha errada e conta inexistente retornam o mesmo 401
	_, err = Login(db, authDTO.LoginRequest{Identifier: "ana", Password: "errada"})
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("senha errada deveria dar 401: %v", err)
	}
	_, err = Login(db, authDTO.LoginRequest{Identifier: "ninguem", Password: "x"})
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("conta inexistente deveria dar 401: %v", err)
	}
}

func TestRegisterDuplicado(t *testing.T) {
	db := setupDB(t)

	req := authDTO.RegisterRequest{UserName: "ana", Email: "ana@teste.dev", Password: "senha-secreta"}
	if _, err := Register(db, req); err != nil {
		t.Fatalf("primeiro register: %v", err)
	}

	_, err := Register(db, req)
	if statusDe(t, err) != fiber.StatusConflict {
		t.Fatalf("duplicado deveria dar 409: %v", err)
	}
}

func TestRegisterTimezoneInvalido(t *testing.T) {
	db := setupDB(t)

	_, err := Register(db, authDTO.RegisterRequest{
		UserName: "ana",
		Email:    "ana@teste.dev",
		Password: "senha-secreta",
		Timezone: "Marte/Cratera",
	})
	if statusDe(t, err) != fiber.StatusBadRequest {
		t.Fatalf("timezone inválido deveria dar 400: %v", err)
	}
}

func TestRefreshComRotacao(t *testing.T) {
	db := setupDB(t)

	user, err := Register(db, authDTO.RegisterRequest{UserName: "ana", Email: "ana@teste.dev", Password: "senha-secreta"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	now := time.Now()
	pair, err := IssueTokenPair(db, user, now)
	if err != nil {
		t.Fatalf("emitir par: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("par incompleto: %+v", pair)
	}

	// primeiro uso funciona
	mesmo, err := Refresh(db, pair.RefreshToken, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if mesmo.UserID != user.UserID {
		t.Fatalf("refresh devolveu outro usuário: %s", mesmo.UserID)
	}

	// rotação: o mesmo token não vale duas vezes
	_, err = Refresh(db, pair.RefreshToken, now.Add(2*time.Minute))
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("refresh reusado deveria dar 401: %v", err)
	}

	// token forjado com outro secret também cai
	_, err = Refresh(db, "nem.um.jwt", now)
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("refresh inválido deveria dar 401: %v", err)
	}
}

func TestLogoutBlacklist(t *testing.T) {
	db := setupDB(t)

	user, err := Register(db, authDTO.RegisterRequest{UserName: "ana", Email: "ana@teste.dev", Password: "senha-secreta"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	now := time.Now()
	pair, err := IssueTokenPair(db, user, now)
	if err != nil {
		t.Fatalf("emitir par: %v", err)
	}

	if err := Logout(db, pair.AccessToken, pair.RefreshToken, now); err != nil {
		t.Fatalf("logout: %v", err)
	}

	// access token entra na blacklist com o exp dele
	var bl authModel.TokenBlacklistModel
	if err := db.Where("token_blacklist_token = ?", pair.AccessToken).First(&bl).Error; err != nil {
		t.Fatalf("token não foi para a blacklist: %v", err)
	}
	if !bl.TokenBlacklistExpiredAt.After(now) {
		t.Fatalf("expiração da blacklist no passado: %v", bl.TokenBlacklistExpiredAt)
	}

	// refresh derrubado junto
	_, err = Refresh(db, pair.RefreshToken, now.Add(time.Minute))
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("refresh pós-logout deveria dar 401: %v", err)
	}
}

func TestChangePasswordDerrubaSessoes(t *testing.T) {
	db := setupDB(t)

	user, err := Register(db, authDTO.RegisterRequest{UserName: "ana", Email: "ana@teste.dev", Password: "senha-antiga"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	now := time.Now()
	pair, err := IssueTokenPair(db, user, now)
	if err != nil {
		t.Fatalf("emitir par: %v", err)
	}

	// senha atual errada não troca nada
	err = ChangePassword(db, user.UserID, authDTO.ChangePasswordRequest{CurrentPassword: "errada", NewPassword: "senha-nova-123"})
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("senha atual errada deveria dar 401: %v", err)
	}

	if err := ChangePassword(db, user.UserID, authDTO.ChangePasswordRequest{CurrentPassword: "senha-antiga", NewPassword: "senha-nova-123"}); err != nil {
		t.Fatalf("trocar senha: %v", err)
	}

	if _, err := Login(db, authDTO.LoginRequest{Identifier: "ana", Password: "senha-nova-123"}); err != nil {
		t.Fatalf("login com a senha nova: %v", err)
	}
	_, err = Login(db, authDTO.LoginRequest{Identifier: "ana", Password: "senha-antiga"})
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("senha antiga deveria parar de valer: %v", err)
	}

	// refresh emitido antes da troca não vale mais
	_, err = Refresh(db, pair.RefreshToken, now.Add(time.Minute))
	if statusDe(t, err) != fiber.StatusUnauthorized {
		t.Fatalf("sessões antigas deveriam cair com a troca de senha: %v", err)
	}
}

func TestCleanupExpiredTokens(t *testing.T) {
	db := setupDB(t)

	user, err := Register(db, authDTO.RegisterRequest{UserName: "ana", Email: "ana@teste.dev", Password: "senha-secreta"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	now := time.Now()
	if err := authRepo.BlacklistToken(db, "vencido", now.Add(-time.Hour)); err != nil {
		t.Fatalf("blacklist: %v", err)
	}
	if err := authRepo.BlacklistToken(db, "vigente", now.Add(time.Hour)); err != nil {
		t.Fatalf("blacklist: %v", err)
	}
	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshTokenModel{
		RefreshTokenUserID:    user.UserID,
		RefreshTokenHash:      RefreshTokenHash("antigo"),
		RefreshTokenExpiresAt: now.Add(-time.Minute),
	}); err != nil {
		t.Fatalf("refresh vencido: %v", err)
	}

	n, err := authRepo.CleanupExpiredTokens(db, now)
	if err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if n != 2 {
		t.Fatalf("esperava remover 2 (blacklist vencida + refresh vencido), veio %d", n)
	}

	var vigentes int64
	if err := db.Model(&authModel.TokenBlacklistModel{}).Count(&vigentes).Error; err != nil {
		t.Fatalf("contar blacklist: %v", err)
	}
	if vigentes != 1 {
		t.Fatalf("a entrada vigente deveria sobrar, veio %d", vigentes)
	}
}
