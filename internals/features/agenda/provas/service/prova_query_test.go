package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	materiaModel "agendaestudos_backend/internals/features/agenda/materias/model"
	provaModel "agendaestudos_backend/internals/features/agenda/provas/model"
	authModel "agendaestudos_backend/internals/features/users/auth/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&authModel.UserModel{},
		&materiaModel.MateriaModel{},
		&provaModel.ProvaModel{},
		&provaModel.MaterialApoioModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func criaUsuario(t *testing.T, db *gorm.DB, nome string) authModel.UserModel {
	t.Helper()
	u := authModel.UserModel{UserName: nome, UserEmail: nome + "@teste.dev", UserPassword: "hash"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("criar usuário: %v", err)
	}
	return u
}

func criaMateria(t *testing.T, db *gorm.DB, userID uuid.UUID, nome string) materiaModel.MateriaModel {
	t.Helper()
	m := materiaModel.MateriaModel{MateriaUserID: userID, MateriaNome: nome}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("criar matéria: %v", err)
	}
	return m
}

func criaProva(t *testing.T, db *gorm.DB, materiaID uuid.UUID, titulo string, data *time.Time) provaModel.ProvaModel {
	t.Helper()
	p := provaModel.ProvaModel{ProvaMateriaID: materiaID, ProvaTitulo: titulo, ProvaData: data}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("criar prova %s: %v", titulo, err)
	}
	return p
}

func dia(ano int, mes time.Month, d int) *time.Time {
	dt := time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
	return &dt
}

func TestListProvasOrdenacao(t *testing.T) {
	db := setupDB(t)
	user := criaUsuario(t, db, "ana")
	mat := criaMateria(t, db, user.UserID, "Biologia")

	criaProva(t, db, mat.MateriaID, "P2", dia(2026, 6, 20))
	criaProva(t, db, mat.MateriaID, "P1", dia(2026, 4, 15))
	criaProva(t, db, mat.MateriaID, "Sem data", nil)

	provas, err := ListProvas(db, user.UserID, "")
	if err != nil {
		t.Fatalf("listar: %v", err)
	}
	if len(provas) != 3 {
		t.Fatalf("esperava 3 provas, veio %d", len(provas))
	}
	// data ascendente, sem data por último
	if provas[0].ProvaTitulo != "P1" || provas[1].ProvaTitulo != "P2" || provas[2].ProvaTitulo != "Sem data" {
		t.Fatalf("ordem errada: %s, %s, %s", provas[0].ProvaTitulo, provas[1].ProvaTitulo, provas[2].ProvaTitulo)
	}
}

func TestListProvasFiltroMateria(t *testing.T) {
	db := setupDB(t)
	user := criaUsuario(t, db, "bia")
	bio := criaMateria(t, db, user.UserID, "Biologia")
	qui := criaMateria(t, db, user.UserID, "Química")
	criaProva(t, db, bio.MateriaID, "P1 Bio", dia(2026, 4, 1))
	criaProva(t, db, qui.MateriaID, "P1 Qui", dia(2026, 4, 2))

	soBio, err := ListProvas(db, user.UserID, bio.MateriaID.String())
	if err != nil {
		t.Fatalf("filtrar: %v", err)
	}
	if len(soBio) != 1 || soBio[0].ProvaTitulo != "P1 Bio" {
		t.Fatalf("filtro por matéria errado: %+v", soBio)
	}

	// uuid malformado casa com nada
	vazia, err := ListProvas(db, user.UserID, "xx")
	if err != nil {
		t.Fatalf("uuid malformado não pode dar erro: %v", err)
	}
	if len(vazia) != 0 {
		t.Fatalf("esperava lista vazia, veio %d", len(vazia))
	}
}

func TestDeleteProvaCascataMateriais(t *testing.T) {
	db := setupDB(t)
	user := criaUsuario(t, db, "caio")
	mat := criaMateria(t, db, user.UserID, "Física")
	prova := criaProva(t, db, mat.MateriaID, "P1", dia(2026, 5, 10))

	link := "https://exemplo.dev/resumo"
	material := provaModel.MaterialApoioModel{
		MaterialProvaID: prova.ProvaID,
		MaterialTitulo:  "Resumo",
		MaterialTipo:    provaModel.TipoLink,
		MaterialLinkURL: &link,
	}
	if err := db.Create(&material).Error; err != nil {
		t.Fatalf("criar material: %v", err)
	}

	if err := db.Delete(&prova).Error; err != nil {
		t.Fatalf("deletar prova: %v", err)
	}

	var sobraram int64
	if err := db.Model(&provaModel.MaterialApoioModel{}).Count(&sobraram).Error; err != nil {
		t.Fatalf("contar materiais: %v", err)
	}
	if sobraram != 0 {
		t.Fatalf("materiais deveriam cair com a prova, sobraram %d", sobraram)
	}
}

func TestFindMaterialOwnedEscopo(t *testing.T) {
	db := setupDB(t)
	ana := criaUsuario(t, db, "ana")
	beto := criaUsuario(t, db, "beto")

	mat := criaMateria(t, db, ana.UserID, "História")
	prova := criaProva(t, db, mat.MateriaID, "P1", dia(2026, 5, 2))

	link := "https://exemplo.dev/fontes"
	material := provaModel.MaterialApoioModel{
		MaterialProvaID: prova.ProvaID,
		MaterialTitulo:  "Fontes",
		MaterialTipo:    provaModel.TipoLink,
		MaterialLinkURL: &link,
	}
	if err := db.Create(&material).Error; err != nil {
		t.Fatalf("criar material: %v", err)
	}

	if _, err := FindMaterialOwned(db, ana.UserID, material.MaterialID); err != nil {
		t.Fatalf("dona deveria achar o material: %v", err)
	}
	if _, err := FindMaterialOwned(db, beto.UserID, material.MaterialID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("material de outro usuário tem que ser not found, veio %v", err)
	}
}
