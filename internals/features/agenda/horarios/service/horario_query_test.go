package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	horarioModel "agendaestudos_backend/internals/features/agenda/horarios/model"
	materiaModel "agendaestudos_backend/internals/features/agenda/materias/model"
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
		&horarioModel.HorarioAulaModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func criaGrade(t *testing.T, db *gorm.DB) (authModel.UserModel, materiaModel.MateriaModel) {
	t.Helper()
	u := authModel.UserModel{UserName: "ana", UserEmail: "ana@teste.dev", UserPassword: "hash"}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("criar usuário: %v", err)
	}
	m := materiaModel.MateriaModel{MateriaUserID: u.UserID, MateriaNome: "Cálculo I"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("criar matéria: %v", err)
	}
	return u, m
}

func criaAula(t *testing.T, db *gorm.DB, materiaID uuid.UUID, dia horarioModel.DiaSemana, hora string) {
	t.Helper()
	h := horarioModel.HorarioAulaModel{
		HorarioMateriaID:  materiaID,
		HorarioDiaSemana:  dia,
		HorarioHoraInicio: hora,
	}
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("criar aula %s %s: %v", dia, hora, err)
	}
}

func TestListHorariosOrdenacaoSemanal(t *testing.T) {
	db := setupDB(t)
	user, mat := criaGrade(t, db)

	// inseridas fora de ordem de propósito
	criaAula(t, db, mat.MateriaID, horarioModel.DiaQuarta, "08:00")
	criaAula(t, db, mat.MateriaID, horarioModel.DiaSegunda, "14:00")
	criaAula(t, db, mat.MateriaID, horarioModel.DiaSegunda, "08:00")
	criaAula(t, db, mat.MateriaID, horarioModel.DiaDomingo, "10:00")

	grade, err := ListHorarios(db, user.UserID, "")
	if err != nil {
		t.Fatalf("listar grade: %v", err)
	}
	if len(grade) != 4 {
		t.Fatalf("esperava 4 aulas, veio %d", len(grade))
	}

	ordem := []string{"SEG 08:00", "SEG 14:00", "QUA 08:00", "DOM 10:00"}
	for i, esperado := range ordem {
		got := string(grade[i].HorarioDiaSemana) + " " + grade[i].HorarioHoraInicio
		if got != esperado {
			t.Fatalf("posição %d: esperava %q, veio %q", i, esperado, got)
		}
	}

	// o Preload traz o nome da matéria para a resposta
	if grade[0].Materia.MateriaNome != "Cálculo I" {
		t.Fatalf("matéria não carregada: %+v", grade[0].Materia)
	}
}

func TestListHorariosFiltroDia(t *testing.T) {
	db := setupDB(t)
	user, mat := criaGrade(t, db)
	criaAula(t, db, mat.MateriaID, horarioModel.DiaSegunda, "08:00")
	criaAula(t, db, mat.MateriaID, horarioModel.DiaTerca, "10:00")

	seg, err := ListHorarios(db, user.UserID, "SEG")
	if err != nil {
		t.Fatalf("filtrar por dia: %v", err)
	}
	if len(seg) != 1 || seg[0].HorarioDiaSemana != horarioModel.DiaSegunda {
		t.Fatalf("filtro de dia errado: %+v", seg)
	}

	// dia que não existe no enum: vazio, sem erro
	nada, err := ListHorarios(db, user.UserID, "XYZ")
	if err != nil {
		t.Fatalf("dia desconhecido não pode dar erro: %v", err)
	}
	if len(nada) != 0 {
		t.Fatalf("dia desconhecido deveria casar com nada, veio %d", len(nada))
	}
}
