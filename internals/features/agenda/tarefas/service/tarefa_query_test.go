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
	tarefaModel "agendaestudos_backend/internals/features/agenda/tarefas/model"
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
		&tarefaModel.TarefaModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func criaUsuario(t *testing.T, db *gorm.DB, nome string) authModel.UserModel {
	t.Helper()
	u := authModel.UserModel{
		UserName:     nome,
		UserEmail:    nome + "@teste.dev",
		UserPassword: "hash",
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("criar usuário %s: %v", nome, err)
	}
	return u
}

func criaMateria(t *testing.T, db *gorm.DB, userID uuid.UUID, nome string) materiaModel.MateriaModel {
	t.Helper()
	m := materiaModel.MateriaModel{MateriaUserID: userID, MateriaNome: nome}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("criar matéria %s: %v", nome, err)
	}
	return m
}

func criaTarefa(t *testing.T, db *gorm.DB, materiaID uuid.UUID, titulo string, status tarefaModel.TarefaStatus, prioridade tarefaModel.TarefaPrioridade, inicio time.Time) tarefaModel.TarefaModel {
	t.Helper()
	tf := tarefaModel.TarefaModel{
		TarefaMateriaID:  materiaID,
		TarefaTitulo:     titulo,
		TarefaDataInicio: inicio,
		TarefaDataFim:    inicio.Add(48 * time.Hour),
		TarefaStatus:     status,
		TarefaPrioridade: prioridade,
	}
	if err := db.Create(&tf).Error; err != nil {
		t.Fatalf("criar tarefa %s: %v", titulo, err)
	}
	return tf
}

func TestListTarefasFiltros(t *testing.T) {
	db := setupDB(t)
	user := criaUsuario(t, db, "ana")
	calc := criaMateria(t, db, user.UserID, "Cálculo I")
	fis := criaMateria(t, db, user.UserID, "Física I")

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	criaTarefa(t, db, calc.MateriaID, "Lista 1", tarefaModel.StatusAFazer, tarefaModel.PrioridadeAlta, base)
	criaTarefa(t, db, calc.MateriaID, "Lista 2", tarefaModel.StatusConcluida, tarefaModel.PrioridadeMedia, base.Add(time.Hour))
	criaTarefa(t, db, fis.MateriaID, "Relatório", tarefaModel.StatusEmAndamento, tarefaModel.PrioridadeAlta, base.Add(2*time.Hour))

	// sem filtro: tudo, ordenado por data de início
	todas, err := ListTarefas(db, user.UserID, Filtros{})
	if err != nil {
		t.Fatalf("listar sem filtro: %v", err)
	}
	if len(todas) != 3 {
		t.Fatalf("esperava 3 tarefas, veio %d", len(todas))
	}
	if todas[0].TarefaTitulo != "Lista 1" || todas[2].TarefaTitulo != "Relatório" {
		t.Fatalf("ordem errada: %s ... %s", todas[0].TarefaTitulo, todas[2].TarefaTitulo)
	}

	// paginação: limit 2 devolve as 2 primeiras e o total sem corte
	pagina, total, err := ListTarefasPage(db, user.UserID, Filtros{}, 0, 2)
	if err != nil {
		t.Fatalf("paginar: %v", err)
	}
	if total != 3 || len(pagina) != 2 || pagina[0].TarefaTitulo != "Lista 1" {
		t.Fatalf("paginação errada: total=%d n=%d", total, len(pagina))
	}

	// filtro por matéria
	soCalc, err := ListTarefas(db, user.UserID, Filtros{MateriaID: calc.MateriaID.String()})
	if err != nil {
		t.Fatalf("filtrar por matéria: %v", err)
	}
	if len(soCalc) != 2 {
		t.Fatalf("esperava 2 de Cálculo, veio %d", len(soCalc))
	}

	// filtro por status + prioridade combinados
	urgentes, err := ListTarefas(db, user.UserID, Filtros{Status: "em_andamento", Prioridade: "alta"})
	if err != nil {
		t.Fatalf("filtrar status+prioridade: %v", err)
	}
	if len(urgentes) != 1 || urgentes[0].TarefaTitulo != "Relatório" {
		t.Fatalf("filtro combinado errado: %+v", urgentes)
	}
}

func TestListTarefasValoresDesconhecidos(t *testing.T) {
	db := setupDB(t)
	user := criaUsuario(t, db, "bia")
	mat := criaMateria(t, db, user.UserID, "Química")
	criaTarefa(t, db, mat.MateriaID, "Prática", tarefaModel.StatusAFazer, tarefaModel.PrioridadeBaixa, time.Now())

	// status que não existe: lista vazia, nunca erro
	out, err := ListTarefas(db, user.UserID, Filtros{Status: "pausada"})
	if err != nil {
		t.Fatalf("status desconhecido não pode dar erro: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("status desconhecido deveria casar com nada, veio %d", len(out))
	}

	// materia_id malformado idem
	out, err = ListTarefas(db, user.UserID, Filtros{MateriaID: "nao-e-uuid"})
	if err != nil {
		t.Fatalf("uuid malformado não pode dar erro: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("uuid malformado deveria casar com nada, veio %d", len(out))
	}
}

func TestEscopoEntreUsuarios(t *testing.T) {
	db := setupDB(t)
	ana := criaUsuario(t, db, "ana")
	beto := criaUsuario(t, db, "beto")

	matAna := criaMateria(t, db, ana.UserID, "História")
	tarefaAna := criaTarefa(t, db, matAna.MateriaID, "Resenha", tarefaModel.StatusAFazer, tarefaModel.PrioridadeMedia, time.Now())

	// listagem do beto não vê nada da ana
	doBeto, err := ListTarefas(db, beto.UserID, Filtros{})
	if err != nil {
		t.Fatalf("listar: %v", err)
	}
	if len(doBeto) != 0 {
		t.Fatalf("beto não deveria ver tarefas da ana, veio %d", len(doBeto))
	}

	// acesso direto por id de outro dono = not found, indistinguível de inexistente
	if _, err := FindTarefaOwned(db, beto.UserID, tarefaAna.TarefaID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("esperava ErrRecordNotFound, veio %v", err)
	}
	if _, err := FindTarefaOwned(db, ana.UserID, tarefaAna.TarefaID); err != nil {
		t.Fatalf("dona deveria achar a própria tarefa: %v", err)
	}

	// validação de FK cruzada
	ok, err := MateriaPertenceAoUsuario(db, beto.UserID, matAna.MateriaID)
	if err != nil {
		t.Fatalf("checar posse: %v", err)
	}
	if ok {
		t.Fatal("matéria da ana não pertence ao beto")
	}
}

func TestDeleteMateriaCascataTarefas(t *testing.T) {
	db := setupDB(t)
	user := criaUsuario(t, db, "caio")
	mat := criaMateria(t, db, user.UserID, "Geografia")
	criaTarefa(t, db, mat.MateriaID, "Mapa", tarefaModel.StatusAFazer, tarefaModel.PrioridadeMedia, time.Now())
	criaTarefa(t, db, mat.MateriaID, "Seminário", tarefaModel.StatusAFazer, tarefaModel.PrioridadeAlta, time.Now())

	if err := db.Delete(&mat).Error; err != nil {
		t.Fatalf("deletar matéria: %v", err)
	}

	var sobraram int64
	if err := db.Model(&tarefaModel.TarefaModel{}).Count(&sobraram).Error; err != nil {
		t.Fatalf("contar tarefas: %v", err)
	}
	if sobraram != 0 {
		t.Fatalf("tarefas deveriam cair com a matéria, sobraram %d", sobraram)
	}
}
