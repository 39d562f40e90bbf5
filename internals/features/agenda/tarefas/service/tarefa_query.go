package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "agendaestudos_backend/internals/features/agenda/tarefas/model"
)

// Filtros da listagem de tarefas. Campo vazio = sem filtro.
// Valor desconhecido não é erro: a igualdade simplesmente não casa
// e a listagem volta vazia.
type Filtros struct {
	MateriaID  string
	Status     string
	Prioridade string
}

// ScopedTarefas monta a base de toda query de tarefa: join com materias
// restrito ao dono. Nunca filtrar por ownership depois do fetch.
func ScopedTarefas(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&m.TarefaModel{}).
		Joins("JOIN materias ON materias.materia_id = tarefas.tarefa_materia_id").
		Where("materias.materia_user_id = ?", userID)
}

// ListTarefas devolve as tarefas do usuário, filtradas e ordenadas por
// data de início ascendente.
func ListTarefas(db *gorm.DB, userID uuid.UUID, f Filtros) ([]m.TarefaModel, error) {
	tarefas, _, err := ListTarefasPage(db, userID, f, 0, 0)
	return tarefas, err
}

// ListTarefasPage é a variante paginada: limit<=0 desliga a paginação.
// O total volta sempre, já com os filtros aplicados.
func ListTarefasPage(db *gorm.DB, userID uuid.UUID, f Filtros, offset, limit int) ([]m.TarefaModel, int64, error) {
	base := func() (*gorm.DB, bool) {
		q := ScopedTarefas(db, userID)

		if mid := strings.TrimSpace(f.MateriaID); mid != "" {
			id, err := uuid.Parse(mid)
			if err != nil {
				// id malformado casa com nada
				return nil, false
			}
			q = q.Where("tarefas.tarefa_materia_id = ?", id)
		}
		if s := strings.TrimSpace(f.Status); s != "" {
			q = q.Where("tarefas.tarefa_status = ?", s)
		}
		if p := strings.TrimSpace(f.Prioridade); p != "" {
			q = q.Where("tarefas.tarefa_prioridade = ?", p)
		}
		return q, true
	}

	q, ok := base()
	if !ok {
		return []m.TarefaModel{}, 0, nil
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q, _ = base()
	q = q.Order("tarefas.tarefa_data_inicio ASC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}

	var tarefas []m.TarefaModel
	if err := q.Find(&tarefas).Error; err != nil {
		return nil, 0, err
	}
	return tarefas, total, nil
}

// FindTarefaOwned busca uma tarefa já no escopo do dono.
// Tarefa de outro usuário = gorm.ErrRecordNotFound, igual a inexistente.
func FindTarefaOwned(db *gorm.DB, userID, tarefaID uuid.UUID) (m.TarefaModel, error) {
	var tarefa m.TarefaModel
	err := ScopedTarefas(db, userID).
		Where("tarefas.tarefa_id = ?", tarefaID).
		First(&tarefa).Error
	return tarefa, err
}

// MateriaPertenceAoUsuario valida a FK de matéria antes de criar/mover tarefa.
func MateriaPertenceAoUsuario(db *gorm.DB, userID, materiaID uuid.UUID) (bool, error) {
	var count int64
	err := db.Table("materias").
		Where("materia_id = ? AND materia_user_id = ?", materiaID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
