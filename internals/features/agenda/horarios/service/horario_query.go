package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	horarioModel "agendaestudos_backend/internals/features/agenda/horarios/model"
)

func ScopedHorarios(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&horarioModel.HorarioAulaModel{}).
		Joins("JOIN materias ON materias.materia_id = horarios_aula.horario_materia_id").
		Where("materias.materia_user_id = ?", userID)
}

// ListHorarios devolve a grade semanal: dia da semana (ordem do enum) e hora.
// dia vazio = semana inteira; dia desconhecido = lista vazia.
func ListHorarios(db *gorm.DB, userID uuid.UUID, dia string) ([]horarioModel.HorarioAulaModel, error) {
	q := ScopedHorarios(db, userID)

	if dia != "" {
		if !horarioModel.ValidDiaSemana(dia) {
			return []horarioModel.HorarioAulaModel{}, nil
		}
		q = q.Where("horarios_aula.horario_dia_semana = ?", dia)
	}

	var horarios []horarioModel.HorarioAulaModel
	if err := q.
		Preload("Materia").
		Order(horarioModel.OrdemDiaSemanaSQL).
		Order("horarios_aula.horario_hora_inicio ASC").
		Find(&horarios).Error; err != nil {
		return nil, err
	}
	return horarios, nil
}

func FindHorarioOwned(db *gorm.DB, userID, horarioID uuid.UUID) (horarioModel.HorarioAulaModel, error) {
	var horario horarioModel.HorarioAulaModel
	err := ScopedHorarios(db, userID).
		Preload("Materia").
		Where("horarios_aula.horario_id = ?", horarioID).
		First(&horario).Error
	return horario, err
}
