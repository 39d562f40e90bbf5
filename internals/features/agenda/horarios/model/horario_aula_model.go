package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	materiaModel "agendaestudos_backend/internals/features/agenda/materias/model"
)

type DiaSemana string

const (
	DiaSegunda DiaSemana = "SEG"
	DiaTerca   DiaSemana = "TER"
	DiaQuarta  DiaSemana = "QUA"
	DiaQuinta  DiaSemana = "QUI"
	DiaSexta   DiaSemana = "SEX"
	DiaSabado  DiaSemana = "SAB"
	DiaDomingo DiaSemana = "DOM"
)

// DiasSemana na ordem da semana (segunda = índice 0, como time.Weekday ajustado).
var DiasSemana = []DiaSemana{DiaSegunda, DiaTerca, DiaQuarta, DiaQuinta, DiaSexta, DiaSabado, DiaDomingo}

// DiaSemanaDisplay é o rótulo humano de cada dia.
var DiaSemanaDisplay = map[DiaSemana]string{
	DiaSegunda: "Segunda-feira",
	DiaTerca:   "Terça-feira",
	DiaQuarta:  "Quarta-feira",
	DiaQuinta:  "Quinta-feira",
	DiaSexta:   "Sexta-feira",
	DiaSabado:  "Sábado",
	DiaDomingo: "Domingo",
}

// HorarioAulaModel é um slot semanal recorrente de aula de uma matéria.
// Hora como "HH:MM": comparação lexicográfica = comparação cronológica.
type HorarioAulaModel struct {
	HorarioID        uuid.UUID `gorm:"type:uuid;primaryKey;column:horario_id" json:"horario_id"`
	HorarioMateriaID uuid.UUID `gorm:"type:uuid;not null;index:idx_horarios_materia;column:horario_materia_id" json:"horario_materia_id"`

	HorarioDiaSemana  DiaSemana `gorm:"type:varchar(3);not null;column:horario_dia_semana" json:"horario_dia_semana"`
	HorarioHoraInicio string    `gorm:"type:varchar(5);not null;column:horario_hora_inicio" json:"horario_hora_inicio"`
	HorarioLocal      *string   `gorm:"type:varchar(50);column:horario_local" json:"horario_local,omitempty"`

	HorarioCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:horario_created_at" json:"horario_created_at"`
	HorarioUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:horario_updated_at" json:"horario_updated_at"`

	Materia materiaModel.MateriaModel `gorm:"foreignKey:HorarioMateriaID;references:MateriaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HorarioAulaModel) TableName() string { return "horarios_aula" }

func (m *HorarioAulaModel) BeforeCreate(tx *gorm.DB) error {
	if m.HorarioID == uuid.Nil {
		m.HorarioID = uuid.New()
	}
	return nil
}

// ValidDiaSemana reporta se d é um dia conhecido.
func ValidDiaSemana(d string) bool {
	for _, dia := range DiasSemana {
		if string(dia) == d {
			return true
		}
	}
	return false
}

// DiaSemanaDeWeekday converte time.Weekday para a sigla (segunda = 0).
func DiaSemanaDeWeekday(w time.Weekday) DiaSemana {
	idx := (int(w) + 6) % 7 // domingo(0) vira 6
	return DiasSemana[idx]
}

// OrdemDiaSemanaSQL é o CASE usado para ordenar por dia da semana
// (a ordem do enum, não a lexicográfica).
const OrdemDiaSemanaSQL = `CASE horario_dia_semana
	WHEN 'SEG' THEN 0 WHEN 'TER' THEN 1 WHEN 'QUA' THEN 2
	WHEN 'QUI' THEN 3 WHEN 'SEX' THEN 4 WHEN 'SAB' THEN 5
	ELSE 6 END`
