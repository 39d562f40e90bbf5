package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "agendaestudos_backend/internals/features/agenda/horarios/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateHorarioRequest struct {
	MateriaID uuid.UUID `json:"horario_materia_id" validate:"required"`

	DiaSemana  string `json:"horario_dia_semana" validate:"required,oneof=SEG TER QUA QUI SEX SAB DOM"`
	HoraInicio string `json:"horario_hora_inicio" validate:"required,datetime=15:04"`
	Local      *string `json:"horario_local" validate:"omitempty,max=50"`
}

func (r *CreateHorarioRequest) Normalize() {
	r.DiaSemana = strings.ToUpper(strings.TrimSpace(r.DiaSemana))
	r.HoraInicio = strings.TrimSpace(r.HoraInicio)
	trimPtr(&r.Local)
}

func (r CreateHorarioRequest) ToModel() m.HorarioAulaModel {
	return m.HorarioAulaModel{
		HorarioMateriaID:  r.MateriaID,
		HorarioDiaSemana:  m.DiaSemana(r.DiaSemana),
		HorarioHoraInicio: r.HoraInicio,
		HorarioLocal:      r.Local,
	}
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateHorarioRequest struct {
	MateriaID *uuid.UUID `json:"horario_materia_id"`

	DiaSemana  *string `json:"horario_dia_semana" validate:"omitempty,oneof=SEG TER QUA QUI SEX SAB DOM"`
	HoraInicio *string `json:"horario_hora_inicio" validate:"omitempty,datetime=15:04"`
	Local      *string `json:"horario_local" validate:"omitempty,max=50"`
}

func (r *UpdateHorarioRequest) Normalize() {
	if r.DiaSemana != nil {
		d := strings.ToUpper(strings.TrimSpace(*r.DiaSemana))
		r.DiaSemana = &d
	}
	if r.HoraInicio != nil {
		h := strings.TrimSpace(*r.HoraInicio)
		r.HoraInicio = &h
	}
	trimPtr(&r.Local)
}

func (r UpdateHorarioRequest) Apply(mm *m.HorarioAulaModel) {
	if r.MateriaID != nil {
		mm.HorarioMateriaID = *r.MateriaID
	}
	if r.DiaSemana != nil {
		mm.HorarioDiaSemana = m.DiaSemana(*r.DiaSemana)
	}
	if r.HoraInicio != nil {
		mm.HorarioHoraInicio = *r.HoraInicio
	}
	if r.Local != nil {
		mm.HorarioLocal = r.Local
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type HorarioResponse struct {
	HorarioID uuid.UUID `json:"horario_id"`
	MateriaID uuid.UUID `json:"horario_materia_id"`

	DiaSemana        m.DiaSemana `json:"horario_dia_semana"`
	DiaSemanaDisplay string      `json:"horario_dia_semana_display"`
	HoraInicio       string      `json:"horario_hora_inicio"`
	Local            *string     `json:"horario_local,omitempty"`

	MateriaNome string `json:"materia_nome,omitempty"`

	CreatedAt time.Time `json:"horario_created_at"`
}

func FromHorarioModel(mm m.HorarioAulaModel) HorarioResponse {
	return HorarioResponse{
		HorarioID:        mm.HorarioID,
		MateriaID:        mm.HorarioMateriaID,
		DiaSemana:        mm.HorarioDiaSemana,
		DiaSemanaDisplay: m.DiaSemanaDisplay[mm.HorarioDiaSemana],
		HoraInicio:       mm.HorarioHoraInicio,
		Local:            mm.HorarioLocal,
		MateriaNome:      mm.Materia.MateriaNome,
		CreatedAt:        mm.HorarioCreatedAt,
	}
}

func FromHorarioModels(items []m.HorarioAulaModel) []HorarioResponse {
	out := make([]HorarioResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromHorarioModel(it))
	}
	return out
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
