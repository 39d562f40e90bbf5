package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "agendaestudos_backend/internals/features/agenda/provas/model"
)

const dateLayout = "2006-01-02"

/* =========================================================
   CREATE
   ========================================================= */

type CreateProvaRequest struct {
	MateriaID uuid.UUID `json:"prova_materia_id" validate:"required"`

	Titulo string `json:"prova_titulo" validate:"required,min=1,max=200"`

	// data sem hora, "2006-01-02"; opcional (prova ainda sem data marcada)
	Data *string `json:"prova_data" validate:"omitempty,datetime=2006-01-02"`

	Observacoes *string `json:"prova_observacoes"`
	LinkAnexos  *string `json:"prova_link_anexos" validate:"omitempty,url,max=200"`
}

func (r *CreateProvaRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	trimPtr(&r.Data)
	trimPtr(&r.Observacoes)
	trimPtr(&r.LinkAnexos)
}

func (r CreateProvaRequest) ToModel() m.ProvaModel {
	mm := m.ProvaModel{
		ProvaMateriaID:   r.MateriaID,
		ProvaTitulo:      r.Titulo,
		ProvaObservacoes: r.Observacoes,
		ProvaLinkAnexos:  r.LinkAnexos,
	}
	if r.Data != nil {
		if d, err := time.Parse(dateLayout, *r.Data); err == nil {
			mm.ProvaData = &d
		}
	}
	return mm
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateProvaRequest struct {
	MateriaID *uuid.UUID `json:"prova_materia_id"`

	Titulo *string `json:"prova_titulo" validate:"omitempty,min=1,max=200"`
	Data   *string `json:"prova_data" validate:"omitempty,datetime=2006-01-02"`

	Observacoes *string `json:"prova_observacoes"`
	LinkAnexos  *string `json:"prova_link_anexos" validate:"omitempty,url,max=200"`
}

func (r *UpdateProvaRequest) Normalize() {
	if r.Titulo != nil {
		t := strings.TrimSpace(*r.Titulo)
		r.Titulo = &t
	}
	trimPtr(&r.Data)
	trimPtr(&r.Observacoes)
	trimPtr(&r.LinkAnexos)
}

func (r UpdateProvaRequest) Apply(mm *m.ProvaModel) {
	if r.MateriaID != nil {
		mm.ProvaMateriaID = *r.MateriaID
	}
	if r.Titulo != nil {
		mm.ProvaTitulo = *r.Titulo
	}
	if r.Data != nil {
		if d, err := time.Parse(dateLayout, *r.Data); err == nil {
			mm.ProvaData = &d
		}
	}
	if r.Observacoes != nil {
		mm.ProvaObservacoes = r.Observacoes
	}
	if r.LinkAnexos != nil {
		mm.ProvaLinkAnexos = r.LinkAnexos
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type ProvaResponse struct {
	ProvaID   uuid.UUID `json:"prova_id"`
	MateriaID uuid.UUID `json:"prova_materia_id"`

	Titulo      string  `json:"prova_titulo"`
	Data        *string `json:"prova_data,omitempty"`
	Observacoes *string `json:"prova_observacoes,omitempty"`
	LinkAnexos  *string `json:"prova_link_anexos,omitempty"`

	CreatedAt time.Time `json:"prova_created_at"`
	UpdatedAt time.Time `json:"prova_updated_at"`
}

func FromProvaModel(mm m.ProvaModel) ProvaResponse {
	resp := ProvaResponse{
		ProvaID:     mm.ProvaID,
		MateriaID:   mm.ProvaMateriaID,
		Titulo:      mm.ProvaTitulo,
		Observacoes: mm.ProvaObservacoes,
		LinkAnexos:  mm.ProvaLinkAnexos,
		CreatedAt:   mm.ProvaCreatedAt,
		UpdatedAt:   mm.ProvaUpdatedAt,
	}
	if mm.ProvaData != nil {
		d := mm.ProvaData.Format(dateLayout)
		resp.Data = &d
	}
	return resp
}

func FromProvaModels(items []m.ProvaModel) []ProvaResponse {
	out := make([]ProvaResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromProvaModel(it))
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
