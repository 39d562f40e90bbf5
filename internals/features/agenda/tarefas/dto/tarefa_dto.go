package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "agendaestudos_backend/internals/features/agenda/tarefas/model"
	"agendaestudos_backend/internals/helpers/tempo"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateTarefaRequest struct {
	MateriaID uuid.UUID `json:"tarefa_materia_id" validate:"required"`

	Titulo    string  `json:"tarefa_titulo" validate:"required,min=1,max=200"`
	Descricao *string `json:"tarefa_descricao"`

	DataInicio time.Time `json:"tarefa_data_inicio" validate:"required"`
	DataFim    time.Time `json:"tarefa_data_fim" validate:"required"`

	Status     *string `json:"tarefa_status" validate:"omitempty,oneof=a_fazer em_andamento concluida"`
	Prioridade *string `json:"tarefa_prioridade" validate:"omitempty,oneof=baixa media alta"`

	LinkAnexo *string  `json:"tarefa_link_anexo" validate:"omitempty,url,max=500"`
	Tags      []string `json:"tarefa_tags" validate:"omitempty,dive,min=1,max=30"`
}

func (r *CreateTarefaRequest) Normalize() {
	r.Titulo = strings.TrimSpace(r.Titulo)
	trimPtr(&r.Descricao)
	trimPtr(&r.LinkAnexo)

	tags := r.Tags[:0]
	for _, t := range r.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	r.Tags = tags
}

func (r CreateTarefaRequest) ToModel() m.TarefaModel {
	mm := m.TarefaModel{
		TarefaMateriaID:  r.MateriaID,
		TarefaTitulo:     r.Titulo,
		TarefaDescricao:  r.Descricao,
		TarefaDataInicio: r.DataInicio,
		TarefaDataFim:    r.DataFim,
		TarefaStatus:     m.StatusAFazer,
		TarefaPrioridade: m.PrioridadeMedia,
		TarefaLinkAnexo:  r.LinkAnexo,
		TarefaTags:       pq.StringArray(r.Tags),
	}
	if r.Status != nil {
		mm.TarefaStatus = m.TarefaStatus(*r.Status)
	}
	if r.Prioridade != nil {
		mm.TarefaPrioridade = m.TarefaPrioridade(*r.Prioridade)
	}
	return mm
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateTarefaRequest struct {
	MateriaID *uuid.UUID `json:"tarefa_materia_id"`

	Titulo    *string `json:"tarefa_titulo" validate:"omitempty,min=1,max=200"`
	Descricao *string `json:"tarefa_descricao"`

	DataInicio *time.Time `json:"tarefa_data_inicio"`
	DataFim    *time.Time `json:"tarefa_data_fim"`

	Status     *string `json:"tarefa_status" validate:"omitempty,oneof=a_fazer em_andamento concluida"`
	Prioridade *string `json:"tarefa_prioridade" validate:"omitempty,oneof=baixa media alta"`

	LinkAnexo *string  `json:"tarefa_link_anexo" validate:"omitempty,url,max=500"`
	Tags      []string `json:"tarefa_tags" validate:"omitempty,dive,min=1,max=30"`
}

func (r *UpdateTarefaRequest) Normalize() {
	if r.Titulo != nil {
		t := strings.TrimSpace(*r.Titulo)
		r.Titulo = &t
	}
	trimPtr(&r.Descricao)
	trimPtr(&r.LinkAnexo)
}

func (r UpdateTarefaRequest) Apply(mm *m.TarefaModel) {
	if r.MateriaID != nil {
		mm.TarefaMateriaID = *r.MateriaID
	}
	if r.Titulo != nil {
		mm.TarefaTitulo = *r.Titulo
	}
	if r.Descricao != nil {
		mm.TarefaDescricao = r.Descricao
	}
	if r.DataInicio != nil {
		mm.TarefaDataInicio = *r.DataInicio
	}
	if r.DataFim != nil {
		mm.TarefaDataFim = *r.DataFim
	}
	if r.Status != nil {
		mm.TarefaStatus = m.TarefaStatus(*r.Status)
	}
	if r.Prioridade != nil {
		mm.TarefaPrioridade = m.TarefaPrioridade(*r.Prioridade)
	}
	if r.LinkAnexo != nil {
		mm.TarefaLinkAnexo = r.LinkAnexo
	}
	if r.Tags != nil {
		mm.TarefaTags = pq.StringArray(r.Tags)
	}
}

/* =========================================================
   RESPONSE
   ========================================================= */

type TarefaResponse struct {
	TarefaID  uuid.UUID `json:"tarefa_id"`
	MateriaID uuid.UUID `json:"tarefa_materia_id"`

	Titulo    string  `json:"tarefa_titulo"`
	Descricao *string `json:"tarefa_descricao,omitempty"`

	DataInicio time.Time `json:"tarefa_data_inicio"`
	DataFim    time.Time `json:"tarefa_data_fim"`

	Status     string `json:"tarefa_status"`
	Prioridade string `json:"tarefa_prioridade"`

	LinkAnexo *string  `json:"tarefa_link_anexo,omitempty"`
	Tags      []string `json:"tarefa_tags,omitempty"`

	// countdown amigável calculado na leitura ("⏳ Faltam 1 dia, 2 horas")
	TempoRestante string `json:"tarefa_tempo_restante"`

	CreatedAt time.Time `json:"tarefa_created_at"`
	UpdatedAt time.Time `json:"tarefa_updated_at"`
}

func FromTarefaModel(mm m.TarefaModel, now time.Time) TarefaResponse {
	return TarefaResponse{
		TarefaID:      mm.TarefaID,
		MateriaID:     mm.TarefaMateriaID,
		Titulo:        mm.TarefaTitulo,
		Descricao:     mm.TarefaDescricao,
		DataInicio:    mm.TarefaDataInicio,
		DataFim:       mm.TarefaDataFim,
		Status:        string(mm.TarefaStatus),
		Prioridade:    string(mm.TarefaPrioridade),
		LinkAnexo:     mm.TarefaLinkAnexo,
		Tags:          mm.TarefaTags,
		TempoRestante: tempo.FormatTempoRestante(mm.TarefaDataFim, now),
		CreatedAt:     mm.TarefaCreatedAt,
		UpdatedAt:     mm.TarefaUpdatedAt,
	}
}

func FromTarefaModels(items []m.TarefaModel, now time.Time) []TarefaResponse {
	out := make([]TarefaResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromTarefaModel(it, now))
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
