package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "agendaestudos_backend/internals/features/agenda/materias/model"
)

/* =========================================================
   CREATE
   ========================================================= */

type CreateMateriaRequest struct {
	Nome  string  `json:"materia_nome" validate:"required,min=1,max=100"`
	Sigla *string `json:"materia_sigla" validate:"omitempty,max=10"`

	Notas           *string `json:"materia_notas"`
	LinkPlanoEnsino *string `json:"materia_link_plano_ensino" validate:"omitempty,url,max=500"`
}

func (r *CreateMateriaRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	trimPtr(&r.Sigla)
	trimPtr(&r.Notas)
	trimPtr(&r.LinkPlanoEnsino)
}

func (r CreateMateriaRequest) ToModel(userID uuid.UUID) m.MateriaModel {
	return m.MateriaModel{
		MateriaUserID:          userID,
		MateriaNome:            r.Nome,
		MateriaSigla:           r.Sigla,
		MateriaNotas:           r.Notas,
		MateriaLinkPlanoEnsino: r.LinkPlanoEnsino,
	}
}

/* =========================================================
   UPDATE
   ========================================================= */

type UpdateMateriaRequest struct {
	Nome  *string `json:"materia_nome" validate:"omitempty,min=1,max=100"`
	Sigla *string `json:"materia_sigla" validate:"omitempty,max=10"`

	Notas           *string `json:"materia_notas"`
	LinkPlanoEnsino *string `json:"materia_link_plano_ensino" validate:"omitempty,url,max=500"`
}

func (r *UpdateMateriaRequest) Normalize() {
	trimPtr(&r.Nome)
	trimPtr(&r.Sigla)
	trimPtr(&r.Notas)
	trimPtr(&r.LinkPlanoEnsino)
}

// Apply copia só os campos presentes para o modelo.
func (r UpdateMateriaRequest) Apply(mm *m.MateriaModel) {
	if r.Nome != nil {
		mm.MateriaNome = *r.Nome
	}
	if r.Sigla != nil {
		mm.MateriaSigla = r.Sigla
	}
	if r.Notas != nil {
		mm.MateriaNotas = r.Notas
	}
	if r.LinkPlanoEnsino != nil {
		mm.MateriaLinkPlanoEnsino = r.LinkPlanoEnsino
	}
}

// UpdateNotasRequest é o PATCH só das anotações (tela de anotações da matéria).
type UpdateNotasRequest struct {
	Notas *string `json:"materia_notas"`
}

/* =========================================================
   RESPONSES
   ========================================================= */

type MateriaResponse struct {
	MateriaID       uuid.UUID `json:"materia_id"`
	Nome            string    `json:"materia_nome"`
	Sigla           *string   `json:"materia_sigla,omitempty"`
	Notas           *string   `json:"materia_notas,omitempty"`
	LinkPlanoEnsino *string   `json:"materia_link_plano_ensino,omitempty"`
	CreatedAt       time.Time `json:"materia_created_at"`
	UpdatedAt       time.Time `json:"materia_updated_at"`
}

func FromMateriaModel(mm m.MateriaModel) MateriaResponse {
	return MateriaResponse{
		MateriaID:       mm.MateriaID,
		Nome:            mm.MateriaNome,
		Sigla:           mm.MateriaSigla,
		Notas:           mm.MateriaNotas,
		LinkPlanoEnsino: mm.MateriaLinkPlanoEnsino,
		CreatedAt:       mm.MateriaCreatedAt,
		UpdatedAt:       mm.MateriaUpdatedAt,
	}
}

// MateriaListItem é a linha anotada da listagem (contagens + percentual).
type MateriaListItem struct {
	MateriaID uuid.UUID `json:"materia_id" gorm:"column:materia_id"`
	Nome      string    `json:"materia_nome" gorm:"column:materia_nome"`
	Sigla     *string   `json:"materia_sigla,omitempty" gorm:"column:materia_sigla"`

	TotalTarefas        int64 `json:"total_tarefas" gorm:"column:total_tarefas"`
	TarefasConcluidas   int64 `json:"tarefas_concluidas" gorm:"column:tarefas_concluidas"`
	PercentualConcluido int   `json:"percentual_concluido" gorm:"-"`
	TotalProvas         int64 `json:"total_provas" gorm:"column:total_provas"`
	TotalMateriais      int64 `json:"total_materiais" gorm:"column:total_materiais"`
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
