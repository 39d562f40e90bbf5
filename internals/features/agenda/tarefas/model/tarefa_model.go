package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	materiaModel "agendaestudos_backend/internals/features/agenda/materias/model"
)

type TarefaStatus string

const (
	StatusAFazer     TarefaStatus = "a_fazer"
	StatusEmAndamento TarefaStatus = "em_andamento"
	StatusConcluida  TarefaStatus = "concluida"
)

type TarefaPrioridade string

const (
	PrioridadeBaixa TarefaPrioridade = "baixa"
	PrioridadeMedia TarefaPrioridade = "media"
	PrioridadeAlta  TarefaPrioridade = "alta"
)

// StatusPendentes são os status considerados "pendentes" nas agregações.
var StatusPendentes = []TarefaStatus{StatusAFazer, StatusEmAndamento}

type TarefaModel struct {
	TarefaID        uuid.UUID `gorm:"type:uuid;primaryKey;column:tarefa_id" json:"tarefa_id"`
	TarefaMateriaID uuid.UUID `gorm:"type:uuid;not null;index:idx_tarefas_materia;column:tarefa_materia_id" json:"tarefa_materia_id"`

	TarefaTitulo    string  `gorm:"type:varchar(200);not null;column:tarefa_titulo" json:"tarefa_titulo"`
	TarefaDescricao *string `gorm:"type:text;column:tarefa_descricao" json:"tarefa_descricao,omitempty"`

	TarefaDataInicio time.Time `gorm:"type:timestamptz;not null;column:tarefa_data_inicio" json:"tarefa_data_inicio"`
	TarefaDataFim    time.Time `gorm:"type:timestamptz;not null;column:tarefa_data_fim" json:"tarefa_data_fim"`

	TarefaStatus     TarefaStatus     `gorm:"type:varchar(20);not null;default:'a_fazer';column:tarefa_status" json:"tarefa_status"`
	TarefaPrioridade TarefaPrioridade `gorm:"type:varchar(10);not null;default:'media';column:tarefa_prioridade" json:"tarefa_prioridade"`

	TarefaLinkAnexo *string        `gorm:"type:varchar(500);column:tarefa_link_anexo" json:"tarefa_link_anexo,omitempty"`
	TarefaTags      pq.StringArray `gorm:"type:text[];column:tarefa_tags" json:"tarefa_tags,omitempty"`

	TarefaCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:tarefa_created_at" json:"tarefa_created_at"`
	TarefaUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:tarefa_updated_at" json:"tarefa_updated_at"`

	Materia materiaModel.MateriaModel `gorm:"foreignKey:TarefaMateriaID;references:MateriaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TarefaModel) TableName() string { return "tarefas" }

func (m *TarefaModel) BeforeCreate(tx *gorm.DB) error {
	if m.TarefaID == uuid.Nil {
		m.TarefaID = uuid.New()
	}
	return nil
}

// ValidStatus reporta se s é um status conhecido.
func ValidStatus(s string) bool {
	switch TarefaStatus(s) {
	case StatusAFazer, StatusEmAndamento, StatusConcluida:
		return true
	}
	return false
}

// ValidPrioridade reporta se p é uma prioridade conhecida.
func ValidPrioridade(p string) bool {
	switch TarefaPrioridade(p) {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta:
		return true
	}
	return false
}
