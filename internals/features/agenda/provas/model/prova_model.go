package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	materiaModel "agendaestudos_backend/internals/features/agenda/materias/model"
)

type ProvaModel struct {
	ProvaID        uuid.UUID `gorm:"type:uuid;primaryKey;column:prova_id" json:"prova_id"`
	ProvaMateriaID uuid.UUID `gorm:"type:uuid;not null;index:idx_provas_materia;column:prova_materia_id" json:"prova_materia_id"`

	ProvaTitulo      string     `gorm:"type:varchar(200);not null;column:prova_titulo" json:"prova_titulo"`
	ProvaData        *time.Time `gorm:"type:date;column:prova_data" json:"prova_data,omitempty"`
	ProvaObservacoes *string    `gorm:"type:text;column:prova_observacoes" json:"prova_observacoes,omitempty"`
	ProvaLinkAnexos  *string    `gorm:"type:varchar(200);column:prova_link_anexos" json:"prova_link_anexos,omitempty"`

	ProvaCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:prova_created_at" json:"prova_created_at"`
	ProvaUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:prova_updated_at" json:"prova_updated_at"`

	Materia materiaModel.MateriaModel `gorm:"foreignKey:ProvaMateriaID;references:MateriaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProvaModel) TableName() string { return "provas" }

func (m *ProvaModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProvaID == uuid.Nil {
		m.ProvaID = uuid.New()
	}
	return nil
}
