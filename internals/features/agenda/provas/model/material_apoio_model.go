package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaterialTipo string

const (
	TipoLink  MaterialTipo = "link"
	TipoPDF   MaterialTipo = "pdf"
	TipoTexto MaterialTipo = "texto"
	TipoOutro MaterialTipo = "outro"
)

// MaterialApoioModel é um material de apoio atrelado a uma prova.
// Na revisão atual do form o tipo é sempre "link" e a URL é obrigatória;
// o enum completo fica por compatibilidade com dados antigos.
type MaterialApoioModel struct {
	MaterialID      uuid.UUID `gorm:"type:uuid;primaryKey;column:material_id" json:"material_id"`
	MaterialProvaID uuid.UUID `gorm:"type:uuid;not null;index:idx_materiais_prova;column:material_prova_id" json:"material_prova_id"`

	MaterialTitulo string       `gorm:"type:varchar(255);not null;column:material_titulo" json:"material_titulo"`
	MaterialTipo   MaterialTipo `gorm:"type:varchar(10);not null;default:'link';column:material_tipo" json:"material_tipo"`

	MaterialLinkURL *string `gorm:"type:varchar(500);column:material_link_url" json:"material_link_url,omitempty"`

	// upload opcional (OSS)
	MaterialArquivoURL       *string `gorm:"type:varchar(500);column:material_arquivo_url" json:"material_arquivo_url,omitempty"`
	MaterialArquivoObjectKey *string `gorm:"type:varchar(300);column:material_arquivo_object_key" json:"-"`

	MaterialCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:material_created_at" json:"material_created_at"`
	MaterialUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:material_updated_at" json:"material_updated_at"`

	Prova ProvaModel `gorm:"foreignKey:MaterialProvaID;references:ProvaID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MaterialApoioModel) TableName() string { return "materiais_apoio" }

func (m *MaterialApoioModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaterialID == uuid.Nil {
		m.MaterialID = uuid.New()
	}
	return nil
}
