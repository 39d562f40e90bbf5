package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "agendaestudos_backend/internals/features/users/auth/model"
)

// MateriaModel é a matéria (disciplina) de um usuário.
// Apagar a matéria derruba em cascata tarefas, provas e horários.
type MateriaModel struct {
	MateriaID     uuid.UUID `gorm:"type:uuid;primaryKey;column:materia_id" json:"materia_id"`
	MateriaUserID uuid.UUID `gorm:"type:uuid;not null;index:idx_materias_user;column:materia_user_id" json:"materia_user_id"`

	MateriaNome  string  `gorm:"type:varchar(100);not null;column:materia_nome" json:"materia_nome"`
	MateriaSigla *string `gorm:"type:varchar(10);column:materia_sigla" json:"materia_sigla,omitempty"`

	MateriaNotas           *string `gorm:"type:text;column:materia_notas" json:"materia_notas,omitempty"`
	MateriaLinkPlanoEnsino *string `gorm:"type:varchar(500);column:materia_link_plano_ensino" json:"materia_link_plano_ensino,omitempty"`

	MateriaCreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime;column:materia_created_at" json:"materia_created_at"`
	MateriaUpdatedAt time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;column:materia_updated_at" json:"materia_updated_at"`

	User userModel.UserModel `gorm:"foreignKey:MateriaUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (MateriaModel) TableName() string { return "materias" }

func (m *MateriaModel) BeforeCreate(tx *gorm.DB) error {
	if m.MateriaID == uuid.Nil {
		m.MateriaID = uuid.New()
	}
	return nil
}
