package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	provaModel "agendaestudos_backend/internals/features/agenda/provas/model"
)

// ScopedProvas restringe a consulta às provas de matérias do usuário.
func ScopedProvas(db *gorm.DB, userID uuid.UUID) *gorm.DB {
	return db.Model(&provaModel.ProvaModel{}).
		Joins("JOIN materias ON materias.materia_id = provas.prova_materia_id").
		Where("materias.materia_user_id = ?", userID)
}

// ListProvas lista as provas do usuário ordenadas por data (NULLs por último).
// materiaID vazio = todas; uuid malformado = lista vazia.
func ListProvas(db *gorm.DB, userID uuid.UUID, materiaID string) ([]provaModel.ProvaModel, error) {
	q := ScopedProvas(db, userID)

	if materiaID != "" {
		id, err := uuid.Parse(materiaID)
		if err != nil {
			return []provaModel.ProvaModel{}, nil
		}
		q = q.Where("provas.prova_materia_id = ?", id)
	}

	var provas []provaModel.ProvaModel
	if err := q.
		Order("provas.prova_data IS NULL").
		Order("provas.prova_data ASC").
		Order("provas.prova_created_at ASC").
		Find(&provas).Error; err != nil {
		return nil, err
	}
	return provas, nil
}

func FindProvaOwned(db *gorm.DB, userID, provaID uuid.UUID) (provaModel.ProvaModel, error) {
	var prova provaModel.ProvaModel
	err := ScopedProvas(db, userID).
		Where("provas.prova_id = ?", provaID).
		First(&prova).Error
	return prova, err
}

// ListMateriais lista os materiais de uma prova já verificada como do usuário.
func ListMateriais(db *gorm.DB, provaID uuid.UUID) ([]provaModel.MaterialApoioModel, error) {
	var materiais []provaModel.MaterialApoioModel
	err := db.
		Where("material_prova_id = ?", provaID).
		Order("material_created_at ASC").
		Find(&materiais).Error
	return materiais, err
}

// FindMaterialOwned resolve um material pela cadeia material → prova → matéria → usuário.
func FindMaterialOwned(db *gorm.DB, userID, materialID uuid.UUID) (provaModel.MaterialApoioModel, error) {
	var material provaModel.MaterialApoioModel
	err := db.Model(&provaModel.MaterialApoioModel{}).
		Joins("JOIN provas ON provas.prova_id = materiais_apoio.material_prova_id").
		Joins("JOIN materias ON materias.materia_id = provas.prova_materia_id").
		Where("materias.materia_user_id = ?", userID).
		Where("materiais_apoio.material_id = ?", materialID).
		First(&material).Error
	return material, err
}
