package controller

import (
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	materiaDTO "agendaestudos_backend/internals/features/agenda/materias/dto"
	materiaModel "agendaestudos_backend/internals/features/agenda/materias/model"
	helper "agendaestudos_backend/internals/helpers"
)

type MateriaController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /api/u/materias
// Lista anotada: contagens de tarefas/provas/materiais + percentual concluído.
func (h *MateriaController) ListMaterias(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var items []materiaDTO.MateriaListItem
	if err := h.DB.Raw(`
		SELECT m.materia_id, m.materia_nome, m.materia_sigla,
		       COUNT(DISTINCT t.tarefa_id)  AS total_tarefas,
		       COUNT(DISTINCT CASE WHEN t.tarefa_status = 'concluida' THEN t.tarefa_id END) AS tarefas_concluidas,
		       COUNT(DISTINCT p.prova_id)   AS total_provas,
		       COUNT(DISTINCT ma.material_id) AS total_materiais
		FROM materias m
		LEFT JOIN tarefas t         ON t.tarefa_materia_id = m.materia_id
		LEFT JOIN provas p          ON p.prova_materia_id = m.materia_id
		LEFT JOIN materiais_apoio ma ON ma.material_prova_id = p.prova_id
		WHERE m.materia_user_id = ?
		GROUP BY m.materia_id, m.materia_nome, m.materia_sigla
		ORDER BY m.materia_nome ASC
	`, userID).Scan(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar matérias")
	}

	for i := range items {
		items[i].PercentualConcluido = percentual(items[i].TarefasConcluidas, items[i].TotalTarefas)
	}

	return helper.JsonList(c, "ok", items, nil)
}

// GET /api/u/materias/:id
func (h *MateriaController) GetMateria(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	materia, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", materiaDTO.FromMateriaModel(materia))
}

// POST /api/u/materias
func (h *MateriaController) CreateMateria(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req materiaDTO.CreateMateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	materia := req.ToModel(userID)
	if err := h.DB.Create(&materia).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar matéria")
	}

	return helper.JsonCreated(c, "Matéria criada com sucesso!", materiaDTO.FromMateriaModel(materia))
}

// PUT /api/u/materias/:id
func (h *MateriaController) UpdateMateria(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	materia, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	var req materiaDTO.UpdateMateriaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	req.Apply(&materia)
	if err := h.DB.Save(&materia).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar matéria")
	}

	return helper.JsonUpdated(c, "Matéria atualizada com sucesso!", materiaDTO.FromMateriaModel(materia))
}

// PATCH /api/u/materias/:id/notas
// Tela de anotações: mexe só em materia_notas.
func (h *MateriaController) UpdateNotas(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	materia, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	var req materiaDTO.UpdateNotasRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	materia.MateriaNotas = req.Notas
	if req.Notas != nil {
		if v := strings.TrimSpace(*req.Notas); v == "" {
			materia.MateriaNotas = nil
		} else {
			materia.MateriaNotas = &v
		}
	}

	if err := h.DB.Model(&materia).
		Update("materia_notas", materia.MateriaNotas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar anotações")
	}

	return helper.JsonUpdated(c, "Anotações de "+materia.MateriaNome+" salvas com sucesso!", materiaDTO.FromMateriaModel(materia))
}

// DELETE /api/u/materias/:id
// Derruba em cascata tarefas, provas (e materiais) e horários.
func (h *MateriaController) DeleteMateria(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	materia, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&materia).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao deletar matéria")
	}

	return helper.JsonDeleted(c, "Matéria deletada com sucesso!", fiber.Map{"materia_id": materia.MateriaID})
}

// findOwned resolve :id já no escopo do usuário; alheia = 404.
func (h *MateriaController) findOwned(c *fiber.Ctx, userID uuid.UUID) (materiaModel.MateriaModel, error) {
	var materia materiaModel.MateriaModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return materia, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	err = h.DB.Where("materia_id = ? AND materia_user_id = ?", id, userID).
		First(&materia).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return materia, fiber.NewError(fiber.StatusNotFound, "Matéria não encontrada")
	}
	if err != nil {
		return materia, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}
	return materia, nil
}

// percentual arredonda concluídas/total*100; total zero = 0 (nunca divide por zero).
func percentual(concluidas, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(concluidas) / float64(total) * 100))
}

func fieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
