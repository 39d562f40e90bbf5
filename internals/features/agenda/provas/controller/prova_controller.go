package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	provaDTO "agendaestudos_backend/internals/features/agenda/provas/dto"
	provaModel "agendaestudos_backend/internals/features/agenda/provas/model"
	provaService "agendaestudos_backend/internals/features/agenda/provas/service"
	helper "agendaestudos_backend/internals/helpers"
)

type ProvaController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /api/u/provas?materia_id=
func (h *ProvaController) ListProvas(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	provas, err := provaService.ListProvas(h.DB, userID, c.Query("materia_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar provas")
	}
	return helper.JsonList(c, "ok", provaDTO.FromProvaModels(provas), nil)
}

// GET /api/u/provas/:id
func (h *ProvaController) GetProva(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	prova, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", provaDTO.FromProvaModel(prova))
}

// POST /api/u/provas
func (h *ProvaController) CreateProva(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req provaDTO.CreateProvaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	ok, err := materiaPertenceAoUsuario(h.DB, userID, req.MateriaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Matéria não encontrada")
	}

	prova := req.ToModel()
	if err := h.DB.Create(&prova).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar prova")
	}

	return helper.JsonCreated(c, "Prova criada com sucesso!", provaDTO.FromProvaModel(prova))
}

// PUT /api/u/provas/:id
func (h *ProvaController) UpdateProva(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	prova, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	var req provaDTO.UpdateProvaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	if req.MateriaID != nil {
		ok, err := materiaPertenceAoUsuario(h.DB, userID, *req.MateriaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusNotFound, "Matéria não encontrada")
		}
	}

	req.Apply(&prova)
	if err := h.DB.Save(&prova).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar prova")
	}

	return helper.JsonUpdated(c, "Prova atualizada com sucesso!", provaDTO.FromProvaModel(prova))
}

// DELETE /api/u/provas/:id
// Materiais de apoio caem junto via FK em cascata.
func (h *ProvaController) DeleteProva(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	prova, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&prova).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao deletar prova")
	}

	return helper.JsonDeleted(c, "Prova deletada com sucesso!", fiber.Map{"prova_id": prova.ProvaID})
}

func (h *ProvaController) findOwned(c *fiber.Ctx, userID uuid.UUID) (provaModel.ProvaModel, error) {
	var prova provaModel.ProvaModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return prova, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	prova, err = provaService.FindProvaOwned(h.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return prova, fiber.NewError(fiber.StatusNotFound, "Prova não encontrada")
	}
	if err != nil {
		return prova, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}
	return prova, nil
}

func materiaPertenceAoUsuario(db *gorm.DB, userID, materiaID uuid.UUID) (bool, error) {
	var n int64
	err := db.Table("materias").
		Where("materia_id = ? AND materia_user_id = ?", materiaID, userID).
		Count(&n).Error
	return n > 0, err
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
