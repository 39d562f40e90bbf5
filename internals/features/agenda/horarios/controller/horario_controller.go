package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	horarioDTO "agendaestudos_backend/internals/features/agenda/horarios/dto"
	horarioModel "agendaestudos_backend/internals/features/agenda/horarios/model"
	horarioService "agendaestudos_backend/internals/features/agenda/horarios/service"
	helper "agendaestudos_backend/internals/helpers"
)

type HorarioController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /api/u/horarios?dia=
func (h *HorarioController) ListHorarios(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	dia := strings.ToUpper(strings.TrimSpace(c.Query("dia")))
	horarios, err := horarioService.ListHorarios(h.DB, userID, dia)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar horários")
	}
	return helper.JsonList(c, "ok", horarioDTO.FromHorarioModels(horarios), nil)
}

// GET /api/u/horarios/:id
func (h *HorarioController) GetHorario(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	horario, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", horarioDTO.FromHorarioModel(horario))
}

// POST /api/u/horarios
func (h *HorarioController) CreateHorario(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req horarioDTO.CreateHorarioRequest
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

	horario := req.ToModel()
	if err := h.DB.Create(&horario).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar horário")
	}
	// recarrega com a matéria para a resposta
	horario, _ = horarioService.FindHorarioOwned(h.DB, userID, horario.HorarioID)

	return helper.JsonCreated(c, "Horário adicionado à grade!", horarioDTO.FromHorarioModel(horario))
}

// PUT /api/u/horarios/:id
func (h *HorarioController) UpdateHorario(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	horario, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	var req horarioDTO.UpdateHorarioRequest
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

	req.Apply(&horario)
	if err := h.DB.Save(&horario).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar horário")
	}
	horario, _ = horarioService.FindHorarioOwned(h.DB, userID, horario.HorarioID)

	return helper.JsonUpdated(c, "Horário atualizado com sucesso!", horarioDTO.FromHorarioModel(horario))
}

// DELETE /api/u/horarios/:id
func (h *HorarioController) DeleteHorario(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	horario, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&horario).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao deletar horário")
	}

	return helper.JsonDeleted(c, "Horário removido da grade.", fiber.Map{"horario_id": horario.HorarioID})
}

func (h *HorarioController) findOwned(c *fiber.Ctx, userID uuid.UUID) (horarioModel.HorarioAulaModel, error) {
	var horario horarioModel.HorarioAulaModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return horario, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	horario, err = horarioService.FindHorarioOwned(h.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return horario, fiber.NewError(fiber.StatusNotFound, "Horário não encontrado")
	}
	if err != nil {
		return horario, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}
	return horario, nil
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
