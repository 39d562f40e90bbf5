package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	tarefaDTO "agendaestudos_backend/internals/features/agenda/tarefas/dto"
	tarefaModel "agendaestudos_backend/internals/features/agenda/tarefas/model"
	tarefaService "agendaestudos_backend/internals/features/agenda/tarefas/service"
	helper "agendaestudos_backend/internals/helpers"
)

type TarefaController struct {
	DB *gorm.DB
}

var validate = validator.New()

// GET /api/u/tarefas?materia_id=&status=&prioridade=
// Filtro ausente = sem filtro; valor desconhecido = lista vazia, nunca erro.
func (h *TarefaController) ListTarefas(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)
	tarefas, total, err := tarefaService.ListTarefasPage(h.DB, userID, tarefaService.Filtros{
		MateriaID:  c.Query("materia_id"),
		Status:     c.Query("status"),
		Prioridade: c.Query("prioridade"),
	}, paging.Offset, paging.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar tarefas")
	}

	return helper.JsonList(c, "ok", tarefaDTO.FromTarefaModels(tarefas, time.Now()),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/tarefas/:id
func (h *TarefaController) GetTarefa(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tarefa, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", tarefaDTO.FromTarefaModel(tarefa, time.Now()))
}

// POST /api/u/tarefas
func (h *TarefaController) CreateTarefa(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req tarefaDTO.CreateTarefaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	// a matéria alvo precisa ser do usuário logado
	ok, err := tarefaService.MateriaPertenceAoUsuario(h.DB, userID, req.MateriaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "Matéria não encontrada")
	}

	tarefa := req.ToModel()
	if err := h.DB.Create(&tarefa).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar tarefa")
	}

	return helper.JsonCreated(c, "Tarefa criada com sucesso!", tarefaDTO.FromTarefaModel(tarefa, time.Now()))
}

// PUT /api/u/tarefas/:id
func (h *TarefaController) UpdateTarefa(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tarefa, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	var req tarefaDTO.UpdateTarefaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	if req.MateriaID != nil {
		ok, err := tarefaService.MateriaPertenceAoUsuario(h.DB, userID, *req.MateriaID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusNotFound, "Matéria não encontrada")
		}
	}

	req.Apply(&tarefa)
	if err := h.DB.Save(&tarefa).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar tarefa")
	}

	return helper.JsonUpdated(c, "Tarefa atualizada com sucesso!", tarefaDTO.FromTarefaModel(tarefa, time.Now()))
}

// POST /api/u/tarefas/:id/concluir
// Idempotente: concluir de novo só muda a mensagem.
func (h *TarefaController) ConcluirTarefa(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tarefa, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	if tarefa.TarefaStatus == tarefaModel.StatusConcluida {
		return helper.JsonOK(c, "Tarefa \""+tarefa.TarefaTitulo+"\" já estava concluída.",
			tarefaDTO.FromTarefaModel(tarefa, time.Now()))
	}

	tarefa.TarefaStatus = tarefaModel.StatusConcluida
	if err := h.DB.Model(&tarefa).
		Update("tarefa_status", tarefaModel.StatusConcluida).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao concluir tarefa")
	}

	return helper.JsonUpdated(c, "Tarefa \""+tarefa.TarefaTitulo+"\" marcada como CONCLUÍDA! Bom trabalho!",
		tarefaDTO.FromTarefaModel(tarefa, time.Now()))
}

// DELETE /api/u/tarefas/:id
func (h *TarefaController) DeleteTarefa(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tarefa, err := h.findOwned(c, userID)
	if err != nil {
		return err
	}

	if err := h.DB.Delete(&tarefa).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao deletar tarefa")
	}

	return helper.JsonDeleted(c, "Tarefa deletada com sucesso!", fiber.Map{"tarefa_id": tarefa.TarefaID})
}

func (h *TarefaController) findOwned(c *fiber.Ctx, userID uuid.UUID) (tarefaModel.TarefaModel, error) {
	var tarefa tarefaModel.TarefaModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return tarefa, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}

	tarefa, err = tarefaService.FindTarefaOwned(h.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tarefa, fiber.NewError(fiber.StatusNotFound, "Tarefa não encontrada")
	}
	if err != nil {
		return tarefa, fiber.NewError(fiber.StatusInternalServerError, "Erro interno")
	}
	return tarefa, nil
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
