package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	provaDTO "agendaestudos_backend/internals/features/agenda/provas/dto"
	provaModel "agendaestudos_backend/internals/features/agenda/provas/model"
	provaService "agendaestudos_backend/internals/features/agenda/provas/service"
	helper "agendaestudos_backend/internals/helpers"
	ossHelper "agendaestudos_backend/internals/helpers/oss"
)

type MaterialApoioController struct {
	DB  *gorm.DB
	OSS *ossHelper.Client // nil quando o OSS não está configurado
}

// GET /api/u/provas/:prova_id/materiais
func (h *MaterialApoioController) ListMateriais(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	prova, err := h.provaOwned(c, userID)
	if err != nil {
		return err
	}

	materiais, err := provaService.ListMateriais(h.DB, prova.ProvaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar materiais")
	}
	return helper.JsonList(c, "ok", provaDTO.FromMaterialApoioModels(materiais), nil)
}

// POST /api/u/provas/:prova_id/materiais
// Form atual só aceita link: URL obrigatória, tipo gravado como "link".
func (h *MaterialApoioController) CreateMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	prova, err := h.provaOwned(c, userID)
	if err != nil {
		return err
	}

	var req provaDTO.CreateMaterialApoioRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, fieldErrors(err))
	}

	material := req.ToModel(prova.ProvaID)
	if err := h.DB.Create(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao adicionar material")
	}

	return helper.JsonCreated(c, "Material adicionado à prova!", provaDTO.FromMaterialApoioModel(material))
}

// POST /api/u/provas/:prova_id/materiais/upload  (multipart: titulo + arquivo)
func (h *MaterialApoioController) UploadMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if h.OSS == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Upload de arquivos indisponível")
	}

	prova, err := h.provaOwned(c, userID)
	if err != nil {
		return err
	}

	titulo := strings.TrimSpace(c.FormValue("material_titulo"))
	if titulo == "" {
		return helper.JsonValidationError(c, map[string][]string{"material_titulo": {"required"}})
	}

	fh, err := c.FormFile("material_arquivo")
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"material_arquivo": {"required"}})
	}

	url, objectKey, err := h.OSS.UploadMaterialFile(fh, prova.ProvaID.String())
	if err != nil {
		return err
	}

	material := provaModel.MaterialApoioModel{
		MaterialProvaID:          prova.ProvaID,
		MaterialTitulo:           titulo,
		MaterialTipo:             provaModel.TipoPDF,
		MaterialArquivoURL:       &url,
		MaterialArquivoObjectKey: &objectKey,
	}
	if err := h.DB.Create(&material).Error; err != nil {
		// órfão no bucket se não limpar
		if delErr := h.OSS.DeleteObject(objectKey); delErr != nil {
			log.Printf("[MATERIAL] falha ao limpar objeto %s: %v", objectKey, delErr)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao salvar material")
	}

	return helper.JsonCreated(c, "Arquivo enviado com sucesso!", provaDTO.FromMaterialApoioModel(material))
}

// DELETE /api/u/materiais/:id
func (h *MaterialApoioController) DeleteMaterial(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	material, err := provaService.FindMaterialOwned(h.DB, userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Material não encontrado")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro interno")
	}

	if err := h.DB.Delete(&material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao deletar material")
	}

	if h.OSS != nil && material.MaterialArquivoObjectKey != nil {
		if delErr := h.OSS.DeleteObject(*material.MaterialArquivoObjectKey); delErr != nil {
			log.Printf("[MATERIAL] falha ao remover objeto %s: %v", *material.MaterialArquivoObjectKey, delErr)
		}
	}

	return helper.JsonDeleted(c, "Material removido.", fiber.Map{"material_id": material.MaterialID})
}

// provaOwned resolve :prova_id garantindo posse pelo usuário logado.
func (h *MaterialApoioController) provaOwned(c *fiber.Ctx, userID uuid.UUID) (provaModel.ProvaModel, error) {
	var prova provaModel.ProvaModel

	id, err := uuid.Parse(strings.TrimSpace(c.Params("prova_id")))
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
