package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	provaController "agendaestudos_backend/internals/features/agenda/provas/controller"
	ossHelper "agendaestudos_backend/internals/helpers/oss"
)

// ProvaUserRoutes monta provas + materiais de apoio aninhados.
// O upload de arquivo só fica ativo quando o OSS está configurado no ambiente.
func ProvaUserRoutes(r fiber.Router, db *gorm.DB) {
	provaCtl := &provaController.ProvaController{DB: db}

	ossClient, err := ossHelper.NewClientFromEnv()
	if err != nil {
		log.Printf("[PROVAS] OSS desativado: %v", err)
		ossClient = nil
	}
	materialCtl := &provaController.MaterialApoioController{DB: db, OSS: ossClient}

	provas := r.Group("/provas")
	provas.Get("/", provaCtl.ListProvas)       // GET    /api/u/provas?materia_id=
	provas.Post("/", provaCtl.CreateProva)     // POST   /api/u/provas
	provas.Get("/:id", provaCtl.GetProva)      // GET    /api/u/provas/:id
	provas.Put("/:id", provaCtl.UpdateProva)   // PUT    /api/u/provas/:id
	provas.Delete("/:id", provaCtl.DeleteProva) // DELETE /api/u/provas/:id (materiais caem junto)

	provas.Get("/:prova_id/materiais", materialCtl.ListMateriais)           // GET  materiais da prova
	provas.Post("/:prova_id/materiais", materialCtl.CreateMaterial)         // POST link de apoio
	provas.Post("/:prova_id/materiais/upload", materialCtl.UploadMaterial)  // POST multipart (arquivo)

	materiais := r.Group("/materiais")
	materiais.Delete("/:id", materialCtl.DeleteMaterial) // DELETE /api/u/materiais/:id
}
