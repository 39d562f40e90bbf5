package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tarefaController "agendaestudos_backend/internals/features/agenda/tarefas/controller"
)

// TarefaUserRoutes monta o CRUD de tarefas + ação de concluir.
func TarefaUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &tarefaController.TarefaController{DB: db}

	tarefas := r.Group("/tarefas")
	tarefas.Get("/", ctl.ListTarefas)                 // GET    /api/u/tarefas?materia_id=&status=&prioridade=
	tarefas.Post("/", ctl.CreateTarefa)               // POST   /api/u/tarefas
	tarefas.Get("/:id", ctl.GetTarefa)                // GET    /api/u/tarefas/:id
	tarefas.Put("/:id", ctl.UpdateTarefa)             // PUT    /api/u/tarefas/:id
	tarefas.Post("/:id/concluir", ctl.ConcluirTarefa) // POST   /api/u/tarefas/:id/concluir (idempotente)
	tarefas.Delete("/:id", ctl.DeleteTarefa)          // DELETE /api/u/tarefas/:id
}
