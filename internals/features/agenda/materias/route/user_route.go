package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materiaController "agendaestudos_backend/internals/features/agenda/materias/controller"
)

// MateriaUserRoutes monta o CRUD de matérias do usuário logado.
// Mount: MateriaUserRoutes(app.Group("/api/u"), db)
func MateriaUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &materiaController.MateriaController{DB: db}

	materias := r.Group("/materias")
	materias.Get("/", ctl.ListMaterias)            // GET    /api/u/materias (lista anotada com contadores)
	materias.Post("/", ctl.CreateMateria)          // POST   /api/u/materias
	materias.Get("/:id", ctl.GetMateria)           // GET    /api/u/materias/:id
	materias.Put("/:id", ctl.UpdateMateria)        // PUT    /api/u/materias/:id
	materias.Patch("/:id/notas", ctl.UpdateNotas)  // PATCH  /api/u/materias/:id/notas
	materias.Delete("/:id", ctl.DeleteMateria)     // DELETE /api/u/materias/:id (tarefas/provas/horários caem junto)
}
