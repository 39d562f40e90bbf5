package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	horarioController "agendaestudos_backend/internals/features/agenda/horarios/controller"
)

// HorarioUserRoutes monta a grade semanal de aulas.
func HorarioUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &horarioController.HorarioController{DB: db}

	horarios := r.Group("/horarios")
	horarios.Get("/", ctl.ListHorarios)       // GET    /api/u/horarios?dia=SEG
	horarios.Post("/", ctl.CreateHorario)     // POST   /api/u/horarios
	horarios.Get("/:id", ctl.GetHorario)      // GET    /api/u/horarios/:id
	horarios.Put("/:id", ctl.UpdateHorario)   // PUT    /api/u/horarios/:id
	horarios.Delete("/:id", ctl.DeleteHorario) // DELETE /api/u/horarios/:id
}
