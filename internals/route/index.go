package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "agendaestudos_backend/internals/features/agenda/dashboard/route"
	horarioRoute "agendaestudos_backend/internals/features/agenda/horarios/route"
	materiaRoute "agendaestudos_backend/internals/features/agenda/materias/route"
	provaRoute "agendaestudos_backend/internals/features/agenda/provas/route"
	tarefaRoute "agendaestudos_backend/internals/features/agenda/tarefas/route"
	authRoute "agendaestudos_backend/internals/features/users/auth/route"
	authMiddleware "agendaestudos_backend/internals/middlewares/auth"
)

var startTime time.Time

// SetupRoutes registra tudo: público (/api/auth, /health) e privado (/api/u).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Registrando rotas de auth...")
	authRoute.AuthRoutes(app, db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})

	log.Println("[INFO] Registrando grupo privado /api/u...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))

	dashboardRoute.DashboardUserRoutes(private, db)
	materiaRoute.MateriaUserRoutes(private, db)
	tarefaRoute.TarefaUserRoutes(private, db)
	provaRoute.ProvaUserRoutes(private, db)
	horarioRoute.HorarioUserRoutes(private, db)
}
