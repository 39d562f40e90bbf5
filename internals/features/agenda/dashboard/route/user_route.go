package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "agendaestudos_backend/internals/features/agenda/dashboard/controller"
)

// DashboardUserRoutes monta as leituras agregadas.
func DashboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &dashboardController.DashboardController{DB: db}

	r.Get("/dashboard", ctl.GetDashboard) // GET /api/u/dashboard
	r.Get("/agenda", ctl.GetAgenda)       // GET /api/u/agenda
}
