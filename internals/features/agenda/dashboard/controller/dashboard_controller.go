package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardDTO "agendaestudos_backend/internals/features/agenda/dashboard/dto"
	dashboardService "agendaestudos_backend/internals/features/agenda/dashboard/service"
	horarioDTO "agendaestudos_backend/internals/features/agenda/horarios/dto"
	horarioModel "agendaestudos_backend/internals/features/agenda/horarios/model"
	provaDTO "agendaestudos_backend/internals/features/agenda/provas/dto"
	tarefaDTO "agendaestudos_backend/internals/features/agenda/tarefas/dto"
	helper "agendaestudos_backend/internals/helpers"
	"agendaestudos_backend/internals/helpers/usertime"
)

type DashboardController struct {
	DB *gorm.DB
}

// GET /api/u/dashboard
// Snapshot de leitura: estatísticas, destaques, distribuição e grade de hoje.
func (h *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now()
	loc := usertime.GetUserLocation(c)

	stTarefas, err := dashboardService.EstatisticasDeTarefas(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}
	stProvas, err := dashboardService.EstatisticasDeProvas(h.DB, userID, now, loc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}

	urgentes, err := dashboardService.TarefasUrgentes(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}
	proximas, err := dashboardService.TarefasProximas(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}
	proximasProvas, err := dashboardService.ProximasProvas(h.DB, userID, now, loc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}

	distribuicao, err := dashboardService.Distribuicao(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}

	aulasHoje, dia, err := dashboardService.AulasDeHoje(h.DB, userID, now, loc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar o dashboard")
	}
	proximaAula := dashboardService.ProximaAula(aulasHoje, now, loc)

	resp := dashboardDTO.DashboardResponse{
		TotalTarefas:         stTarefas.Total,
		TarefasConcluidas:    stTarefas.Concluidas,
		PorcentagemConcluida: stTarefas.Percentual,

		TotalProvas:   stProvas.Total,
		ProvasFuturas: stProvas.Futuras,

		TarefasUrgentes: tarefaDTO.FromTarefaModels(urgentes, now),
		TarefasProximas: tarefaDTO.FromTarefaModels(proximas, now),
		ProximasProvas:  provaDTO.FromProvaModels(proximasProvas),

		Materias:    distribuicao,
		AllMaterias: int64(len(distribuicao)),

		AulasHoje:        horarioDTO.FromHorarioModels(aulasHoje),
		DiaSemanaDisplay: horarioModel.DiaSemanaDisplay[dia],
		Hoje:             now.In(loc).Format("2006-01-02"),
	}
	if proximaAula != nil {
		pa := horarioDTO.FromHorarioModel(*proximaAula)
		resp.ProximaAula = &pa
	}

	return helper.JsonOK(c, "ok", resp)
}

// GET /api/u/agenda
// Eventos combinados (tarefas + provas) para o calendário.
func (h *DashboardController) GetAgenda(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tarefas, provas, err := dashboardService.AgendaEventos(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao montar a agenda")
	}

	return helper.JsonOK(c, "ok", dashboardDTO.AgendaResponse{
		Tarefas: tarefaDTO.FromTarefaModels(tarefas, time.Now()),
		Provas:  provaDTO.FromProvaModels(provas),
	})
}
