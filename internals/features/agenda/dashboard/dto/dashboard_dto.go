package dto

import (
	horarioDTO "agendaestudos_backend/internals/features/agenda/horarios/dto"
	provaDTO "agendaestudos_backend/internals/features/agenda/provas/dto"
	tarefaDTO "agendaestudos_backend/internals/features/agenda/tarefas/dto"

	dashboardService "agendaestudos_backend/internals/features/agenda/dashboard/service"
)

// DashboardResponse é o snapshot único consumido pela tela inicial.
// As chaves espelham o contexto que o front já conhece.
type DashboardResponse struct {
	TotalTarefas         int64 `json:"total_tarefas"`
	TarefasConcluidas    int64 `json:"tarefas_concluidas"`
	PorcentagemConcluida int   `json:"porcentagem_concluida"`

	TotalProvas   int64 `json:"total_provas"`
	ProvasFuturas int64 `json:"provas_futuras"`

	TarefasUrgentes []tarefaDTO.TarefaResponse `json:"tarefas_urgentes"`
	TarefasProximas []tarefaDTO.TarefaResponse `json:"tarefas_proximas"`
	ProximasProvas  []provaDTO.ProvaResponse   `json:"proximas_provas"`

	Materias    []dashboardService.DistribuicaoMateria `json:"materias"`
	AllMaterias int64                                  `json:"all_materias"`

	ProximaAula      *horarioDTO.HorarioResponse  `json:"proxima_aula,omitempty"`
	AulasHoje        []horarioDTO.HorarioResponse `json:"aulas_hoje"`
	DiaSemanaDisplay string                       `json:"dia_semana_display"`
	Hoje             string                       `json:"hoje"` // "2006-01-02" no fuso do usuário
}

// AgendaResponse alimenta o calendário: todos os eventos do usuário.
type AgendaResponse struct {
	Tarefas []tarefaDTO.TarefaResponse `json:"tarefas"`
	Provas  []provaDTO.ProvaResponse   `json:"provas"`
}
