package service

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	horarioModel "agendaestudos_backend/internals/features/agenda/horarios/model"
	horarioService "agendaestudos_backend/internals/features/agenda/horarios/service"
	provaModel "agendaestudos_backend/internals/features/agenda/provas/model"
	provaService "agendaestudos_backend/internals/features/agenda/provas/service"
	tarefaModel "agendaestudos_backend/internals/features/agenda/tarefas/model"
	tarefaService "agendaestudos_backend/internals/features/agenda/tarefas/service"
)

// Todas as funções recebem o usuário e o "agora" explicitamente; nada de
// estado ambiente, o que deixa as agregações testáveis com relógio fixo.

type EstatisticasTarefas struct {
	Total      int64 `json:"total_tarefas"`
	Concluidas int64 `json:"tarefas_concluidas"`
	Percentual int   `json:"porcentagem_concluida"`
}

type EstatisticasProvas struct {
	Total   int64 `json:"total_provas"`
	Futuras int64 `json:"provas_futuras"`
}

// DistribuicaoMateria é a linha por matéria do quadro de distribuição.
type DistribuicaoMateria struct {
	MateriaID        uuid.UUID `gorm:"column:materia_id" json:"materia_id"`
	MateriaNome      string    `gorm:"column:materia_nome" json:"materia_nome"`
	MateriaSigla     *string   `gorm:"column:materia_sigla" json:"materia_sigla,omitempty"`
	TotalTarefas     int64     `gorm:"column:total_tarefas" json:"total_tarefas"`
	TarefasPendentes int64     `gorm:"column:tarefas_pendentes" json:"tarefas_pendentes"`
	TotalProvas      int64     `gorm:"column:total_provas" json:"total_provas"`
	TotalMateriais   int64     `gorm:"column:total_materiais" json:"total_materiais"`
}

const maxDestaques = 5

// EstatisticasDeTarefas calcula totais e a porcentagem concluída (0 sem tarefas).
func EstatisticasDeTarefas(db *gorm.DB, userID uuid.UUID) (EstatisticasTarefas, error) {
	var st EstatisticasTarefas

	if err := tarefaService.ScopedTarefas(db, userID).Count(&st.Total).Error; err != nil {
		return st, err
	}
	if err := tarefaService.ScopedTarefas(db, userID).
		Where("tarefas.tarefa_status = ?", tarefaModel.StatusConcluida).
		Count(&st.Concluidas).Error; err != nil {
		return st, err
	}
	if st.Total > 0 {
		st.Percentual = int(math.Round(float64(st.Concluidas) / float64(st.Total) * 100))
	}
	return st, nil
}

// EstatisticasDeProvas conta o total e quantas ainda estão por vir.
func EstatisticasDeProvas(db *gorm.DB, userID uuid.UUID, now time.Time, loc *time.Location) (EstatisticasProvas, error) {
	var st EstatisticasProvas

	if err := provaService.ScopedProvas(db, userID).Count(&st.Total).Error; err != nil {
		return st, err
	}
	if err := provaService.ScopedProvas(db, userID).
		Where("provas.prova_data >= ?", hojeDate(now, loc)).
		Count(&st.Futuras).Error; err != nil {
		return st, err
	}
	return st, nil
}

// TarefasUrgentes: pendentes de prioridade alta, prazo mais próximo primeiro.
func TarefasUrgentes(db *gorm.DB, userID uuid.UUID) ([]tarefaModel.TarefaModel, error) {
	var tarefas []tarefaModel.TarefaModel
	err := tarefaService.ScopedTarefas(db, userID).
		Where("tarefas.tarefa_status IN ?", tarefaModel.StatusPendentes).
		Where("tarefas.tarefa_prioridade = ?", tarefaModel.PrioridadeAlta).
		Order("tarefas.tarefa_data_fim ASC").
		Limit(maxDestaques).
		Find(&tarefas).Error
	return tarefas, err
}

// TarefasProximas: qualquer pendente, prazo mais próximo primeiro.
func TarefasProximas(db *gorm.DB, userID uuid.UUID) ([]tarefaModel.TarefaModel, error) {
	var tarefas []tarefaModel.TarefaModel
	err := tarefaService.ScopedTarefas(db, userID).
		Where("tarefas.tarefa_status IN ?", tarefaModel.StatusPendentes).
		Order("tarefas.tarefa_data_fim ASC").
		Limit(maxDestaques).
		Find(&tarefas).Error
	return tarefas, err
}

// ProximasProvas: provas de hoje em diante, mais próxima primeiro.
func ProximasProvas(db *gorm.DB, userID uuid.UUID, now time.Time, loc *time.Location) ([]provaModel.ProvaModel, error) {
	var provas []provaModel.ProvaModel
	err := provaService.ScopedProvas(db, userID).
		Where("provas.prova_data >= ?", hojeDate(now, loc)).
		Order("provas.prova_data ASC").
		Limit(maxDestaques).
		Find(&provas).Error
	return provas, err
}

// Distribuicao devolve os contadores por matéria, mais pendências primeiro.
func Distribuicao(db *gorm.DB, userID uuid.UUID) ([]DistribuicaoMateria, error) {
	var linhas []DistribuicaoMateria
	err := db.Raw(`
		SELECT m.materia_id,
		       m.materia_nome,
		       m.materia_sigla,
		       COUNT(DISTINCT t.tarefa_id) AS total_tarefas,
		       COUNT(DISTINCT CASE WHEN t.tarefa_status IN ('a_fazer','em_andamento') THEN t.tarefa_id END) AS tarefas_pendentes,
		       COUNT(DISTINCT p.prova_id) AS total_provas,
		       COUNT(DISTINCT ma.material_id) AS total_materiais
		FROM materias m
		LEFT JOIN tarefas t ON t.tarefa_materia_id = m.materia_id
		LEFT JOIN provas p ON p.prova_materia_id = m.materia_id
		LEFT JOIN materiais_apoio ma ON ma.material_prova_id = p.prova_id
		WHERE m.materia_user_id = ?
		GROUP BY m.materia_id, m.materia_nome, m.materia_sigla
		ORDER BY tarefas_pendentes DESC, m.materia_nome ASC
	`, userID).Scan(&linhas).Error
	return linhas, err
}

// AulasDeHoje lista as aulas do dia corrente no fuso do usuário.
func AulasDeHoje(db *gorm.DB, userID uuid.UUID, now time.Time, loc *time.Location) ([]horarioModel.HorarioAulaModel, horarioModel.DiaSemana, error) {
	dia := horarioModel.DiaSemanaDeWeekday(now.In(loc).Weekday())
	aulas, err := horarioService.ListHorarios(db, userID, string(dia))
	return aulas, dia, err
}

// ProximaAula escolhe a primeira aula de hoje que ainda não começou;
// sem aula futura, cai na última aula do dia (se houver alguma).
func ProximaAula(aulasHoje []horarioModel.HorarioAulaModel, now time.Time, loc *time.Location) *horarioModel.HorarioAulaModel {
	if len(aulasHoje) == 0 {
		return nil
	}
	horaAtual := now.In(loc).Format("15:04")
	for i := range aulasHoje {
		if aulasHoje[i].HorarioHoraInicio >= horaAtual {
			return &aulasHoje[i]
		}
	}
	return &aulasHoje[len(aulasHoje)-1]
}

// AgendaEventos devolve tarefas e provas do usuário para o calendário.
func AgendaEventos(db *gorm.DB, userID uuid.UUID) ([]tarefaModel.TarefaModel, []provaModel.ProvaModel, error) {
	var tarefas []tarefaModel.TarefaModel
	if err := tarefaService.ScopedTarefas(db, userID).
		Order("tarefas.tarefa_data_inicio ASC").
		Find(&tarefas).Error; err != nil {
		return nil, nil, err
	}

	var provas []provaModel.ProvaModel
	if err := provaService.ScopedProvas(db, userID).
		Order("provas.prova_data ASC").
		Find(&provas).Error; err != nil {
		return nil, nil, err
	}
	return tarefas, provas, nil
}

// hojeDate trunca o "agora" para a meia-noite UTC do dia corrente no fuso
// do usuário, na mesma convenção em que prova_data é gravada.
func hojeDate(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
