package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "agendaestudos_backend/internals/features/users/auth/repository"
)

// StartTokenCleanupScheduler agenda a limpeza diária de tokens vencidos
// (blacklist + refresh). Devolve o cron para o Stop no shutdown.
func StartTokenCleanupScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		n, err := authRepo.CleanupExpiredTokens(db, time.Now())
		if err != nil {
			log.Printf("[CLEANUP] falha ao limpar tokens vencidos: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[CLEANUP] %d tokens vencidos removidos", n)
		}
	})
	if err != nil {
		log.Printf("[CLEANUP] agendamento não registrado: %v", err)
		return c
	}

	c.Start()
	return c
}
