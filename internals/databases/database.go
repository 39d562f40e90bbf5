package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"agendaestudos_backend/internals/configs"
	horarioModel "agendaestudos_backend/internals/features/agenda/horarios/model"
	materiaModel "agendaestudos_backend/internals/features/agenda/materias/model"
	provaModel "agendaestudos_backend/internals/features/agenda/provas/model"
	tarefaModel "agendaestudos_backend/internals/features/agenda/tarefas/model"
	authModel "agendaestudos_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando ao PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=agendaestudos&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // compatível com PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Falha ao conectar no banco: %v", err)
	}
	DB = db
	log.Println("✅ Banco conectado.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate aplica o AutoMigrate de todos os modelos.
// Ordem: tabelas pai antes das filhas, para as FKs com ON DELETE CASCADE.
func Migrate() {
	if err := DB.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&authModel.RefreshTokenModel{},
		&materiaModel.MateriaModel{},
		&tarefaModel.TarefaModel{},
		&provaModel.ProvaModel{},
		&provaModel.MaterialApoioModel{},
		&horarioModel.HorarioAulaModel{},
	); err != nil {
		log.Fatalf("❌ Falha no AutoMigrate: %v", err)
	}
	log.Println("✅ Migrations aplicadas.")
}

// WarmUpQueries aquece o pool com uma query barata (anti cold start).
func WarmUpQueries() {
	var one int
	if err := DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		log.Printf("warmup err: %v", err)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
