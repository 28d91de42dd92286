package main

import (
	"github.com/ujenziiq/ujenziiq-go/internal/config"
	"github.com/ujenziiq/ujenziiq-go/internal/database"
	"github.com/ujenziiq/ujenziiq-go/internal/env"
	"github.com/ujenziiq/ujenziiq-go/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	db.Exec(`CREATE EXTENSION IF NOT EXISTS citext`)

	migrateErr := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Task{},
		&model.Material{},
		&model.ResourceAllocation{},
		&model.Safety{},
		&model.ProjectImage{},
		&model.ProgressReport{},
		&model.Notification{},
		&model.Message{},
		&model.Comment{},
		&model.SMSLog{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
