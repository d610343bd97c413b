package main

import (
	"context"
	"fmt"

	"github.com/matheus-emanuel/mini-uber-lakehouse/config"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	pg, err := postgres.New(context.Background(), cfg, log)

	if err != nil {
		panic(err)
	}
	defer pg.Close()

	// Payments reference rides, CASCADE cleans both in one statement.
	_, err = pg.GetPool().Exec(context.Background(), "TRUNCATE TABLE rides, payments RESTART IDENTITY CASCADE")
	if err != nil {
		log.Error(fmt.Sprintf("Failed to truncate tables: %v", err))
	} else {
		log.Info("Successfully truncated rides and payments tables.")
	}
}
