package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheus-emanuel/mini-uber-lakehouse/config"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/simulator"
	"github.com/matheus-emanuel/mini-uber-lakehouse/service"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage/postgres"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	pgStore, err := postgres.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pgStore.Close()

	sleep := service.NewRandomSleeper()
	svc := service.New(pgStore, cfg, log, sleep)

	sim := simulator.New(cfg, svc, log, sleep)
	sim.Start(ctx)

	<-ctx.Done()

	log.Info("shutting down, waiting for workers to finish")
	sim.Wait()
}
