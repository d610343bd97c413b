// Package simulator runs the worker pool that generates the ride-hailing
// workload. Workers share nothing in memory; every ride and payment they
// touch lives in the store, so any number of them can interleave freely.
package simulator

import (
	"context"
	"sync"

	"github.com/matheus-emanuel/mini-uber-lakehouse/config"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/service"
)

type Simulator struct {
	cfg   config.Config
	svc   service.IServiceManager
	log   logger.ILogger
	sleep service.Sleeper
	wg    sync.WaitGroup
}

func New(cfg config.Config, svc service.IServiceManager, log logger.ILogger, sleep service.Sleeper) *Simulator {
	return &Simulator{
		cfg:   cfg,
		svc:   svc,
		log:   log,
		sleep: sleep,
	}
}

// Start launches the configured number of workers and returns immediately.
// Workers run until ctx is cancelled.
func (s *Simulator) Start(ctx context.Context) {
	for i := 1; i <= s.cfg.Workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx, i)
	}
	s.log.Info("simulation started", logger.Int("workers", s.cfg.Workers))
}

// Wait blocks until every worker has observed the cancelled context and
// returned.
func (s *Simulator) Wait() {
	s.wg.Wait()
}

// worker runs ride+payment workflows back to back. A failed iteration is
// logged and swallowed; only context cancellation ends the loop.
func (s *Simulator) worker(ctx context.Context, id int) {
	defer s.wg.Done()

	for {
		if ctx.Err() != nil {
			s.log.Info("worker stopped", logger.Int("worker", id))
			return
		}

		if err := s.svc.Ride().RunWorkflow(ctx); err != nil {
			s.log.Error("workflow iteration failed", logger.Int("worker", id), logger.Error(err))
		}

		s.sleep.Sleep(ctx, s.cfg.WorkerIdleDelayMin, s.cfg.WorkerIdleDelayMax)
	}
}
