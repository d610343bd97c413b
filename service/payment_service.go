package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/matheus-emanuel/mini-uber-lakehouse/config"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/models"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage"
)

// PaymentService drives one payment through its full lifecycle:
// pending -> processing -> paid | failed. A payment is only ever created for
// a completed ride, and it never idles in pending: Settle carries it to a
// terminal state before returning.
type PaymentService interface {
	Settle(ctx context.Context, rideID int64, amount float64) error
}

type paymentService struct {
	stg   storage.IPaymentStorage
	cfg   config.Config
	log   logger.ILogger
	sleep Sleeper
}

func NewPaymentService(stg storage.IStorage, cfg config.Config, log logger.ILogger, sleep Sleeper) PaymentService {
	return &paymentService{
		stg:   stg.Payment(),
		cfg:   cfg,
		log:   log,
		sleep: sleep,
	}
}

func (s *paymentService) Settle(ctx context.Context, rideID int64, amount float64) error {
	payment := &models.Payment{
		RideID: rideID,
		Method: models.PaymentMethods[rand.Intn(len(models.PaymentMethods))],
		Status: models.PaymentStatusPending,
		Amount: amount,
	}

	payment, err := s.stg.Create(ctx, payment)
	if err != nil {
		return fmt.Errorf("create payment for ride %d: %w", rideID, err)
	}
	s.log.Info("payment created",
		logger.Int64("payment_id", payment.ID),
		logger.Int64("ride_id", rideID),
		logger.String("method", string(payment.Method)),
		logger.String("status", string(models.PaymentStatusPending)))

	s.sleep.Sleep(ctx, s.cfg.PaymentProcessDelayMin, s.cfg.PaymentProcessDelayMax)

	if err := s.stg.SetProcessing(ctx, payment.ID); err != nil {
		return fmt.Errorf("process payment %d: %w", payment.ID, err)
	}
	s.log.Info("payment processing",
		logger.Int64("payment_id", payment.ID),
		logger.String("status", string(models.PaymentStatusProcessing)))

	s.sleep.Sleep(ctx, s.cfg.PaymentSettleDelayMin, s.cfg.PaymentSettleDelayMax)

	status := models.PaymentStatusPaid
	if rand.Float64() < s.cfg.PaymentFailureProbability {
		status = models.PaymentStatusFailed
	}

	if err := s.stg.Finalize(ctx, payment.ID, status); err != nil {
		return fmt.Errorf("finalize payment %d: %w", payment.ID, err)
	}
	s.log.Info("payment finalized",
		logger.Int64("payment_id", payment.ID),
		logger.String("status", string(status)))

	return nil
}
