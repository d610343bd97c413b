package service

import (
	"github.com/matheus-emanuel/mini-uber-lakehouse/config"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage"
)

type IServiceManager interface {
	Ride() RideService
	Payment() PaymentService
}

type service struct {
	rideService    RideService
	paymentService PaymentService
}

func New(stg storage.IStorage, cfg config.Config, log logger.ILogger, sleep Sleeper) IServiceManager {
	paymentService := NewPaymentService(stg, cfg, log, sleep)
	return &service{
		rideService:    NewRideService(stg, paymentService, cfg, log, sleep),
		paymentService: paymentService,
	}
}

func (s *service) Ride() RideService {
	return s.rideService
}

func (s *service) Payment() PaymentService {
	return s.paymentService
}
