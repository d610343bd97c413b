package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/matheus-emanuel/mini-uber-lakehouse/config"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/geo"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/models"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage"
)

// Stand-in identity pools for the generated workload.
const (
	maxPassengerRef = 100
	maxDriverRef    = 50
)

// RideService drives one ride through its full lifecycle:
// requested -> in_progress -> completed | cancelled. A completed ride hands
// its final price to the PaymentService, which settles the payment before
// RunWorkflow returns.
type RideService interface {
	RunWorkflow(ctx context.Context) error
}

type rideService struct {
	stg      storage.IRideStorage
	payments PaymentService
	cfg      config.Config
	log      logger.ILogger
	sleep    Sleeper
	box      geo.Box
	fare     geo.Fare
}

func NewRideService(stg storage.IStorage, payments PaymentService, cfg config.Config, log logger.ILogger, sleep Sleeper) RideService {
	return &rideService{
		stg:      stg.Ride(),
		payments: payments,
		cfg:      cfg,
		log:      log,
		sleep:    sleep,
		box:      geo.Box{LatMin: cfg.LatMin, LatMax: cfg.LatMax, LonMin: cfg.LonMin, LonMax: cfg.LonMax},
		fare:     geo.Fare{BaseFare: cfg.BaseFare, PerKm: cfg.PricePerKm, PerMinute: cfg.PricePerMinute},
	}
}

func (s *rideService) RunWorkflow(ctx context.Context) error {
	ride, err := s.createRide(ctx)
	if err != nil {
		return err
	}

	s.sleep.Sleep(ctx, s.cfg.RideStartDelayMin, s.cfg.RideStartDelayMax)

	if err := s.stg.Start(ctx, ride.ID); err != nil {
		return fmt.Errorf("start ride %d: %w", ride.ID, err)
	}
	s.log.Info("ride started",
		logger.Int64("ride_id", ride.ID),
		logger.String("status", string(models.RideStatusInProgress)))

	s.sleep.Sleep(ctx, s.cfg.RideResolveDelayMin, s.cfg.RideResolveDelayMax)

	if rand.Float64() < s.cfg.CancelProbability {
		if err := s.stg.Cancel(ctx, ride.ID); err != nil {
			return fmt.Errorf("cancel ride %d: %w", ride.ID, err)
		}
		s.log.Info("ride cancelled",
			logger.Int64("ride_id", ride.ID),
			logger.String("status", string(models.RideStatusCancelled)))
		return nil
	}

	// Final price carries the original estimate over, it is not recomputed.
	if err := s.stg.Complete(ctx, ride.ID, ride.EstimatedPrice); err != nil {
		return fmt.Errorf("complete ride %d: %w", ride.ID, err)
	}
	s.log.Info("ride completed",
		logger.Int64("ride_id", ride.ID),
		logger.Float64("final_price", ride.EstimatedPrice),
		logger.String("status", string(models.RideStatusCompleted)))

	return s.payments.Settle(ctx, ride.ID, ride.EstimatedPrice)
}

func (s *rideService) createRide(ctx context.Context) (*models.Ride, error) {
	origin := s.box.RandomPoint()
	destination := s.box.RandomPoint()

	distance := geo.HaversineKm(origin, destination)
	duration := geo.RandomDurationMin(distance, s.cfg.SpeedMinKmh, s.cfg.SpeedMaxKmh)
	price := s.fare.Price(distance, duration)

	ride := &models.Ride{
		PassengerRef:   int64(1 + rand.Intn(maxPassengerRef)),
		DriverRef:      int64(1 + rand.Intn(maxDriverRef)),
		Origin:         origin,
		Destination:    destination,
		DistanceKm:     geo.Round2(distance),
		DurationMin:    duration,
		EstimatedPrice: price,
		Status:         models.RideStatusRequested,
	}

	ride, err := s.stg.Create(ctx, ride)
	if err != nil {
		return nil, fmt.Errorf("create ride: %w", err)
	}
	s.log.Info("ride created",
		logger.Int64("ride_id", ride.ID),
		logger.Float64("estimated_price", ride.EstimatedPrice),
		logger.String("status", string(models.RideStatusRequested)))

	return ride, nil
}
