package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matheus-emanuel/mini-uber-lakehouse/config"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/models"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...logger.Field)    {}
func (nopLogger) Error(string, ...logger.Field)   {}
func (nopLogger) Warning(string, ...logger.Field) {}

type zeroSleeper struct{}

func (zeroSleeper) Sleep(context.Context, int, int) {}

// memStore is an in-memory stand-in for the Postgres store. It mirrors the
// real repos' conditional updates so illegal transitions fail the same way.
type memStore struct {
	mu            sync.Mutex
	rides         map[int64]*models.Ride
	payments      map[int64]*models.Payment
	nextRideID    int64
	nextPaymentID int64

	failRideCreate      bool
	failPaymentFinalize bool
}

func newMemStore() *memStore {
	return &memStore{
		rides:    make(map[int64]*models.Ride),
		payments: make(map[int64]*models.Payment),
	}
}

func (m *memStore) Ride() storage.IRideStorage       { return &memRideRepo{s: m} }
func (m *memStore) Payment() storage.IPaymentStorage { return &memPaymentRepo{s: m} }
func (m *memStore) Close()                           {}
func (m *memStore) GetPool() *pgxpool.Pool           { return nil }

func (m *memStore) ridesSnapshot() []models.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Ride, 0, len(m.rides))
	for _, r := range m.rides {
		out = append(out, *r)
	}
	return out
}

func (m *memStore) paymentsSnapshot() []models.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		out = append(out, *p)
	}
	return out
}

func (m *memStore) paymentsForRide(rideID int64) []models.Payment {
	var out []models.Payment
	for _, p := range m.paymentsSnapshot() {
		if p.RideID == rideID {
			out = append(out, p)
		}
	}
	return out
}

// seedCompletedRide inserts a terminal completed ride directly, for payment
// tests that do not need the ride lifecycle.
func (m *memStore) seedCompletedRide(finalPrice float64) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRideID++
	now := time.Now()
	m.rides[m.nextRideID] = &models.Ride{
		ID:             m.nextRideID,
		Status:         models.RideStatusCompleted,
		EstimatedPrice: finalPrice,
		FinalPrice:     &finalPrice,
		RequestedAt:    now,
		StartedAt:      &now,
		EndedAt:        &now,
	}
	return m.nextRideID
}

type memRideRepo struct {
	s *memStore
}

func (r *memRideRepo) Create(_ context.Context, ride *models.Ride) (*models.Ride, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failRideCreate {
		return nil, fmt.Errorf("connection refused")
	}
	r.s.nextRideID++
	ride.ID = r.s.nextRideID
	ride.RequestedAt = time.Now()
	stored := *ride
	r.s.rides[ride.ID] = &stored
	return ride, nil
}

func (r *memRideRepo) Start(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ride, ok := r.s.rides[id]
	if !ok || ride.Status != models.RideStatusRequested {
		return fmt.Errorf("ride %d is not in requested state", id)
	}
	now := time.Now()
	ride.Status = models.RideStatusInProgress
	ride.StartedAt = &now
	return nil
}

func (r *memRideRepo) Complete(_ context.Context, id int64, finalPrice float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ride, ok := r.s.rides[id]
	if !ok || ride.Status != models.RideStatusInProgress {
		return fmt.Errorf("ride %d is not in progress", id)
	}
	now := time.Now()
	ride.Status = models.RideStatusCompleted
	ride.FinalPrice = &finalPrice
	ride.EndedAt = &now
	return nil
}

func (r *memRideRepo) Cancel(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ride, ok := r.s.rides[id]
	if !ok || ride.Status != models.RideStatusInProgress {
		return fmt.Errorf("ride %d is not in progress", id)
	}
	now := time.Now()
	ride.Status = models.RideStatusCancelled
	ride.EndedAt = &now
	return nil
}

type memPaymentRepo struct {
	s *memStore
}

func (r *memPaymentRepo) Create(_ context.Context, payment *models.Payment) (*models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ride, ok := r.s.rides[payment.RideID]
	if !ok || ride.Status != models.RideStatusCompleted {
		return nil, fmt.Errorf("ride %d is not completed", payment.RideID)
	}
	r.s.nextPaymentID++
	payment.ID = r.s.nextPaymentID
	stored := *payment
	r.s.payments[payment.ID] = &stored
	return payment, nil
}

func (r *memPaymentRepo) SetProcessing(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	payment, ok := r.s.payments[id]
	if !ok || payment.Status != models.PaymentStatusPending {
		return fmt.Errorf("payment %d is not pending", id)
	}
	payment.Status = models.PaymentStatusProcessing
	return nil
}

func (r *memPaymentRepo) Finalize(_ context.Context, id int64, status models.PaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failPaymentFinalize {
		return fmt.Errorf("connection refused")
	}
	payment, ok := r.s.payments[id]
	if !ok || payment.Status != models.PaymentStatusProcessing {
		return fmt.Errorf("payment %d is not processing", id)
	}
	now := time.Now()
	payment.Status = status
	payment.PaidAt = &now
	return nil
}

func testConfig() config.Config {
	return config.Config{
		LatMin: -3.90, LatMax: -3.65,
		LonMin: -38.70, LonMax: -38.40,
		CancelProbability:         0.15,
		PaymentFailureProbability: 0.08,
		BaseFare:                  5,
		PricePerKm:                2.5,
		PricePerMinute:            0.4,
		SpeedMinKmh:               20,
		SpeedMaxKmh:               40,
	}
}
