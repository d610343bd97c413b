package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/models"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage"
)

type rideRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewRideRepo(db *pgxpool.Pool, log logger.ILogger) storage.IRideStorage {
	return &rideRepo{db: db, log: log}
}

func (r *rideRepo) Create(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	query := `
		INSERT INTO rides (passenger_ref, driver_ref, origin_lat, origin_lon, dest_lat, dest_lon, distance_km, duration_min, estimated_price, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, requested_at
	`
	err := r.db.QueryRow(ctx, query,
		ride.PassengerRef,
		ride.DriverRef,
		ride.Origin.Lat,
		ride.Origin.Lon,
		ride.Destination.Lat,
		ride.Destination.Lon,
		ride.DistanceKm,
		ride.DurationMin,
		ride.EstimatedPrice,
		ride.Status,
	).Scan(&ride.ID, &ride.RequestedAt)

	if err != nil {
		r.log.Error("failed to create ride", logger.Error(err))
		return nil, err
	}

	return ride, nil
}

func (r *rideRepo) Start(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx,
		"UPDATE rides SET status = 'in_progress', started_at = NOW() WHERE id = $1 AND status = 'requested'", id)
	if err != nil {
		r.log.Error("failed to start ride", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("ride %d is not in requested state", id)
	}
	return nil
}

func (r *rideRepo) Complete(ctx context.Context, id int64, finalPrice float64) error {
	res, err := r.db.Exec(ctx,
		"UPDATE rides SET status = 'completed', final_price = $1, ended_at = NOW() WHERE id = $2 AND status = 'in_progress'",
		finalPrice, id)
	if err != nil {
		r.log.Error("failed to complete ride", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("ride %d is not in progress", id)
	}
	return nil
}

func (r *rideRepo) Cancel(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx,
		"UPDATE rides SET status = 'cancelled', ended_at = NOW() WHERE id = $1 AND status = 'in_progress'", id)
	if err != nil {
		r.log.Error("failed to cancel ride", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("ride %d is not in progress", id)
	}
	return nil
}
