package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/logger"
	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/models"
	"github.com/matheus-emanuel/mini-uber-lakehouse/storage"
)

type paymentRepo struct {
	db  *pgxpool.Pool
	log logger.ILogger
}

func NewPaymentRepo(db *pgxpool.Pool, log logger.ILogger) storage.IPaymentStorage {
	return &paymentRepo{db: db, log: log}
}

func (r *paymentRepo) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	query := `
		INSERT INTO payments (ride_id, method, status, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		payment.RideID,
		payment.Method,
		payment.Status,
		payment.Amount,
	).Scan(&payment.ID)

	if err != nil {
		r.log.Error("failed to create payment", logger.Int64("ride_id", payment.RideID), logger.Error(err))
		return nil, err
	}

	return payment, nil
}

func (r *paymentRepo) SetProcessing(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx,
		"UPDATE payments SET status = 'processing' WHERE id = $1 AND status = 'pending'", id)
	if err != nil {
		r.log.Error("failed to set payment processing", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("payment %d is not pending", id)
	}
	return nil
}

func (r *paymentRepo) Finalize(ctx context.Context, id int64, status models.PaymentStatus) error {
	if status != models.PaymentStatusPaid && status != models.PaymentStatusFailed {
		return fmt.Errorf("payment %d: %q is not a terminal status", id, status)
	}

	res, err := r.db.Exec(ctx,
		"UPDATE payments SET status = $1, paid_at = NOW() WHERE id = $2 AND status = 'processing'", status, id)
	if err != nil {
		r.log.Error("failed to finalize payment", logger.Int64("id", id), logger.Error(err))
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("payment %d is not processing", id)
	}
	return nil
}
