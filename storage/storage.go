package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/models"
)

type IStorage interface {
	Ride() IRideStorage
	Payment() IPaymentStorage
	Close()
	GetPool() *pgxpool.Pool
}

// IRideStorage persists ride lifecycle transitions. Every status-changing
// update is conditional on the current status, so a row that already reached
// a terminal state is never written again.
type IRideStorage interface {
	Create(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	Start(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64, finalPrice float64) error
	Cancel(ctx context.Context, id int64) error
}

type IPaymentStorage interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	SetProcessing(ctx context.Context, id int64) error
	Finalize(ctx context.Context, id int64, status models.PaymentStatus) error
}
