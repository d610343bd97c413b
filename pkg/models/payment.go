package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
)

type PaymentMethod string

const (
	PaymentMethodCredit          PaymentMethod = "credit"
	PaymentMethodDebit           PaymentMethod = "debit"
	PaymentMethodInstantTransfer PaymentMethod = "instant-transfer"
	PaymentMethodCash            PaymentMethod = "cash"
)

// PaymentMethods lists every method a new payment may be assigned.
var PaymentMethods = []PaymentMethod{
	PaymentMethodCredit,
	PaymentMethodDebit,
	PaymentMethodInstantTransfer,
	PaymentMethodCash,
}

type Payment struct {
	ID     int64         `json:"id"`
	RideID int64         `json:"ride_id"`
	Method PaymentMethod `json:"method"`
	Status PaymentStatus `json:"status"`
	Amount float64       `json:"amount"`
	PaidAt *time.Time    `json:"paid_at"`
}
