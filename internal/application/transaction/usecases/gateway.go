package usecases

import (
	"context"

	"github.com/codearena/arena-admin/sdk/platform"
)

type TransactionGateway interface {
	ListTransactions(ctx context.Context, params platform.ListParams) (*platform.Page[platform.PaymentTransaction], error)
	GetTransaction(ctx context.Context, id string) (*platform.PaymentTransaction, error)
}

// Transaction statuses reported by the platform.
const (
	StatusPending   = "pending"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

var Statuses = []string{StatusPending, StatusSucceeded, StatusFailed, StatusRefunded}
