package usecases

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/internal/application/common/listing"
	apperrors "github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/sdk/platform"
)

type mockTransactionGateway struct {
	ListFunc func(ctx context.Context, params platform.ListParams) (*platform.Page[platform.PaymentTransaction], error)
	GetFunc  func(ctx context.Context, id string) (*platform.PaymentTransaction, error)
}

func (m *mockTransactionGateway) ListTransactions(ctx context.Context, params platform.ListParams) (*platform.Page[platform.PaymentTransaction], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return &platform.Page[platform.PaymentTransaction]{}, nil
}

func (m *mockTransactionGateway) GetTransaction(ctx context.Context, id string) (*platform.PaymentTransaction, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return &platform.PaymentTransaction{ID: id}, nil
}

func TestListTransactions_StatusFilter(t *testing.T) {
	var got platform.ListParams
	gw := &mockTransactionGateway{ListFunc: func(_ context.Context, p platform.ListParams) (*platform.Page[platform.PaymentTransaction], error) {
		got = p
		return &platform.Page[platform.PaymentTransaction]{Items: []platform.PaymentTransaction{{ID: "t1", Status: "refunded"}}, Total: 1}, nil
	}}
	uc := NewListTransactionsUseCase(gw, listing.NewFetcher(), logger.NewNop())

	res, err := uc.Execute(context.Background(), ListTransactionsQuery{Status: StatusRefunded, UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 1, res.Page, "falls back to the requested page")
	assert.Equal(t, 20, res.PageSize)
	assert.Equal(t, "refunded", got.Filters["status"])
	assert.Equal(t, "u1", got.Filters["user_id"])

	_, err = uc.Execute(context.Background(), ListTransactionsQuery{Status: "chargeback"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetTransaction_NotFound(t *testing.T) {
	gw := &mockTransactionGateway{GetFunc: func(context.Context, string) (*platform.PaymentTransaction, error) {
		return nil, &platform.APIError{StatusCode: http.StatusNotFound, Message: "no such transaction"}
	}}
	uc := NewGetTransactionUseCase(gw, logger.NewNop())

	_, err := uc.Execute(context.Background(), "t404")
	assert.True(t, apperrors.IsNotFoundError(err))
}
