package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/common/dto"
	"github.com/codearena/arena-admin/internal/application/common/listing"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ListTransactionsQuery struct {
	dto.ListQuery
	Status string `json:"status" validate:"omitempty,oneof=pending succeeded failed refunded"`
	UserID string `json:"user_id"`
}

type ListTransactionsUseCase struct {
	gateway TransactionGateway
	fetcher *listing.Fetcher
	logger  logger.Interface
}

func NewListTransactionsUseCase(gateway TransactionGateway, fetcher *listing.Fetcher, logger logger.Interface) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{gateway: gateway, fetcher: fetcher, logger: logger}
}

func (uc *ListTransactionsUseCase) Execute(ctx context.Context, query ListTransactionsQuery) (*dto.ListResult[platform.PaymentTransaction], error) {
	if err := utils.ValidateStruct(query); err != nil {
		return nil, err
	}

	q := query.ListQuery
	q.Filters = map[string]string{"status": query.Status, "user_id": query.UserID}

	page, err := listing.Do(ctx, uc.fetcher, listing.Key("transactions", q), func(ctx context.Context) (*platform.Page[platform.PaymentTransaction], error) {
		return uc.gateway.ListTransactions(ctx, q.Params())
	})
	if err != nil {
		uc.logger.Errorw("failed to list transactions", "error", err)
		return nil, errors.FromPlatform(err, "failed to list transactions")
	}

	return dto.FromPage(page, q), nil
}
