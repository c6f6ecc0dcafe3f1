package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type GetTransactionUseCase struct {
	gateway TransactionGateway
	logger  logger.Interface
}

func NewGetTransactionUseCase(gateway TransactionGateway, logger logger.Interface) *GetTransactionUseCase {
	return &GetTransactionUseCase{gateway: gateway, logger: logger}
}

func (uc *GetTransactionUseCase) Execute(ctx context.Context, id string) (*platform.PaymentTransaction, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	tx, err := uc.gateway.GetTransaction(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get transaction", "id", id, "error", err)
		return nil, errors.FromPlatform(err, "failed to get transaction")
	}
	return tx, nil
}
