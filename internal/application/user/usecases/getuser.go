package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type GetUserUseCase struct {
	gateway UserGateway
	logger  logger.Interface
}

func NewGetUserUseCase(gateway UserGateway, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{gateway: gateway, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id string) (*platform.User, error) {
	if err := utils.ValidateID(id); err != nil {
		return nil, err
	}

	user, err := uc.gateway.GetUser(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "id", id, "error", err)
		return nil, errors.FromPlatform(err, "failed to get user")
	}
	return user, nil
}
