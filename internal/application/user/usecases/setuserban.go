package usecases

import (
	"context"
	"strings"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type SetUserBanCommand struct {
	ID     string `json:"-"`
	Banned bool   `json:"banned"`
	Reason string `json:"reason" validate:"max=500"`
}

type SetUserBanUseCase struct {
	gateway UserGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewSetUserBanUseCase(gateway UserGateway, sink audit.Sink, logger logger.Interface) *SetUserBanUseCase {
	return &SetUserBanUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *SetUserBanUseCase) Execute(ctx context.Context, cmd SetUserBanCommand) (user *platform.User, err error) {
	name := "users.unban"
	if cmd.Banned {
		name = "users.ban"
	}
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: name, Resource: "user", ResourceID: cmd.ID, Payload: cmd}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(cmd.Reason)
	if cmd.Banned && reason == "" {
		return nil, errors.NewValidationError("Validation failed", "reason is required when banning a user")
	}
	if cmd.Banned && staff.FromContext(ctx).ID == cmd.ID {
		return nil, errors.NewForbiddenError("cannot ban yourself")
	}

	user, err = uc.gateway.SetUserBanned(ctx, cmd.ID, cmd.Banned, reason)
	if err != nil {
		uc.logger.Errorw("failed to change ban status", "id", cmd.ID, "banned", cmd.Banned, "error", err)
		return nil, errors.FromPlatform(err, "failed to change ban status")
	}

	uc.logger.Infow("user ban status changed", "id", cmd.ID, "banned", user.Banned)
	return user, nil
}
