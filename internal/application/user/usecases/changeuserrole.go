package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type ChangeUserRoleCommand struct {
	ID   string `json:"-"`
	Role string `json:"role" validate:"required,oneof=user moderator admin"`
}

type ChangeUserRoleUseCase struct {
	gateway UserGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewChangeUserRoleUseCase(gateway UserGateway, sink audit.Sink, logger logger.Interface) *ChangeUserRoleUseCase {
	return &ChangeUserRoleUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *ChangeUserRoleUseCase) Execute(ctx context.Context, cmd ChangeUserRoleCommand) (user *platform.User, err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "users.role", Resource: "user", ResourceID: cmd.ID, Payload: cmd}, err)
	}()

	if err := utils.ValidateID(cmd.ID); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if staff.FromContext(ctx).ID == cmd.ID {
		return nil, errors.NewForbiddenError("cannot change your own role")
	}

	user, err = uc.gateway.UpdateUserRole(ctx, cmd.ID, cmd.Role)
	if err != nil {
		uc.logger.Errorw("failed to change user role", "id", cmd.ID, "role", cmd.Role, "error", err)
		return nil, errors.FromPlatform(err, "failed to change user role")
	}

	uc.logger.Infow("user role changed", "id", cmd.ID, "role", user.Role)
	return user, nil
}
