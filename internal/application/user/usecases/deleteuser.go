package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
)

type DeleteUserUseCase struct {
	gateway UserGateway
	audit   audit.Sink
	logger  logger.Interface
}

func NewDeleteUserUseCase(gateway UserGateway, sink audit.Sink, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{gateway: gateway, audit: sink, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "users.delete", Resource: "user", ResourceID: id}, err)
	}()

	if err := utils.ValidateID(id); err != nil {
		return err
	}
	if staff.FromContext(ctx).ID == id {
		return errors.NewForbiddenError("cannot delete your own account")
	}

	if err := uc.gateway.DeleteUser(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete user", "id", id, "error", err)
		return errors.FromPlatform(err, "failed to delete user")
	}

	uc.logger.Infow("user deleted", "id", id)
	return nil
}
