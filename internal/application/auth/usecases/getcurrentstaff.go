package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type GetCurrentStaffUseCase struct {
	sessions session.Repository
	logger   logger.Interface
}

func NewGetCurrentStaffUseCase(sessions session.Repository, logger logger.Interface) *GetCurrentStaffUseCase {
	return &GetCurrentStaffUseCase{sessions: sessions, logger: logger}
}

func (uc *GetCurrentStaffUseCase) Execute(ctx context.Context, sessionID string) (*StaffDTO, error) {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session expired")
		}
		uc.logger.Errorw("failed to load session", "session_id", sessionID, "error", err)
		return nil, errors.NewInternalError("failed to load session")
	}
	return toStaffDTO(sess), nil
}
