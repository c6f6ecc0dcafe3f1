package usecases

import (
	"context"
	"fmt"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type LogoutUseCase struct {
	sessions session.Repository
	audit    audit.Sink
	logger   logger.Interface
}

func NewLogoutUseCase(sessions session.Repository, sink audit.Sink, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, audit: sink, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, sessionID string) (err error) {
	defer func() {
		uc.audit.Record(ctx, audit.Action{Name: "auth.logout", Resource: "session", ResourceID: sessionID}, err)
	}()

	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "error", err, "session_id", sessionID)
		return fmt.Errorf("failed to logout: %w", err)
	}

	uc.logger.Infow("staff signed out", "session_id", sessionID)
	return nil
}
