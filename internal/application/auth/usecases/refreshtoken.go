package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/infrastructure/auth"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

type RefreshTokenUseCase struct {
	sessions session.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewRefreshTokenUseCase(sessions session.Repository, tokens TokenService, logger logger.Interface) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{sessions: sessions, tokens: tokens, logger: logger}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	if refreshToken == "" {
		return nil, errors.NewUnauthorizedError("refresh token is required")
	}

	pair, claims, err := uc.tokens.Refresh(refreshToken)
	if err != nil {
		uc.logger.Warnw("refresh token rejected", "error", err)
		return nil, errors.NewUnauthorizedError("invalid refresh token")
	}

	sess, err := uc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session expired")
		}
		uc.logger.Errorw("failed to load session", "session_id", claims.SessionID, "error", err)
		return nil, errors.NewInternalError("failed to refresh session")
	}
	if sess.IsExpired() || sess.StaffID != claims.StaffID {
		return nil, errors.NewUnauthorizedError("session expired")
	}

	if err := uc.sessions.Touch(ctx, sess); err != nil {
		uc.logger.Warnw("failed to touch session", "session_id", sess.ID, "error", err)
	}

	return pair, nil
}
