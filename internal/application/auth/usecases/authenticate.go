package usecases

import (
	"context"

	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
)

// AuthenticateUseCase resolves an access token to its live session.
type AuthenticateUseCase struct {
	sessions session.Repository
	tokens   TokenService
	logger   logger.Interface
}

func NewAuthenticateUseCase(sessions session.Repository, tokens TokenService, logger logger.Interface) *AuthenticateUseCase {
	return &AuthenticateUseCase{sessions: sessions, tokens: tokens, logger: logger}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, accessToken string) (*session.Session, error) {
	if accessToken == "" {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	claims, err := uc.tokens.VerifyAccess(accessToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	sess, err := uc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("session expired")
		}
		uc.logger.Errorw("failed to load session", "session_id", claims.SessionID, "error", err)
		return nil, errors.NewInternalError("failed to load session")
	}
	if sess.IsExpired() || sess.StaffID != claims.StaffID {
		return nil, errors.NewUnauthorizedError("session expired")
	}

	return sess, nil
}
