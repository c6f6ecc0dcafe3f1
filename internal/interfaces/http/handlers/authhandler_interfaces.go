package handlers

import (
	"context"

	authUsecases "github.com/codearena/arena-admin/internal/application/auth/usecases"
	"github.com/codearena/arena-admin/internal/infrastructure/auth"
)

// Use case interfaces for AuthHandler

type loginUseCase interface {
	Execute(ctx context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, refreshToken string) (*auth.TokenPair, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, sessionID string) error
}

type getCurrentStaffUseCase interface {
	Execute(ctx context.Context, sessionID string) (*authUsecases.StaffDTO, error)
}
