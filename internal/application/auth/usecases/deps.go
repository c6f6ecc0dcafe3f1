package usecases

import (
	"context"
	"time"

	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/infrastructure/auth"
	"github.com/codearena/arena-admin/internal/shared/authorization"
	"github.com/codearena/arena-admin/sdk/platform"
)

type LoginGateway interface {
	Login(ctx context.Context, email, password string) (*platform.LoginResult, error)
}

type TokenService interface {
	Generate(staffID, sessionID string, role authorization.UserRole) (*auth.TokenPair, error)
	VerifyAccess(token string) (*auth.Claims, error)
	Refresh(refreshToken string) (*auth.TokenPair, *auth.Claims, error)
	RefreshTTL() time.Duration
}

type StaffDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toStaffDTO(s *session.Session) *StaffDTO {
	return &StaffDTO{
		ID:        s.StaffID,
		Username:  s.Username,
		Email:     s.Email,
		Role:      s.Role,
		SessionID: s.ID,
		ExpiresAt: s.ExpiresAt,
	}
}
