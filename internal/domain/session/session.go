// Package session models a signed-in staff member's console session.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codearena/arena-admin/internal/shared/biztime"
)

// Session binds a console login to the platform token obtained at sign-in.
// The platform token never leaves the server.
type Session struct {
	ID             string    `json:"id"`
	StaffID        string    `json:"staff_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	PlatformToken  string    `json:"platform_token"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewSession(staffID, username, email, role, platformToken, ip, userAgent string, expiresAt time.Time) (*Session, error) {
	if staffID == "" {
		return nil, fmt.Errorf("staff ID is required")
	}
	if platformToken == "" {
		return nil, fmt.Errorf("platform token is required")
	}

	now := biztime.NowUTC()
	return &Session{
		ID:             uuid.NewString(),
		StaffID:        staffID,
		Username:       username,
		Email:          email,
		Role:           role,
		PlatformToken:  platformToken,
		IPAddress:      ip,
		UserAgent:      userAgent,
		ExpiresAt:      expiresAt,
		LastActivityAt: now,
		CreatedAt:      now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func (s *Session) UpdateActivity() {
	s.LastActivityAt = biztime.NowUTC()
}

// Repository stores sessions. Get returns a not-found AppError for unknown or expired ids.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Touch(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
