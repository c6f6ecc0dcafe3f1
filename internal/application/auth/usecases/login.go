package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/codearena/arena-admin/internal/application/audit"
	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/infrastructure/auth"
	"github.com/codearena/arena-admin/internal/shared/authorization"
	"github.com/codearena/arena-admin/internal/shared/biztime"
	"github.com/codearena/arena-admin/internal/shared/errors"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type LoginCommand struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type LoginResult struct {
	Tokens *auth.TokenPair
	Staff  *StaffDTO
}

// LoginUseCase signs a staff member in with their platform credentials. Only
// moderators and admins get a console session.
type LoginUseCase struct {
	gateway  LoginGateway
	sessions session.Repository
	tokens   TokenService
	audit    audit.Sink
	logger   logger.Interface
}

func NewLoginUseCase(gateway LoginGateway, sessions session.Repository, tokens TokenService, sink audit.Sink, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{gateway: gateway, sessions: sessions, tokens: tokens, audit: sink, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	cmd.Email = strings.ToLower(strings.TrimSpace(cmd.Email))
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	res, err := uc.gateway.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if platform.IsUnauthorized(err) {
			uc.logger.Warnw("staff login rejected by platform", "email", cmd.Email, "ip", cmd.IPAddress)
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("staff login failed", "email", cmd.Email, "error", err)
		return nil, errors.FromPlatform(err, "login failed")
	}

	role := authorization.ParseUserRole(res.User.Role)
	if !role.IsStaff() {
		uc.logger.Warnw("non-staff user tried to sign in", "user_id", res.User.ID, "role", res.User.Role)
		return nil, errors.NewForbiddenError("only moderators and administrators may sign in")
	}

	expiresAt := biztime.NowUTC().Add(uc.tokens.RefreshTTL())
	if res.ExpiresIn > 0 {
		if platformExpiry := biztime.NowUTC().Add(time.Duration(res.ExpiresIn) * time.Second); platformExpiry.Before(expiresAt) {
			expiresAt = platformExpiry
		}
	}

	sess, err := session.NewSession(res.User.ID, res.User.Username, res.User.Email, role.String(), res.AccessToken, cmd.IPAddress, cmd.UserAgent, expiresAt)
	if err != nil {
		return nil, errors.NewUpstreamError("login failed", err.Error())
	}
	if err := uc.sessions.Create(ctx, sess); err != nil {
		uc.logger.Errorw("failed to create session", "staff_id", sess.StaffID, "error", err)
		return nil, errors.NewInternalError("failed to create session")
	}

	pair, err := uc.tokens.Generate(sess.StaffID, sess.ID, role)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "staff_id", sess.StaffID, "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	actorCtx := staff.WithActor(ctx, staff.Actor{ID: sess.StaffID, Username: sess.Username, Role: sess.Role})
	uc.audit.Record(actorCtx, audit.Action{Name: "auth.login", Resource: "session", ResourceID: sess.ID, Payload: map[string]string{
		"ip": cmd.IPAddress,
	}}, nil)

	uc.logger.Infow("staff signed in", "staff_id", sess.StaffID, "role", sess.Role, "session_id", sess.ID)
	return &LoginResult{Tokens: pair, Staff: toStaffDTO(sess)}, nil
}
