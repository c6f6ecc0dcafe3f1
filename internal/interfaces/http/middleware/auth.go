package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/application/common/staff"
	"github.com/codearena/arena-admin/internal/domain/session"
	"github.com/codearena/arena-admin/internal/shared/constants"
	"github.com/codearena/arena-admin/internal/shared/logger"
	"github.com/codearena/arena-admin/internal/shared/utils"
	"github.com/codearena/arena-admin/sdk/platform"
)

type sessionAuthenticator interface {
	Execute(ctx context.Context, accessToken string) (*session.Session, error)
}

type AuthMiddleware struct {
	authenticate sessionAuthenticator
	logger       logger.Interface
}

func NewAuthMiddleware(authenticate sessionAuthenticator, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		authenticate: authenticate,
		logger:       logger,
	}
}

// RequireAuth resolves the console session and binds the staff member's
// platform token to the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.TokenFromRequest(c, utils.AccessTokenCookie)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		sess, err := m.authenticate.Execute(c.Request.Context(), token)
		if err != nil {
			m.logger.Debugw("request authentication failed", "path", c.Request.URL.Path, "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyStaffID, sess.StaffID)
		c.Set(constants.ContextKeyStaffName, sess.Username)
		c.Set(constants.ContextKeyRole, sess.Role)
		c.Set(constants.ContextKeySessionID, sess.ID)

		ctx := platform.ContextWithToken(c.Request.Context(), sess.PlatformToken)
		ctx = staff.WithActor(ctx, staff.Actor{ID: sess.StaffID, Username: sess.Username, Role: sess.Role})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
