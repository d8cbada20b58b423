package middleware

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/apperrors"
	"github.com/trainhub/fitness-platform/backend/internal/users"
	"github.com/trainhub/fitness-platform/backend/internal/validation"
)

// CallerKey is the context key holding the resolved *users.Identity.
const CallerKey = "caller"

// DefaultIdentityHeader carries the caller email set by the gateway.
const DefaultIdentityHeader = "dev-email"

var ErrBlocked = apperrors.Forbidden("blocked", "you do not have access to the system")

// CallerIdentity resolves the caller named in header and rejects blocked
// callers. Requests without the header, or naming an unknown user, pass
// through unchanged.
func CallerIdentity(dir users.Directory, header string, timeout time.Duration) gin.HandlerFunc {
	if header == "" {
		header = DefaultIdentityHeader
	}
	return func(c *gin.Context) {
		email := c.GetHeader(header)
		if email == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		caller, err := dir.FindByEmail(ctx, email)
		switch {
		case err == nil:
		case errors.Is(err, users.ErrNotFound):
			c.Next()
			return
		case errors.Is(err, context.DeadlineExceeded):
			c.Error(validation.ErrUserServiceUnavailable.Wrap(err))
			c.Abort()
			return
		default:
			log.Printf("caller lookup for %s failed: %v", email, err)
			c.Error(apperrors.Internal(err))
			c.Abort()
			return
		}

		if caller.Blocked {
			c.Error(ErrBlocked)
			c.Abort()
			return
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

// Caller returns the identity resolved by CallerIdentity, if any.
func Caller(c *gin.Context) (*users.Identity, bool) {
	v, ok := c.Get(CallerKey)
	if !ok {
		return nil, false
	}
	caller, ok := v.(*users.Identity)
	return caller, ok
}
