package middleware

import (
	"errors"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"aadhrita/internal/auth"
	"aadhrita/internal/dto"
)

func LoggingMiddleware() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()
		zlog.Logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// AdminAuth gates the panel routes. The role is re-checked on every request,
// so an identity demoted mid-session loses access immediately and gets an
// explicit denial rather than a redirect.
func AdminAuth(am *auth.Manager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := auth.TokenFromHeader(c.GetHeader("Authorization"))
		userID, err := am.Verify(c, token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrNotAuthenticated):
				dto.NotAuthenticatedError(c)
			case errors.Is(err, auth.ErrAccessDenied):
				dto.AccessDeniedError(c)
			default:
				zlog.Logger.Error().Err(err).Msg("session verification failed")
				dto.InternalServerError(c)
			}
			c.Abort()
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
