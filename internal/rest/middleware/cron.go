package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/cadencehq/cadence/internal/config"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/gin-gonic/gin"
)

// CronAuthMiddleware guards the scheduled trigger endpoints with a static
// bearer secret. A missing or mismatched credential is rejected before any
// batch work starts. Cron requests run as the system actor under the default
// tenant; per-item work re-scopes the tenant from authoritative records.
func CronAuthMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := cfg.Cron.Secret

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || secret == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.Error(ierr.NewError("invalid cron credential").
				WithHint("Missing or invalid authorization token").
				Mark(ierr.ErrPermissionDenied))
			c.Abort()
			return
		}

		ctx := types.SetTenantContext(c.Request.Context(), types.DefaultTenantID, types.TriggeredBySystem)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
