package middleware

import (
	"context"

	"github.com/cadencehq/cadence/internal/types"
	"github.com/gin-gonic/gin"
)

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = types.GenerateUUIDWithPrefix(types.UUIDPrefixRequest)
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)
	c.Request = c.Request.WithContext(ctx)

	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}

// TenantMiddleware injects the caller's tenant and user ids from headers into
// the request context. Batch jobs override these per item from authoritative
// records; this only scopes the interactive API surface.
func TenantMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	tenantID := c.GetHeader(types.HeaderTenantID)
	if tenantID == "" {
		tenantID = types.DefaultTenantID
	}
	userID := c.GetHeader(types.HeaderUserID)
	if userID == "" {
		userID = types.DefaultUserID
	}

	ctx = types.SetTenantContext(ctx, tenantID, userID)
	c.Request = c.Request.WithContext(ctx)

	c.Next()
}
