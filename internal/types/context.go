package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID ContextKey = "ctx_request_id"
	CtxTenantID  ContextKey = "ctx_tenant_id"
	CtxUserID    ContextKey = "ctx_user_id"

	// Default values
	DefaultTenantID = "00000000-0000-0000-0000-000000000000"
	DefaultUserID   = "00000000-0000-0000-0000-000000000000"

	// TriggeredBySystem marks records written by scheduled jobs rather than a user.
	TriggeredBySystem = "system"
)

// Request headers mapped into the context by middleware
const (
	HeaderRequestID = "X-Request-ID"
	HeaderTenantID  = "X-Tenant-ID"
	HeaderUserID    = "X-User-ID"
)

func GetTenantID(ctx context.Context) string {
	if tenantID, ok := ctx.Value(CtxTenantID).(string); ok {
		return tenantID
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetTenantContext returns a context carrying the given tenant and user ids.
// Batch jobs use this to scope per-item work to the owning tenant taken from
// the authoritative record, never from caller input.
func SetTenantContext(ctx context.Context, tenantID, userID string) context.Context {
	ctx = context.WithValue(ctx, CtxTenantID, tenantID)
	ctx = context.WithValue(ctx, CtxUserID, userID)
	return ctx
}
