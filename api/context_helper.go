package api

import (
	"context"
	"time"

	"github.com/linesmerrill/dmv-records-api/access"
	"github.com/linesmerrill/dmv-records-api/models"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

type contextKey int

const (
	userKey contextKey = iota
	capabilitiesKey
	requestIDKey
)

// WithUser stores the authenticated user in the context
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the authenticated user, or nil
func UserFrom(ctx context.Context) *models.User {
	u, _ := ctx.Value(userKey).(*models.User)
	return u
}

// WithCapabilities stores the caller's capabilities in the context
func WithCapabilities(ctx context.Context, caps access.Capabilities) context.Context {
	return context.WithValue(ctx, capabilitiesKey, caps)
}

// CapabilitiesFrom returns the caller's capabilities. Without an
// authenticated caller every check is false.
func CapabilitiesFrom(ctx context.Context) access.Capabilities {
	if caps, ok := ctx.Value(capabilitiesKey).(access.Capabilities); ok && caps != nil {
		return caps
	}
	return access.For(nil, access.Roles{})
}

// WithRequestID stores the request id in the context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request id, or an empty string
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
