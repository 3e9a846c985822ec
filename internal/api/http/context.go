package http

import "context"

type contextKey string

const userIDKey contextKey = "user_id"

// WithUserID stores the authenticated user's ID on the request context.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user's ID, or "" when the
// request carried no identity. Services reject writes on "".
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
