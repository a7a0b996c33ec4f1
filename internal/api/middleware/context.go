package middleware

import "context"

type callerKey struct{}

// WithCallerEmail stores the verified caller email
func WithCallerEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, callerKey{}, email)
}

// CallerEmail verified email of the caller; "" for anonymous requests
func CallerEmail(ctx context.Context) string {
	email, _ := ctx.Value(callerKey{}).(string)
	return email
}
