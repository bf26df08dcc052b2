// Package requestid stores the per-request id in the context.
package requestid

import "context"

type ctxKey struct{}

func InjectRequestID(ctx context.Context, requestID uint64) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// ExtractRequestID returns the request id, or 0 when the context does
// not carry one.
func ExtractRequestID(ctx context.Context) uint64 {
	id, _ := ctx.Value(ctxKey{}).(uint64)
	return id
}
