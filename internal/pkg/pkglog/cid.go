package pkglog

import "context"

type correlationIDKey struct{}

// GetCorrelationID returns the correlation ID carried by ctx, or "" when the
// call did not originate from a gateway request.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	cid, _ := ctx.Value(correlationIDKey{}).(string)
	return cid
}

// SetCorrelationID returns a copy of ctx carrying cid. Every record logged
// with the returned context is tagged with it.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}
