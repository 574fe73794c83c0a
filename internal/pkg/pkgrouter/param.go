package pkgrouter

import (
	"context"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter from the request context (as stored by httprouter).
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// GetParamID reads a positive integer path parameter. The raw value is
// returned alongside so callers can report it.
func GetParamID(ctx context.Context, key string) (int64, string, bool) {
	raw := GetParam(ctx, key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, raw, false
	}
	return id, raw, true
}
