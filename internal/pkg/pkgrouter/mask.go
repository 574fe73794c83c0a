package pkgrouter

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxLoggedBodyBytes = 64 * 1024
	masked             = "***"
)

//nolint:gochecknoglobals // read-only lookup
var sensitiveKeys = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"loginname":     {},
	"login_name":    {},
}

// isSensitive matches the listed keys and anything ending in "token" or
// "password", so both snake_case and Cityworks PascalCase names are caught.
func isSensitive(key string) bool {
	k := strings.ToLower(key)
	if _, found := sensitiveKeys[k]; found {
		return true
	}
	return strings.HasSuffix(k, "token") || strings.HasSuffix(k, "password")
}

func maskHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	for key := range result {
		if isSensitive(key) {
			result.Set(key, masked)
		}
	}
	return result
}

func maskValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			if isSensitive(k) {
				out[k] = masked
				continue
			}
			out[k] = maskValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = maskValue(inner)
		}
		return out
	default:
		return v
	}
}

// maskBody turns a captured body into something safe to log. JSON and form
// bodies are decoded and masked; a form field holding JSON (the Cityworks
// "data" field) is decoded as well.
func maskBody(contentType string, body []byte) any {
	if len(body) == 0 {
		return nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		return maskValue(decoded)
	}

	if strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		if values, err := url.ParseQuery(string(body)); err == nil {
			return maskForm(values)
		}
	}

	if !utf8.Valid(body) {
		return "<binary body omitted>"
	}
	if len(body) > maxLoggedBodyBytes {
		return string(body[:maxLoggedBodyBytes]) + "...(truncated)"
	}
	return string(body)
}

func maskForm(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		switch {
		case isSensitive(k):
			out[k] = masked
		case len(v) == 1:
			var decoded any
			if err := json.Unmarshal([]byte(v[0]), &decoded); err == nil {
				out[k] = maskValue(decoded)
			} else {
				out[k] = v[0]
			}
		default:
			out[k] = v
		}
	}
	return out
}
