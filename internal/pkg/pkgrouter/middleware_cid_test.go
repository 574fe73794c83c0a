package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dustinpezley/cityworks/internal/pkg/pkglog"
)

type staticGenerator struct {
	value string
	calls int
}

func (g *staticGenerator) Generate() string {
	g.calls++
	return g.value
}

func TestMiddlewareCorrelationID(t *testing.T) {
	tests := []struct {
		name      string
		headers   map[string]string
		gen       *staticGenerator
		want      string
		wantCalls int
	}{
		{
			name:    "correlation header wins",
			headers: map[string]string{HeaderCorrelationID: "header-cid", HeaderRequestID: "req-id"},
			gen:     &staticGenerator{value: "generated"},
			want:    "header-cid",
		},
		{
			name:    "request id fallback",
			headers: map[string]string{HeaderRequestID: "req-id"},
			gen:     &staticGenerator{value: "generated"},
			want:    "req-id",
		},
		{
			name:      "generated when missing",
			gen:       &staticGenerator{value: "generated"},
			want:      "generated",
			wantCalls: 1,
		},
		{
			name:      "non printable header replaced",
			headers:   map[string]string{HeaderCorrelationID: "bad\x01cid"},
			gen:       &staticGenerator{value: "generated"},
			want:      "generated",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCID string
			h := middlewareCorrelationID(tt.gen)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCID = pkglog.GetCorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get(HeaderCorrelationID); got != tt.want {
				t.Fatalf("expected response cid %q, got %q", tt.want, got)
			}
			if gotCID != tt.want {
				t.Fatalf("expected context cid %q, got %q", tt.want, gotCID)
			}
			if tt.gen.calls != tt.wantCalls {
				t.Fatalf("expected %d generator calls, got %d", tt.wantCalls, tt.gen.calls)
			}
		})
	}
}

func TestMiddlewareCorrelationIDWithoutGenerator(t *testing.T) {
	h := middlewareCorrelationID(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := pkglog.GetCorrelationID(r.Context()); got != "" {
			t.Errorf("expected no cid, got %q", got)
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "http://example.com", nil))

	if got := rec.Header().Get(HeaderCorrelationID); got != "" {
		t.Fatalf("expected no cid header, got %q", got)
	}
}
