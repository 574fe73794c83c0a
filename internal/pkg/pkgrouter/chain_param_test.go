package pkgrouter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestChainOrder(t *testing.T) {
	order := make([]string, 0, 3)

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("mw1"), mw("mw2"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://example.com", nil))

	if !reflect.DeepEqual(order, []string{"mw1", "mw2", "handler"}) {
		t.Fatalf("unexpected order: %#v", order)
	}
}

func TestGetParamID(t *testing.T) {
	tests := []struct {
		value  string
		wantID int64
		wantOK bool
	}{
		{"123", 123, true},
		{"0", 0, false},
		{"-4", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		params := httprouter.Params{{Key: "id", Value: tt.value}}
		ctx := context.WithValue(context.Background(), httprouter.ParamsKey, params)

		id, raw, ok := GetParamID(ctx, "id")
		if id != tt.wantID || ok != tt.wantOK || raw != tt.value {
			t.Fatalf("GetParamID(%q) = %d, %q, %v", tt.value, id, raw, ok)
		}
	}

	if got := GetParam(context.Background(), "id"); got != "" {
		t.Fatalf("expected empty param without router context, got %q", got)
	}
}

func TestRecovererReturnsJSON(t *testing.T) {
	h := middlewareRecoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
}

func TestInternalFrames(t *testing.T) {
	stack := "goroutine 1 [running]:\n" +
		"main.main()\n" +
		"\t/src/cityworks/internal/pll/cases/case.go:42 +0x1d\n" +
		"\t/usr/local/go/src/runtime/proc.go:271 +0x29\n"

	got := internalFrames(stack)
	if !reflect.DeepEqual(got, []string{"internal/pll/cases/case.go:42"}) {
		t.Fatalf("unexpected frames: %v", got)
	}
}
