package pkgtransport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgerror"
)

type captured struct {
	path  string
	data  map[string]any
	token string
}

func newServer(t *testing.T, status int, body string, got *captured) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got != nil {
			got.path = r.URL.Path
			got.token = r.PostForm.Get("token")
			if err := json.Unmarshal([]byte(r.PostForm.Get("data")), &got.data); err != nil {
				t.Errorf("decode data: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newClient(t *testing.T, baseURL string, cfg Config) *Client {
	t.Helper()

	cfg.BaseURL = baseURL
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

type counterID struct{ n int64 }

func (c *counterID) Generate() int64 { return atomic.AddInt64(&c.n, 1) }

func TestNewRejectsBadURL(t *testing.T) {
	if _, err := New(Config{BaseURL: "not a url"}); err == nil {
		t.Fatalf("expected error for bad url")
	}
}

func TestRunRequestPostsFormAndDecodesEnvelope(t *testing.T) {
	got := &captured{}
	srv := newServer(t, http.StatusOK, `{"Status":0,"Message":"","Value":{"CaObjectId":7}}`, got)

	ids := &counterID{}
	c, err := New(Config{BaseURL: srv.URL + "/cityworks/", Token: "tok"}, WithRequestID(ids))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	env, err := c.RunRequest(context.Background(), "Pll/Case/Create", map[string]any{"CaseTypeId": 1})
	if err != nil {
		t.Fatalf("RunRequest: %v", err)
	}

	if got.path != "/cityworks/Services/Pll/Case/Create" {
		t.Fatalf("unexpected path: %s", got.path)
	}
	if got.token != "tok" {
		t.Fatalf("unexpected token: %q", got.token)
	}
	if got.data["CaseTypeId"] != float64(1) {
		t.Fatalf("unexpected data: %#v", got.data)
	}
	if string(env.Value) != `{"CaObjectId":7}` {
		t.Fatalf("unexpected value: %s", env.Value)
	}
	if ids.n != 1 {
		t.Fatalf("expected one request id, got %d", ids.n)
	}
}

func TestRunRequestNilPayloadSendsEmptyObject(t *testing.T) {
	got := &captured{}
	srv := newServer(t, http.StatusOK, `{"Status":0,"Value":[]}`, got)
	c := newClient(t, srv.URL, Config{})

	if _, err := c.RunRequest(context.Background(), "Pll/BusinessCase/All", nil); err != nil {
		t.Fatalf("RunRequest: %v", err)
	}
	if got.data == nil || len(got.data) != 0 {
		t.Fatalf("expected empty object, got %#v", got.data)
	}
	if got.token != "" {
		t.Fatalf("expected no token, got %q", got.token)
	}
}

func TestRunRequestServiceError(t *testing.T) {
	body := `{"Status":1,"Message":"Case not found","ErrorMessages":[{"MessageType":1,"Code":404,"Service":"Pll","Name":"NotFound","DebugDetails":"","DisplayText":"Case not found","InnerMessage":null}],"Value":null}`
	srv := newServer(t, http.StatusOK, body, nil)
	c := newClient(t, srv.URL, Config{})

	_, err := c.RunRequest(context.Background(), "Pll/CaseObject/ByIds", map[string]any{})

	var perr *pkgerror.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *pkgerror.Error, got %T", err)
	}
	if perr.Type() != pkgerror.TypeService || perr.Code() != 108 {
		t.Fatalf("unexpected type/code: %v/%d", perr.Type(), perr.Code())
	}
	if perr.Msg() != "Case not found" {
		t.Fatalf("unexpected msg: %q", perr.Msg())
	}
	msgs := perr.ServiceErrors()
	if len(msgs) != 1 || msgs[0].Code != 404 || msgs[0].DisplayText != "Case not found" || msgs[0].InnerMessage != nil {
		t.Fatalf("unexpected service errors: %#v", msgs)
	}
}

func TestRunRequestTransportErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   int
	}{
		{name: "http status", status: http.StatusInternalServerError, body: "boom", code: 105},
		{name: "bad envelope", status: http.StatusOK, body: "<html>", code: 107},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, tt.status, tt.body, nil)
			c := newClient(t, srv.URL, Config{})

			_, err := c.RunRequest(context.Background(), "Pll/Case/Create", nil)

			var perr *pkgerror.Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *pkgerror.Error, got %T", err)
			}
			if perr.Type() != pkgerror.TypeTransport || perr.Code() != tt.code {
				t.Fatalf("unexpected type/code: %v/%d", perr.Type(), perr.Code())
			}
		})
	}
}

func TestRunRequestUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newClient(t, url, Config{Timeout: time.Second})
	_, err := c.RunRequest(context.Background(), "Pll/Case/Create", nil)

	var perr *pkgerror.Error
	if !errors.As(err, &perr) || perr.Code() != 104 {
		t.Fatalf("expected code 104, got %v", err)
	}
}

func TestRunRequestRateLimitHonoursContext(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"Status":0,"Value":null}`, nil)
	c := newClient(t, srv.URL, Config{RateLimit: 0.001, Burst: 1})

	if _, err := c.RunRequest(context.Background(), "Pll/Case/Create", nil); err != nil {
		t.Fatalf("first call should use the burst token: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.RunRequest(ctx, "Pll/Case/Create", nil)

	var perr *pkgerror.Error
	if !errors.As(err, &perr) || perr.Code() != 103 {
		t.Fatalf("expected code 103, got %v", err)
	}
}

func TestAuthenticateStoresToken(t *testing.T) {
	got := &captured{}
	srv := newServer(t, http.StatusOK, `{"Status":0,"Value":{"Token":"session-1"}}`, got)
	c := newClient(t, srv.URL, Config{})

	if err := c.Authenticate(context.Background(), "user", "secret"); err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if c.Token() != "session-1" {
		t.Fatalf("unexpected token: %q", c.Token())
	}
	if got.path != "/Services/General/Authentication/Authenticate" {
		t.Fatalf("unexpected path: %s", got.path)
	}
	if got.data["LoginName"] != "user" || got.data["Password"] != "secret" {
		t.Fatalf("unexpected credentials payload: %#v", got.data)
	}
}

func TestAuthenticateWithoutToken(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"Status":0,"Value":{}}`, nil)
	c := newClient(t, srv.URL, Config{})

	err := c.Authenticate(context.Background(), "user", "secret")

	var perr *pkgerror.Error
	if !errors.As(err, &perr) || perr.Code() != 109 {
		t.Fatalf("expected code 109, got %v", err)
	}
}
