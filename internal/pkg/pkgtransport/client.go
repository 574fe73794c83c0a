package pkgtransport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgerror"
	"github.com/dustinpezley/cityworks/internal/pkg/pkghttp"
	"github.com/dustinpezley/cityworks/internal/pkg/pkguid"
)

// PathAuthenticate is the endpoint that exchanges credentials for a token.
const PathAuthenticate = "General/Authentication/Authenticate"

const maxBodyBytes = 16 << 20

// Config configures a Client. It is decoded from the "cityworks" config section.
type Config struct {
	BaseURL   string        `mapstructure:"base_url" validate:"required,url"`
	Token     string        `mapstructure:"token"`
	LoginName string        `mapstructure:"login_name"`
	Password  string        `mapstructure:"password"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
	RateLimit float64       `mapstructure:"rate_limit" validate:"gte=0"` // requests per second, 0 disables
	Burst     int           `mapstructure:"burst" validate:"gte=0"`

	// RenewEvery re-authenticates LoginName on this interval; 0 keeps the
	// first token for the life of the process.
	RenewEvery time.Duration `mapstructure:"renew_every" validate:"gte=0"`
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client built from Config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRequestID tags every call with an ID from gen in the logs.
func WithRequestID(gen pkguid.NumberID) Option {
	return func(c *Client) { c.ids = gen }
}

// Client is the shared transport handle used by every resource group.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
	ids     pkguid.NumberID

	mu    sync.RWMutex
	token string
}

// New validates cfg and builds a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid cityworks base url %q", cfg.BaseURL)
	}

	c := &Client{
		base:  strings.TrimRight(u.String(), "/"),
		token: cfg.Token,
	}

	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = pkghttp.NewClient(pkghttp.WithClientTimeout(cfg.Timeout))
	}

	return c, nil
}

// SetToken installs a session token obtained elsewhere.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current session token, empty when unauthenticated.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Authenticate exchanges credentials for a session token and keeps it for
// subsequent calls.
func (c *Client) Authenticate(ctx context.Context, loginName, password string) error {
	env, err := c.RunRequest(ctx, PathAuthenticate, map[string]any{
		"LoginName": loginName,
		"Password":  password,
	})
	if err != nil {
		return err
	}

	var auth struct {
		Token string `json:"Token"`
	}
	if len(env.Value) > 0 {
		if err := json.Unmarshal(env.Value, &auth); err != nil {
			return pkgerror.Wrap(err, 110, "unable to decode authentication response", map[string]any{"path": PathAuthenticate})
		}
	}
	if auth.Token == "" {
		return pkgerror.NewService(109, "authentication response carried no token", env.ErrorMessages, map[string]any{"path": PathAuthenticate})
	}

	c.SetToken(auth.Token)

	return nil
}

// RunRequest posts payload to the service at path and returns the decoded
// envelope. A nil payload is sent as an empty object.
func (c *Client) RunRequest(ctx context.Context, path string, payload map[string]any) (*Envelope, error) {
	start := time.Now()
	log := slog.With("path", path)
	if c.ids != nil {
		log = log.With("request_id", c.ids.Generate())
	}

	env, err := c.do(ctx, path, payload)

	outcome := outcomeOK
	if err != nil {
		outcome = outcomeTransport
		var perr *pkgerror.Error
		if errors.As(err, &perr) && perr.Type() == pkgerror.TypeService {
			outcome = outcomeService
		}
	}
	dispatchTotal.WithLabelValues(path, outcome).Inc()
	dispatchDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())

	if err != nil {
		log.WarnContext(ctx, "cityworks request failed", "outcome", outcome, "latency_ms", time.Since(start).Milliseconds(), "error", err)
		return nil, err
	}

	log.DebugContext(ctx, "cityworks request done", "latency_ms", time.Since(start).Milliseconds())

	return env, nil
}

func (c *Client) do(ctx context.Context, path string, payload map[string]any) (*Envelope, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	info := map[string]any{"path": path}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerror.Wrap(err, 101, "unable to encode request payload", info)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, pkgerror.Wrap(err, 103, "rate limit wait aborted", info)
		}
	}

	form := url.Values{}
	form.Set("data", string(data))
	if token := c.Token(); token != "" {
		form.Set("token", token)
	}

	endpoint := c.base + "/Services/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, pkgerror.Wrap(err, 102, "unable to build request", info)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerror.Wrap(err, 104, "request to cityworks failed", info)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, pkgerror.Wrap(err, 106, "unable to read response body", info)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		info["http_status"] = resp.StatusCode
		return nil, pkgerror.Wrap(
			fmt.Errorf("unexpected http status %d", resp.StatusCode),
			105, "cityworks responded with an http error", info,
		)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, pkgerror.Wrap(err, 107, "unable to decode response envelope", info)
	}

	if env.Status != StatusOK {
		info["status"] = env.Status
		msg := env.Message
		if msg == "" {
			msg = "cityworks rejected the request"
		}
		return nil, pkgerror.NewService(108, msg, env.ErrorMessages, info)
	}

	return &env, nil
}
