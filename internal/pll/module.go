package pll

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgconfig"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgrouter"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgroutine"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgtransport"
	"github.com/dustinpezley/cityworks/internal/pkg/pkguid"
	"github.com/dustinpezley/cityworks/internal/pll/cases"
	"github.com/dustinpezley/cityworks/internal/pll/inbound"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependency struct {
	Config    pkgconfig.Config
	Goroutine *pkgroutine.Manager
	Router    *pkgrouter.Router
	Context   context.Context
	RequestID pkguid.NumberID

	// Transport overrides the client built from the "cityworks" config section.
	Transport cases.Runner
}

// Module is the wired PLL client. Case is shared by the gateway and any
// in-process caller; Async runs the same operations on the goroutine manager.
type Module struct {
	Case  *cases.Case
	Async *cases.Async
}

func New(dep Dependency) (*Module, error) {
	if dep.Context == nil {
		dep.Context = context.Background()
	}

	rt := dep.Transport
	if rt == nil {
		client, err := newTransport(dep)
		if err != nil {
			return nil, err
		}
		rt = client
	}

	cs := cases.New(rt)
	inbound.RegisterHTTPEndpoint(dep.Router, cs)
	dep.Router.Handle(http.MethodGet, "/metrics", promhttp.Handler())

	return &Module{
		Case:  cs,
		Async: cs.Async(dep.Goroutine),
	}, nil
}

func newTransport(dep Dependency) (*pkgtransport.Client, error) {
	if dep.Config == nil {
		return nil, errors.New("pll: config is required to build the transport")
	}

	var cfg pkgtransport.Config
	if err := dep.Config.Decode("cityworks", &cfg); err != nil {
		return nil, err
	}

	var opts []pkgtransport.Option
	if dep.RequestID != nil {
		opts = append(opts, pkgtransport.WithRequestID(dep.RequestID))
	}

	client, err := pkgtransport.New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.LoginName == "" {
		slog.InfoContext(dep.Context, "cityworks transport ready", "base_url", cfg.BaseURL, "token_set", cfg.Token != "")
		return client, nil
	}

	ctx := dep.Context
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if err := client.Authenticate(ctx, cfg.LoginName, cfg.Password); err != nil {
		return nil, err
	}
	slog.InfoContext(dep.Context, "cityworks transport authenticated", "base_url", cfg.BaseURL, "login_name", cfg.LoginName)

	if cfg.RenewEvery > 0 && dep.Goroutine != nil {
		dep.Goroutine.Go(dep.Context, func(ctx context.Context) error {
			renewToken(ctx, client, cfg)
			return nil
		})
	}

	return client, nil
}

// renewToken re-authenticates on every tick until ctx ends. A failed renewal
// keeps the previous token in place.
func renewToken(ctx context.Context, client *pkgtransport.Client, cfg pkgtransport.Config) {
	ticker := time.NewTicker(cfg.RenewEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		actx, cancel := ctx, context.CancelFunc(func() {})
		if cfg.Timeout > 0 {
			actx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		}
		err := client.Authenticate(actx, cfg.LoginName, cfg.Password)
		cancel()

		if err != nil {
			slog.WarnContext(ctx, "cityworks token renewal failed", "login_name", cfg.LoginName, "error", err)
			continue
		}
		slog.DebugContext(ctx, "cityworks token renewed", "login_name", cfg.LoginName)
	}
}
