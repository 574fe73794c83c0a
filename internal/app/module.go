package app

import (
	"log/slog"
	"os"

	"github.com/dustinpezley/cityworks/internal/pll"
)

func (a *App) initModules() {
	if !a.config.GetBool("modules.pll.enabled") {
		slog.Warn("module pll is disabled, only health endpoints are served")
		return
	}

	mod, err := pll.New(pll.Dependency{
		Config:    a.config,
		Router:    a.router,
		Goroutine: a.goroutine,
		Context:   a.ctx,
		RequestID: a.snowflake,
	})
	if err != nil {
		slog.Error("failed to init module pll", "error", err)
		os.Exit(1)
	}

	a.pll = mod
}
