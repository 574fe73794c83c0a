package app

import (
	"context"
	"net/http"

	"github.com/dustinpezley/cityworks/internal/pkg/pkgconfig"
	"github.com/dustinpezley/cityworks/internal/pkg/pkglog"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgrouter"
	"github.com/dustinpezley/cityworks/internal/pkg/pkgroutine"
	"github.com/dustinpezley/cityworks/internal/pkg/pkguid"
	"github.com/dustinpezley/cityworks/internal/pll"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// modules
	pll *pll.Module

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
