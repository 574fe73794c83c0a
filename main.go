package main

import (
	"context"
	"time"

	"github.com/dustinpezley/cityworks/internal/app"
)

const shutdownTimeout = 15 * time.Second

func main() {
	application := app.New()
	<-application.Start()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	application.Stop(ctx)
}
