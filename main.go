package main

import (
	"context"
	"log/slog"
	baseHttp "net/http"

	_ "github.com/lib/pq"

	"github.com/carmegar/blogpage/metal/kernel"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/portal"
)

func main() {
	validate := portal.GetDefaultValidator()

	secrets, err := kernel.Ignite("./.env", validate)
	if err != nil {
		slog.Error("could not load the environment", "error", err)
		panic(err)
	}

	app, err := kernel.MakeApp(secrets, validate)
	if err != nil {
		slog.Error("could not bootstrap the application", "error", err)
		panic(err)
	}

	defer app.CloseDB()
	defer app.CloseLogs()

	app.Boot()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err = app.StartSitemap(ctx); err != nil {
		slog.Error("could not start the sitemap scheduler", "error", err)
		panic(err)
	}

	addr := app.GetEnv().Network.GetHostURL()

	server := &baseHttp.Server{
		Addr:    addr,
		Handler: app.Handler(),
	}

	if err = endpoint.RunServer(addr, server); err != nil {
		slog.Error("server stopped with an error", "error", err)
		panic(err)
	}
}
