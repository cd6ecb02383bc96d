package kernel

import (
	"context"
	"fmt"
	baseHttp "net/http"
	"time"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/auth"
	"github.com/carmegar/blogpage/pkg/llogs"
	"github.com/carmegar/blogpage/pkg/middleware"
	"github.com/carmegar/blogpage/pkg/portal"
	"github.com/carmegar/blogpage/pkg/sitemap"
	"github.com/carmegar/blogpage/pkg/uploader"
)

const tokenTTL = 24 * time.Hour

type App struct {
	router    *Router
	sentry    *portal.Sentry
	logs      llogs.Driver
	validator *portal.Validator
	env       *env.Environment
	db        *database.Connection
	scheduler *sitemap.Scheduler
}

func MakeApp(environment *env.Environment, validator *portal.Validator) (*App, error) {
	jwtHandler, err := auth.MakeJWTHandler(
		[]byte(environment.App.MasterKey), tokenTTL,
	)

	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create a jwt handler: %w", err)
	}

	db := MakeDbConnection(environment)

	users := &repository.Users{DB: db}
	categories := &repository.Categories{DB: db}
	tags := &repository.Tags{DB: db}
	posts := &repository.Posts{DB: db, Categories: categories, Tags: tags}

	media, err := uploader.New(context.Background(), environment.Storage)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the uploader: %w", err)
	}

	generator := sitemap.NewGenerator(environment.Site, posts, categories)

	scheduler, err := sitemap.NewScheduler(environment, generator)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create the sitemap scheduler: %w", err)
	}

	app := App{
		env:       environment,
		validator: validator,
		logs:      MakeLogs(environment),
		sentry:    MakeSentry(environment),
		db:        db,
		scheduler: scheduler,
	}

	router := Router{
		Env:            environment,
		Db:             db,
		Mux:            baseHttp.NewServeMux(),
		JWT:            jwtHandler,
		Users:          users,
		CategoriesRepo: categories,
		TagsRepo:       tags,
		PostsRepo:      posts,
		Uploader:       media,
		SitemapGen:     generator,
		Pipeline: middleware.Pipeline{
			Env:    environment,
			Auth:   middleware.MakeAuthMiddleware(jwtHandler, users),
			Public: middleware.MakePublicMiddleware(environment.App.IsProduction()),
		},
	}

	app.SetRouter(router)

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Ping()
	router.Health()
	router.Metrics()
	router.Sitemap()
	router.Auth()
	router.Posts()
	router.Categories()
	router.Tags()
	router.Uploads()
}

// StartSitemap launches the background sitemap refresh; it returns once the
// cron loop is running.
func (a *App) StartSitemap(ctx context.Context) error {
	return a.scheduler.Start(ctx)
}
