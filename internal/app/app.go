package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/taskbot/core/bootstrap"
	"github.com/m3rciful/taskbot/core/telegram"
	"github.com/m3rciful/taskbot/core/telegram/router"
	"github.com/m3rciful/taskbot/core/telegram/state"
	"github.com/m3rciful/taskbot/internal/bot"
	"github.com/m3rciful/taskbot/internal/repository"
	"github.com/m3rciful/taskbot/internal/service"
)

// App holds the assembled application: infrastructure, services and the
// wired Telegram registry.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	registry *telegram.Registry
	fsm      state.Manager
}

// New bootstraps the infrastructure (logger, database, migrations) and
// wires the handler set onto a fresh registry.
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config provided")
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   &cfg.Core,
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	userRepo := repository.NewUserRepository(res.DB)
	taskRepo := repository.NewTaskRepository(res.DB)

	users := service.NewUserService(userRepo)
	tasks := service.NewTaskService(userRepo, taskRepo)

	fsm := state.NewMemoryManager(state.DefaultTTL)

	handlers := bot.NewHandlers(users, tasks, fsm)
	reg := telegram.NewRegistry()
	handlers.Wire(reg)

	return &App{
		cfg:      cfg,
		db:       res.DB,
		registry: reg,
		fsm:      fsm,
	}, nil
}

// Run starts the Telegram bot and blocks until ctx is done.
func (a *App) Run(ctx context.Context) error {
	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		AdminID: a.cfg.Core.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.fsm, a.registry, router.TextOptions{})...)

	return telegram.RunTelegram(ctx, telegram.RunOptions{
		Config:      &a.cfg.Core,
		Registry:    a.registry,
		Middlewares: telegram.DefaultMiddlewares(&a.cfg.Core, nil),
		Routes:      routes,
	})
}

// Close releases infrastructure owned by the app.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
