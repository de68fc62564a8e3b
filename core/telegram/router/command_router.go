package router

import (
	"time"

	"github.com/m3rciful/taskbot/core/logger"
	tg "github.com/m3rciful/taskbot/core/telegram"
	"github.com/m3rciful/taskbot/core/telegram/middleware"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CommandRouteOptions configures how commands are wrapped and exposed.
type CommandRouteOptions struct {
	AdminID       int64
	OnAdminReject tele.HandlerFunc
}

// CommandRoutes prepares command handlers wrapped with shared middleware.
func CommandRoutes(reg *tg.Registry, opts CommandRouteOptions) []tg.Route {
	if reg == nil {
		return nil
	}

	adminOpts := middleware.AdminOptions{
		AdminID:  opts.AdminID,
		OnReject: opts.OnAdminReject,
	}

	routes := make([]tg.Route, 0, len(reg.Commands()))
	for cmd, def := range reg.Commands() {
		name := normalizeHandlerName(cmd)
		h := def.Handler
		if def.AdminOnly {
			h = middleware.AdminOnlyMiddleware(adminOpts)(h)
		}
		wrapped := func(inner tele.HandlerFunc, handlerName string) tele.HandlerFunc {
			return func(c tele.Context) error {
				return handleWithSummary(c, handlerName, time.Now(), func() error {
					return inner(c)
				})
			}
		}(h, name)
		wrapped = middleware.RecoverMiddleware(middleware.LoggerMiddleware(wrapped))
		routes = append(routes, tg.Route{
			Endpoint: cmd,
			Handler:  wrapped,
		})
	}

	logger.Component("tg.wire").Info("tg.wire",
		slog.String("event", "complete"),
		slog.Int("commands", len(reg.Commands())),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)

	return routes
}
