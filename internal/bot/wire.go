package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/taskbot/core/logger"
	"github.com/m3rciful/taskbot/core/telegram"
	"github.com/m3rciful/taskbot/core/telegram/commands"
	"github.com/m3rciful/taskbot/core/telegram/helpers"
)

// guard is the dispatch error boundary: a failed handler still produces
// a reply, and the error is logged instead of propagating to the poller.
func (h *Handlers) guard(name string, fn tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if err := fn(c); err != nil {
			ctx := helpers.BuildContext(c)
			logger.LogEvent(ctx, h.log, slog.LevelError, "handler.failed",
				slog.String("handler", name),
				slog.String("err", err.Error()),
			)
			return helpers.Send(c, textFailure, MainMenu())
		}
		return nil
	}
}

// Wire registers every command, callback and fallback on the registry
// and binds the conversation states.
func (h *Handlers) Wire(reg *telegram.Registry) {
	h.BindStates()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.guard("start", h.Start),
		Description: "Start the bot",
	})
	reg.RegisterCommand("/register", commands.Command{
		Handler:     h.guard("register", h.Register),
		Description: "Create an account",
	})
	reg.RegisterCommand("/create_task", commands.Command{
		Handler:     h.guard("create_task", h.CreateTask),
		Description: "Create a new task",
	})
	reg.RegisterCommand("/completed_tasks", commands.Command{
		Handler:     h.guard("completed_tasks", h.CompletedTasks),
		Description: "Show completed tasks",
	})
	reg.RegisterCommand("/non_completed_tasks", commands.Command{
		Handler:     h.guard("non_completed_tasks", h.NonCompletedTasks),
		Description: "Show pending tasks",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     h.guard("cancel", h.Cancel),
		Description: "Cancel the current conversation",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     h.guard("stats", h.Stats),
		Description: "Bot usage totals",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cbCreateTask, h.guard("cb.create_task", h.CreateTask))
	_ = reg.RegisterCallback(cbCompletedTasks, h.guard("cb.completed_tasks", h.CompletedTasks))
	_ = reg.RegisterCallback(cbNonCompletedTasks, h.guard("cb.non_completed_tasks", h.NonCompletedTasks))
	_ = reg.RegisterCallback(cbTask, h.guard("cb.task", h.OnTask))
	_ = reg.RegisterCallback(cbTaskDescription, h.guard("cb.task_description", h.OnTaskDescription))
	_ = reg.RegisterCallback(cbUpdateTaskStatus, h.guard("cb.update_task_status", h.OnUpdateTaskStatus))
	_ = reg.RegisterCallback(cbDeleteTask, h.guard("cb.delete_task", h.OnDeleteTask))

	reg.SetTextFallback(h.guard("text.fallback", h.UnknownText))
}
