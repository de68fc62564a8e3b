package bot

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/taskbot/core/logger"
	"github.com/m3rciful/taskbot/core/telegram/helpers"
	"github.com/m3rciful/taskbot/core/telegram/state"
	"github.com/m3rciful/taskbot/internal/model"
	"github.com/m3rciful/taskbot/internal/service"
)

// Handlers bundles the user intents with their dependencies.
type Handlers struct {
	users *service.UserService
	tasks *service.TaskService
	fsm   state.Manager
	log   *slog.Logger
}

// NewHandlers wires the handler set over services and the session manager.
func NewHandlers(users *service.UserService, tasks *service.TaskService, fsm state.Manager) *Handlers {
	return &Handlers{
		users: users,
		tasks: tasks,
		fsm:   fsm,
		log:   logger.Component("bot"),
	}
}

// Start greets the user and branches on registration status.
func (h *Handlers) Start(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	user, err := h.users.GetByTelegramID(ctx, c.Sender().ID)
	switch {
	case err == nil:
		if err := helpers.Send(c, fmt.Sprintf(textWelcomeBack, user.Username), MainMenu()); err != nil {
			return err
		}
		return helpers.Send(c, textPickAction, MainInline())
	case errors.Is(err, model.ErrUserNotFound):
		return helpers.Send(c, textPleaseRegister, RegisterMenu())
	default:
		return err
	}
}

// Register begins the two-step registration conversation.
func (h *Handlers) Register(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	if _, err := h.users.GetByTelegramID(ctx, c.Sender().ID); err == nil {
		return helpers.Send(c, textAlreadyRegistered, MainMenu())
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	h.fsm.Clear(c.Sender().ID)
	h.fsm.SetState(c.Sender().ID, stateRegisterName)
	return helpers.Send(c, textAskName)
}

// CreateTask begins the two-step task creation conversation.
func (h *Handlers) CreateTask(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	if _, err := h.users.GetByTelegramID(ctx, c.Sender().ID); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return helpers.Send(c, textPleaseRegister, RegisterMenu())
		}
		return err
	}

	h.fsm.Clear(c.Sender().ID)
	h.fsm.SetState(c.Sender().ID, stateTaskTitle)
	return helpers.Send(c, textAskTitle)
}

// CompletedTasks lists the user's done tasks as a button grid.
func (h *Handlers) CompletedTasks(c tele.Context) error {
	return h.listTasks(c, true)
}

// NonCompletedTasks lists the user's pending tasks as a button grid.
func (h *Handlers) NonCompletedTasks(c tele.Context) error {
	return h.listTasks(c, false)
}

func (h *Handlers) listTasks(c tele.Context, done bool) error {
	ctx := helpers.BuildContext(c)
	tasks, err := h.tasks.ListTasks(ctx, c.Sender().ID, done)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return helpers.Send(c, textPleaseRegister, RegisterMenu())
		}
		return err
	}

	if len(tasks) == 0 {
		return helpers.Send(c, textNoTasks, EmptyListInline())
	}

	header := textNonCompletedHeader
	if done {
		header = textCompletedHeader
	}
	return helpers.Send(c, header, TaskGrid(tasks))
}

// Cancel aborts any conversation in progress.
func (h *Handlers) Cancel(c tele.Context) error {
	if !h.fsm.InProgress(c.Sender().ID) {
		return helpers.Send(c, textNothingToStop)
	}
	h.fsm.Clear(c.Sender().ID)
	return helpers.Send(c, textCanceled, MainMenu())
}

// Stats reports user and task totals. Registered admin-only and hidden.
func (h *Handlers) Stats(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	users, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	tasks, err := h.tasks.Count(ctx)
	if err != nil {
		return err
	}
	return helpers.Send(c, fmt.Sprintf("Users: %d\nTasks: %d", users, tasks))
}

// UnknownText handles free text outside any conversation. Text matching
// one of the user's task titles opens that task's manage menu; anything
// else gets the unknown-command reply.
func (h *Handlers) UnknownText(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	title := strings.TrimSpace(c.Text())
	if title != "" {
		task, err := h.tasks.FindTaskByTitle(ctx, c.Sender().ID, title)
		switch {
		case err == nil:
			return helpers.Send(c, fmt.Sprintf(textManageTask, task.Title), TaskActions(task.ID))
		case errors.Is(err, model.ErrTaskNotFound):
			// fall through to the generic reply
		case errors.Is(err, model.ErrUserNotFound):
			return helpers.Send(c, textPleaseRegister, RegisterMenu())
		default:
			return err
		}
	}
	return helpers.Send(c, textUnknown, MainMenu())
}
