package bot

import (
	"errors"
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/taskbot/core/telegram/helpers"
	"github.com/m3rciful/taskbot/core/telegram/state"
	"github.com/m3rciful/taskbot/internal/model"
)

// Conversation states. Each one waits for exactly one text reply.
const (
	stateRegisterName    state.State = "register:name"
	stateRegisterLogin   state.State = "register:login"
	stateTaskTitle       state.State = "task:title"
	stateTaskDescription state.State = "task:description"
)

// Temp data keys used between conversation steps.
const (
	tempName  = "name"
	tempTitle = "title"
)

// BindStates attaches the conversation step handlers to the session manager.
func (h *Handlers) BindStates() {
	h.fsm.Bind(stateRegisterName, h.onRegisterName)
	h.fsm.Bind(stateRegisterLogin, h.onRegisterLogin)
	h.fsm.Bind(stateTaskTitle, h.onTaskTitle)
	h.fsm.Bind(stateTaskDescription, h.onTaskDescription)
}

func (h *Handlers) onRegisterName(c tele.Context) error {
	name := strings.TrimSpace(c.Text())
	if name == "" {
		return helpers.Send(c, textAskName)
	}
	h.fsm.SetTemp(c.Sender().ID, tempName, name)
	h.fsm.SetState(c.Sender().ID, stateRegisterLogin)
	return helpers.Send(c, textAskLogin)
}

func (h *Handlers) onRegisterLogin(c tele.Context) error {
	login := strings.TrimSpace(c.Text())
	if login == "" {
		return helpers.Send(c, textAskLogin)
	}
	name, _ := h.fsm.GetTempString(c.Sender().ID, tempName)

	// The conversation ends here either way; a taken login requires a
	// fresh /register rather than a retry loop.
	h.fsm.Clear(c.Sender().ID)

	ctx := helpers.BuildContext(c)
	user, err := h.users.Register(ctx, c.Sender().ID, name, login)
	if err != nil {
		if errors.Is(err, model.ErrLoginTaken) {
			return helpers.Send(c, textLoginTaken, RegisterMenu())
		}
		return err
	}
	if err := helpers.Send(c, fmt.Sprintf(textRegistered, user.Username), MainMenu()); err != nil {
		return err
	}
	return helpers.Send(c, textPickAction, MainInline())
}

func (h *Handlers) onTaskTitle(c tele.Context) error {
	title := strings.TrimSpace(c.Text())
	if title == "" {
		return helpers.Send(c, textAskTitle)
	}
	h.fsm.SetTemp(c.Sender().ID, tempTitle, title)
	h.fsm.SetState(c.Sender().ID, stateTaskDescription)
	return helpers.Send(c, textAskDescription)
}

func (h *Handlers) onTaskDescription(c tele.Context) error {
	description := strings.TrimSpace(c.Text())
	title, _ := h.fsm.GetTempString(c.Sender().ID, tempTitle)
	h.fsm.Clear(c.Sender().ID)

	ctx := helpers.BuildContext(c)
	task, err := h.tasks.CreateTask(ctx, c.Sender().ID, title, description)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return helpers.Send(c, textPleaseRegister, RegisterMenu())
		}
		return err
	}
	return helpers.Send(c, fmt.Sprintf(textTaskCreated, task.Title), MainInline())
}
