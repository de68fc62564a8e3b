package bot

import (
	"errors"
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/taskbot/core/telegram/callbacks"
	"github.com/m3rciful/taskbot/core/telegram/helpers"
	"github.com/m3rciful/taskbot/internal/model"
)

// taskFromPayload resolves the task addressed by an inline button press.
func (h *Handlers) taskFromPayload(c tele.Context) (*model.Task, error) {
	taskID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return nil, model.ErrTaskNotFound
	}
	ctx := helpers.BuildContext(c)
	return h.tasks.GetTask(ctx, c.Sender().ID, taskID)
}

// OnTask shows the manage menu for the tapped task.
func (h *Handlers) OnTask(c tele.Context) error {
	task, err := h.taskFromPayload(c)
	if err != nil {
		if errors.Is(err, model.ErrTaskNotFound) || errors.Is(err, model.ErrUserNotFound) {
			return helpers.Send(c, textTaskNotFound)
		}
		return err
	}
	return helpers.Send(c, fmt.Sprintf(textManageTask, task.Title), TaskActions(task.ID))
}

// OnTaskDescription replies with the tapped task's description.
func (h *Handlers) OnTaskDescription(c tele.Context) error {
	task, err := h.taskFromPayload(c)
	if err != nil {
		if errors.Is(err, model.ErrTaskNotFound) || errors.Is(err, model.ErrUserNotFound) {
			return helpers.Send(c, textTaskNotFound)
		}
		return err
	}
	text := task.DescriptionText()
	if text == "" {
		text = textNoDescription
	}
	return helpers.Send(c, text, TaskActions(task.ID))
}

// OnUpdateTaskStatus marks the tapped task as done.
func (h *Handlers) OnUpdateTaskStatus(c tele.Context) error {
	taskID, err := callbacks.PayloadInt64(c)
	if err != nil {
		return helpers.Send(c, textTaskNotFound)
	}
	ctx := helpers.BuildContext(c)
	task, err := h.tasks.CompleteTask(ctx, c.Sender().ID, taskID)
	if err != nil {
		if errors.Is(err, model.ErrTaskNotFound) || errors.Is(err, model.ErrUserNotFound) {
			return helpers.Send(c, textTaskNotFound)
		}
		return err
	}
	return helpers.Send(c, fmt.Sprintf(textTaskDone, task.Title), MainInline())
}

// OnDeleteTask removes the tapped task.
func (h *Handlers) OnDeleteTask(c tele.Context) error {
	task, err := h.taskFromPayload(c)
	if err != nil {
		if errors.Is(err, model.ErrTaskNotFound) || errors.Is(err, model.ErrUserNotFound) {
			return helpers.Send(c, textTaskNotFound)
		}
		return err
	}
	ctx := helpers.BuildContext(c)
	if err := h.tasks.DeleteTask(ctx, c.Sender().ID, task.ID); err != nil {
		if errors.Is(err, model.ErrTaskNotFound) {
			return helpers.Send(c, textTaskNotFound)
		}
		return err
	}
	return helpers.Send(c, fmt.Sprintf(textTaskDeleted, task.Title), MainInline())
}
