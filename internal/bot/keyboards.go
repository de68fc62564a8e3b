package bot

import (
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/taskbot/core/telegram/keyboard"
	"github.com/m3rciful/taskbot/internal/model"
)

// Callback keys understood by the dispatch layer.
const (
	cbCreateTask        = "create_task"
	cbCompletedTasks    = "completed_tasks"
	cbNonCompletedTasks = "non_completed_tasks"
	cbTask              = "task"
	cbTaskDescription   = "task_description"
	cbUpdateTaskStatus  = "update_task_status"
	cbDeleteTask        = "delete_task"
)

// taskGridWidth caps how many task buttons fit in one row.
const taskGridWidth = 3

// RegisterMenu is the reply keyboard shown to unregistered users.
func RegisterMenu() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{"/register"},
	)
}

// MainMenu is the reply keyboard shown to registered users.
func MainMenu() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{"/create_task"},
		[]string{"/completed_tasks", "/non_completed_tasks"},
	)
}

// MainInline mirrors the main menu as inline buttons attached to replies.
func MainInline() *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "Create task", Unique: cbCreateTask}},
		[]keyboard.InlineBtn{
			{Text: "Completed", Unique: cbCompletedTasks},
			{Text: "Pending", Unique: cbNonCompletedTasks},
		},
	)
}

// EmptyListInline offers only task creation, shown when a listing is empty.
func EmptyListInline() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Create task", Unique: cbCreateTask},
	})
}

// TaskActions builds the manage menu for one task. Buttons carry the
// task's id so actions stay unambiguous even with duplicate titles.
func TaskActions(taskID int64) *tele.ReplyMarkup {
	id := strconv.FormatInt(taskID, 10)
	return keyboard.InlineButtonsRows(
		[]keyboard.InlineBtn{{Text: "Description", Unique: cbTaskDescription, Data: id}},
		[]keyboard.InlineBtn{
			{Text: "Mark done", Unique: cbUpdateTaskStatus, Data: id},
			{Text: "Delete", Unique: cbDeleteTask, Data: id},
		},
	)
}

// TaskGrid arranges task buttons into rows of at most three, preserving
// input order. Each button carries the task id as its payload.
func TaskGrid(tasks []model.Task) *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(tasks))
	for _, t := range tasks {
		btns = append(btns, keyboard.InlineBtn{
			Text:   t.Title,
			Unique: cbTask,
			Data:   strconv.FormatInt(t.ID, 10),
		})
	}
	return keyboard.InlineButtonsNPerRow(btns, taskGridWidth)
}
