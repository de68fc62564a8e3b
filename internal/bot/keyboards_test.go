package bot

import (
	"fmt"
	"testing"

	"github.com/m3rciful/taskbot/internal/model"
)

func TestTaskGrid(t *testing.T) {
	var tasks []model.Task
	for i := 1; i <= 7; i++ {
		tasks = append(tasks, model.Task{ID: int64(i), Title: fmt.Sprintf("task %d", i)})
	}

	markup := TaskGrid(tasks)
	rows := markup.InlineKeyboard
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	widths := []int{3, 3, 1}
	for i, want := range widths {
		if len(rows[i]) != want {
			t.Fatalf("row %d width = %d, want %d", i, len(rows[i]), want)
		}
	}

	idx := 0
	for _, row := range rows {
		for _, b := range row {
			idx++
			if b.Unique != cbTask {
				t.Fatalf("unique = %q, want %q", b.Unique, cbTask)
			}
			if b.Data != fmt.Sprintf("%d", idx) {
				t.Fatalf("data = %q, want %d", b.Data, idx)
			}
			if b.Text != fmt.Sprintf("task %d", idx) {
				t.Fatalf("text = %q", b.Text)
			}
		}
	}
}

func TestTaskActions(t *testing.T) {
	markup := TaskActions(42)
	rows := markup.InlineKeyboard
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0].Unique != cbTaskDescription {
		t.Fatalf("row 0 unique = %q", rows[0][0].Unique)
	}
	if len(rows[1]) != 2 {
		t.Fatalf("row 1 width = %d, want 2", len(rows[1]))
	}
	for _, b := range []struct{ unique, data string }{
		{rows[0][0].Unique, rows[0][0].Data},
		{rows[1][0].Unique, rows[1][0].Data},
		{rows[1][1].Unique, rows[1][1].Data},
	} {
		if b.data != "42" {
			t.Fatalf("button %q payload = %q, want task id", b.unique, b.data)
		}
	}
	if rows[1][0].Unique != cbUpdateTaskStatus || rows[1][1].Unique != cbDeleteTask {
		t.Fatalf("row 1 uniques = %q, %q", rows[1][0].Unique, rows[1][1].Unique)
	}
}

func TestMainMenuLayout(t *testing.T) {
	markup := MainMenu()
	if len(markup.ReplyKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(markup.ReplyKeyboard))
	}
	if markup.ReplyKeyboard[0][0].Text != "/create_task" {
		t.Fatalf("first button = %q", markup.ReplyKeyboard[0][0].Text)
	}
}

func TestEmptyListInline(t *testing.T) {
	markup := EmptyListInline()
	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 1 {
		t.Fatalf("layout = %+v", markup.InlineKeyboard)
	}
	if markup.InlineKeyboard[0][0].Unique != cbCreateTask {
		t.Fatalf("unique = %q", markup.InlineKeyboard[0][0].Unique)
	}
}
