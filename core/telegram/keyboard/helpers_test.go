package keyboard

import (
	"fmt"
	"testing"
)

func TestInlineButtonsNPerRow(t *testing.T) {
	var btns []InlineBtn
	for i := 0; i < 7; i++ {
		btns = append(btns, InlineBtn{
			Text:   fmt.Sprintf("task %d", i),
			Unique: "task",
			Data:   fmt.Sprintf("%d", i),
		})
	}

	markup := InlineButtonsNPerRow(btns, 3)
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

	// input order preserved across rows
	idx := 0
	for _, row := range rows {
		for _, b := range row {
			want := fmt.Sprintf("task %d", idx)
			if b.Text != want {
				t.Fatalf("button %d text = %q, want %q", idx, b.Text, want)
			}
			idx++
		}
	}
}

func TestInlineButtonsNPerRowSingleColumn(t *testing.T) {
	btns := []InlineBtn{{Text: "a", Unique: "x"}, {Text: "b", Unique: "x"}}
	markup := InlineButtonsNPerRow(btns, 0)
	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(markup.InlineKeyboard))
	}
	for _, row := range markup.InlineKeyboard {
		if len(row) != 1 {
			t.Fatalf("row width = %d, want 1", len(row))
		}
	}
}

func TestReplyButtons(t *testing.T) {
	markup := ReplyButtons(
		[]string{"/create_task"},
		[]string{"/completed_tasks", "/non_completed_tasks"},
	)
	if !markup.ResizeKeyboard {
		t.Fatal("expected resizable keyboard")
	}
	if len(markup.ReplyKeyboard) != 2 {
		t.Fatalf("rows = %d, want 2", len(markup.ReplyKeyboard))
	}
	if len(markup.ReplyKeyboard[1]) != 2 {
		t.Fatalf("second row width = %d, want 2", len(markup.ReplyKeyboard[1]))
	}
	if markup.ReplyKeyboard[0][0].Text != "/create_task" {
		t.Fatalf("unexpected first button: %q", markup.ReplyKeyboard[0][0].Text)
	}
}

func TestInlineButtonsRowsData(t *testing.T) {
	markup := InlineButtonsRows(
		[]InlineBtn{{Text: "Delete", Unique: "delete_task", Data: "42"}},
	)
	btn := markup.InlineKeyboard[0][0]
	if btn.Unique != "delete_task" {
		t.Fatalf("unique = %q, want delete_task", btn.Unique)
	}
	if btn.Data != "42" {
		t.Fatalf("data = %q, want 42", btn.Data)
	}
}
