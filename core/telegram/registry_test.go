package telegram

import (
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/taskbot/core/telegram/commands"
)

func noopHandler(tele.Context) error { return nil }

func TestRegisterCommandValidation(t *testing.T) {
	reg := NewRegistry()

	reg.RegisterCommand("start", commands.Command{Handler: noopHandler, Description: "no slash"})
	reg.RegisterCommand("/nodesc", commands.Command{Handler: noopHandler})
	reg.RegisterCommand("/nohandler", commands.Command{Description: "missing handler"})
	if len(reg.Commands()) != 0 {
		t.Fatalf("invalid registrations accepted: %d", len(reg.Commands()))
	}

	reg.RegisterCommand("/start", commands.Command{Handler: noopHandler, Description: "Start"})
	reg.RegisterCommand("/start", commands.Command{Handler: noopHandler, Description: "dup"})
	if len(reg.Commands()) != 1 {
		t.Fatalf("commands = %d, want 1", len(reg.Commands()))
	}
	if reg.Commands()["/start"].Description != "Start" {
		t.Fatal("duplicate registration must not overwrite the original")
	}
}

func TestLookupCommand(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/create_task", commands.Command{
		Handler:     noopHandler,
		Description: "Create a new task",
		Aliases:     []string{"new_task"},
	})

	key, _, ok := reg.LookupCommand("/create_task")
	if !ok || key != "/create_task" {
		t.Fatalf("lookup by name failed: %q %v", key, ok)
	}
	key, _, ok = reg.LookupCommand("create_task")
	if !ok || key != "/create_task" {
		t.Fatalf("lookup without slash failed: %q %v", key, ok)
	}
	key, _, ok = reg.LookupCommand("/new_task")
	if !ok || key != "/create_task" {
		t.Fatalf("lookup by alias failed: %q %v", key, ok)
	}
	if _, _, ok := reg.LookupCommand("/missing"); ok {
		t.Fatal("unknown command should not resolve")
	}
}

func TestListCommandsVisibility(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterCommand("/start", commands.Command{Handler: noopHandler, Description: "Start"})
	reg.RegisterCommand("/stats", commands.Command{Handler: noopHandler, Description: "Totals", AdminOnly: true, Hidden: true})

	visible := reg.ListCommands(true)
	if len(visible) != 1 || visible[0].Text != "/start" {
		t.Fatalf("visible = %+v, want only /start", visible)
	}
	all := reg.ListCommands(false)
	if len(all) != 2 {
		t.Fatalf("all = %d, want 2", len(all))
	}
}

func TestCallbackRegistration(t *testing.T) {
	reg := NewRegistry()

	if err := reg.RegisterCallback("delete_task", noopHandler); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.RegisterCallback("delete_task", noopHandler); err == nil {
		t.Fatal("duplicate callback registration should fail")
	}
	if err := reg.RegisterCallback("", noopHandler); err == nil {
		t.Fatal("empty key should fail")
	}

	if _, ok := reg.GetCallback("delete_task"); !ok {
		t.Fatal("registered callback not found")
	}
	if _, ok := reg.GetCallback("missing"); ok {
		t.Fatal("unknown callback should not be found")
	}

	keys := reg.ListCallbacks()
	if len(keys) != 1 || keys[0] != "delete_task" {
		t.Fatalf("keys = %v", keys)
	}
}
