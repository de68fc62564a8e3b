package database

import (
	"net/url"
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	cfg := Config{
		Host: "localhost", Port: "5432",
		User: "taskbot", Password: "secret",
		Name: "taskbot", SSLMode: "disable",
	}
	dsn := cfg.DSN()
	for _, want := range []string{"user=taskbot", "password=secret", "host=localhost", "port=5432", "dbname=taskbot", "sslmode=disable"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn missing %q: %s", want, dsn)
		}
	}
}

func TestURLEscapesCredentials(t *testing.T) {
	cfg := Config{
		Host: "db.internal", Port: "5432",
		User: "task bot", Password: "p@ss/word#1",
		Name: "taskbot", SSLMode: "require",
	}

	parsed, err := url.Parse(cfg.URL())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Scheme != "postgres" {
		t.Fatalf("scheme = %q", parsed.Scheme)
	}
	if got := parsed.User.Username(); got != "task bot" {
		t.Fatalf("user = %q", got)
	}
	pw, ok := parsed.User.Password()
	if !ok || pw != "p@ss/word#1" {
		t.Fatalf("password = %q, %v", pw, ok)
	}
	if parsed.Host != "db.internal:5432" {
		t.Fatalf("host = %q", parsed.Host)
	}
	if parsed.Path != "/taskbot" {
		t.Fatalf("path = %q", parsed.Path)
	}
	if parsed.Query().Get("sslmode") != "require" {
		t.Fatalf("sslmode = %q", parsed.Query().Get("sslmode"))
	}
}
