package callbacks

import (
	"testing"

	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		unique  string
		payload string
	}{
		{"unique only", "\\fcreate_task", "create_task", ""},
		{"unique with payload", "\\ftask|42", "task", "42"},
		{"payload with pipe", "\\ftask|a|b", "task", "a|b"},
		{"no prefix", "delete_task|7", "delete_task", "7"},
		{"empty", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unique, payload := ParseCallbackData(&tele.Callback{Data: tc.data})
			if unique != tc.unique {
				t.Fatalf("unique = %q, want %q", unique, tc.unique)
			}
			if payload != tc.payload {
				t.Fatalf("payload = %q, want %q", payload, tc.payload)
			}
		})
	}
}

func TestParseCallbackDataNil(t *testing.T) {
	unique, payload := ParseCallbackData(nil)
	if unique != "" || payload != "" {
		t.Fatalf("nil callback: %q %q", unique, payload)
	}
}
