package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/open 2026-01-05", TypeOpen},
		{"edit task-1", TypeEdit},
		{"/delete 7", TypeDelete},
		{"date 2026-01-06", TypeDate},
		{"/GOTO 2026-02-01", TypeGoto},
		{"/export", TypeExport},
		{"export out/dir", TypeExport},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("/open 2026-01-05")
	if err != nil || cmd.Date == nil || cmd.Date.Date != "2026-01-05" {
		t.Fatalf("unexpected open parse: %+v (%v)", cmd, err)
	}
	cmd, err = Parse("/edit task-9")
	if err != nil || cmd.Event == nil || cmd.Event.EventID != "task-9" {
		t.Fatalf("unexpected edit parse: %+v (%v)", cmd, err)
	}
	cmd, err = Parse("/export ")
	if err != nil || cmd.Export == nil || cmd.Export.Dir != "" {
		t.Fatalf("unexpected export parse: %+v (%v)", cmd, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		code ErrorCode
	}{
		{"", ErrCodeEmptyInput},
		{"/", ErrCodeEmptyInput},
		{"/unknown do x", ErrCodeUnknownCommand},
		{"/open", ErrCodeInvalidArgument},
		{"/open 05/01/2026", ErrCodeInvalidArgument},
		{"/edit", ErrCodeInvalidArgument},
		{"/delete a b", ErrCodeInvalidArgument},
	}
	for _, tc := range cases {
		_, err := Parse(tc.in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != tc.code {
			t.Fatalf("parse %q: expected %s, got %v", tc.in, tc.code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/delete task-3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Delete: func(a EventArgs) (Result, error) {
			called = true
			if a.EventID != "task-3" {
				t.Fatalf("unexpected event id: %q", a.EventID)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("goto 2026-01-05")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}

func TestExecuteMissingArguments(t *testing.T) {
	_, err := Execute(Command{Type: TypeOpen}, Handlers{Open: func(DateArgs) (Result, error) { return Result{}, nil }})
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}
