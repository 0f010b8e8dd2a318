package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/tasklog/internal/model"
)

type Type string

const (
	TypeOpen   Type = "open"
	TypeEdit   Type = "edit"
	TypeDelete Type = "delete"
	TypeDate   Type = "date"
	TypeGoto   Type = "goto"
	TypeExport Type = "export"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// DateArgs carries the day for open, date and goto.
type DateArgs struct {
	Date model.Date
}

type EventArgs struct {
	EventID string
}

type ExportArgs struct {
	Dir string
}

type Command struct {
	Type   Type
	Raw    string
	Date   *DateArgs
	Event  *EventArgs
	Export *ExportArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeOpen, TypeDate, TypeGoto:
		return parseDate(input, Type(head), args)
	case TypeEdit, TypeDelete:
		return parseEvent(input, Type(head), args)
	case TypeExport:
		return parseExport(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseDate(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a YYYY-MM-DD date", typ)}
	}
	date, err := model.ParseDate(args[0])
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s: bad date %q", typ, args[0])}
	}
	return Command{Type: typ, Raw: raw, Date: &DateArgs{Date: date}}, nil
}

func parseEvent(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires an event id", typ)}
	}
	return Command{Type: typ, Raw: raw, Event: &EventArgs{EventID: args[0]}}, nil
}

func parseExport(raw string, args []string) (Command, error) {
	dir := ""
	if len(args) > 0 {
		dir = strings.Join(args, " ")
	}
	return Command{Type: TypeExport, Raw: raw, Export: &ExportArgs{Dir: dir}}, nil
}
