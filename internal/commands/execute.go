package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Open   func(DateArgs) (Result, error)
	Edit   func(EventArgs) (Result, error)
	Delete func(EventArgs) (Result, error)
	Date   func(DateArgs) (Result, error)
	Goto   func(DateArgs) (Result, error)
	Export func(ExportArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeOpen:
		return dispatch(cmd.Type, handlers.Open, cmd.Date)
	case TypeEdit:
		return dispatch(cmd.Type, handlers.Edit, cmd.Event)
	case TypeDelete:
		return dispatch(cmd.Type, handlers.Delete, cmd.Event)
	case TypeDate:
		return dispatch(cmd.Type, handlers.Date, cmd.Date)
	case TypeGoto:
		return dispatch(cmd.Type, handlers.Goto, cmd.Date)
	case TypeExport:
		return dispatch(cmd.Type, handlers.Export, cmd.Export)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func dispatch[A any](typ Type, fn func(A) (Result, error), args *A) (Result, error) {
	if fn == nil {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", typ)}
	}
	if args == nil {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s is missing arguments", typ)}
	}
	return fn(*args)
}
