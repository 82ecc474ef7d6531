package onelog

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
)

type Logger interface {
	Debug() Event
	Info() Event
	Warn() Event
	Error() Event

	Err(err error) Event

	WithLevel(level slog.Level) Event
}

type logger struct {
	handler slog.Handler
}

var _ Logger = (*logger)(nil)

func Wrap(handler slog.Handler) Logger {
	return &logger{
		handler: handler,
	}
}

func (l *logger) Debug() Event { return l.WithLevel(slog.LevelDebug) }
func (l *logger) Info() Event  { return l.WithLevel(slog.LevelInfo) }
func (l *logger) Warn() Event  { return l.WithLevel(slog.LevelWarn) }
func (l *logger) Error() Event { return l.WithLevel(slog.LevelError) }

func (l *logger) Err(err error) Event { return l.Error().AnErr("error", err) }

func (l *logger) WithLevel(level slog.Level) Event {
	if l.handler == nil || !l.handler.Enabled(context.Background(), level) {
		return &event{handler: nil}
	}

	return &event{handler: l.handler, record: slog.Record{
		Level: level,
	}}
}

// Event is a single log record under construction. Nothing is written until
// Msg, Msgf or Send is called.
type Event interface {
	Enabled() bool
	Send()
	Msg(msg string)
	Msgf(format string, v ...any)

	AnErr(key string, err error) Event
	Any(key string, i any) Event
	Bool(key string, b bool) Event
	Caller(skip int) Event
	Ctx(ctx context.Context) Event
	Err(err error) Event
	Int(key string, i int) Event
	Str(key, val string) Event
}

type event struct {
	handler slog.Handler // if handler nil — means that event is NoOp

	ctx    context.Context
	record slog.Record
}

var _ Event = (*event)(nil)

func (e *event) Enabled() bool { return e.handler != nil }

func (e *event) Msg(msg string) {
	if e.handler == nil {
		return
	}

	e.record.Message = msg
	e.Send()
}

func (e *event) Msgf(format string, v ...any) {
	if e.handler == nil {
		return
	}

	e.record.Message = fmt.Sprintf(format, v...)
	e.Send()
}

func (e *event) Send() {
	if e.handler == nil {
		return
	}

	ctx := e.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	_ = e.handler.Handle(ctx, e.record)
}

func (e *event) AnErr(key string, err error) Event {
	if e.handler == nil {
		return e
	}

	errText := "<nil>"
	if err != nil {
		errText = err.Error()
	}
	e.record.AddAttrs(slog.String(key, errText))

	return e
}

func (e *event) Err(err error) Event { return e.AnErr("error", err) }

func (e *event) Any(key string, i any) Event {
	if e.handler == nil {
		return e
	}

	e.record.AddAttrs(slog.Any(key, i))
	return e
}

func (e *event) Bool(key string, b bool) Event {
	if e.handler == nil {
		return e
	}

	e.record.AddAttrs(slog.Bool(key, b))
	return e
}

func (e *event) Int(key string, i int) Event {
	if e.handler == nil {
		return e
	}

	e.record.AddAttrs(slog.Int(key, i))
	return e
}

func (e *event) Str(key, val string) Event {
	if e.handler == nil {
		return e
	}

	e.record.AddAttrs(slog.String(key, val))
	return e
}

func (e *event) Caller(skip int) Event {
	if e.handler == nil {
		return e
	}

	e.record.PC, _, _, _ = runtime.Caller(skip)
	return e
}

func (e *event) Ctx(ctx context.Context) Event {
	if e.handler == nil {
		return e
	}

	e.ctx = ctx
	return e
}
