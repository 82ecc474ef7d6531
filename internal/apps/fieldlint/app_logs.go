package fieldlint

import (
	"context"
	"log/slog"

	"github.com/quenbyako/roboslack/contrib/onelog"
)

type LogCallbacks interface {
	FieldRejected(ctx context.Context, index int, err error)
	FieldTooWide(ctx context.Context, index int, title string, columns int)
	LintFinished(ctx context.Context, report Report)
}

type NoOpLogCallbacks struct{}

var _ LogCallbacks = NoOpLogCallbacks{}

func (NoOpLogCallbacks) FieldRejected(context.Context, int, error)      {}
func (NoOpLogCallbacks) FieldTooWide(context.Context, int, string, int) {}
func (NoOpLogCallbacks) LintFinished(context.Context, Report)           {}

const (
	eventFieldRejected = "fieldlint.field_rejected"
	eventFieldTooWide  = "fieldlint.field_too_wide"
	eventLintFinished  = "fieldlint.finished"
)

// callerSkip points log source to the App method which reported the event.
const callerSkip = 2

type logger struct {
	log onelog.Logger
}

var _ LogCallbacks = (*logger)(nil)

func newLogCallbacks(h slog.Handler) *logger {
	return &logger{log: onelog.Wrap(h)}
}

func (l *logger) FieldRejected(ctx context.Context, index int, err error) {
	l.log.Error().
		Ctx(ctx).
		Caller(callerSkip).
		Str("event_type", eventFieldRejected).
		Any("context",
			map[string]any{
				"index": index,
				"error": err.Error(),
			},
		).
		Msg("Field is not valid")
}

func (l *logger) FieldTooWide(ctx context.Context, index int, title string, columns int) {
	l.log.Warn().
		Ctx(ctx).
		Caller(callerSkip).
		Str("event_type", eventFieldTooWide).
		Any("context",
			map[string]any{
				"index":   index,
				"title":   title,
				"columns": columns,
			},
		).
		Msg("Short field is too wide to be displayed side-by-side")
}

func (l *logger) LintFinished(ctx context.Context, report Report) {
	ev := l.log.Info()
	if report.Invalid > 0 {
		ev = l.log.Warn()
	}

	ev.Ctx(ctx).
		Caller(callerSkip).
		Str("event_type", eventLintFinished).
		Any("context",
			map[string]any{
				"total":   report.Total,
				"valid":   report.Valid,
				"invalid": report.Invalid,
				"hints":   report.Hints,
			},
		).
		Msg("Lint finished")
}
