package goose

import (
	"log/slog"

	"github.com/quenbyako/roboslack/contrib/onelog"
)

const (
	eventEffectiveEnvironment = "notify.effective_environment"
)

type LogCallbacks interface {
	EffectiveEnvironment(env map[string]string)
}

type logger struct {
	log onelog.Logger
}

var _ LogCallbacks = (*logger)(nil)

func newLogCallbacks(h slog.Handler) *logger {
	return &logger{log: onelog.Wrap(h)}
}

func (l *logger) EffectiveEnvironment(env map[string]string) {
	l.log.Debug().
		Str("event_type", eventEffectiveEnvironment).
		Any("context",
			map[string]any{
				"env": env,
			},
		).
		Msg("Parsed effective environment")
}
