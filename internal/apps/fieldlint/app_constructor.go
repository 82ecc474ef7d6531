package fieldlint

import (
	"log/slog"

	"github.com/go-faster/errors"
)

type appParams struct {
	log        slog.Handler
	widthHints bool
	indent     int
}

type AppOpts func(*appParams)

// WithLog sets handler for lint events. Without it events are dropped.
func WithLog(h slog.Handler) AppOpts {
	return func(p *appParams) { p.log = h }
}

// WithWidthHints enables hints for short fields that are too wide to be
// rendered side-by-side.
func WithWidthHints(enabled bool) AppOpts {
	return func(p *appParams) { p.widthHints = enabled }
}

// WithIndent pretty-prints output with given amount of spaces per level.
func WithIndent(spaces int) AppOpts {
	return func(p *appParams) { p.indent = spaces }
}

func (p *appParams) validate() error {
	if p.indent < 0 {
		return errors.Errorf("indent must be non-negative, got %d", p.indent)
	}

	return nil
}

func NewApp(opts ...AppOpts) (*App, error) {
	var p appParams
	for _, opt := range opts {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	var log LogCallbacks = NoOpLogCallbacks{}
	if p.log != nil {
		log = newLogCallbacks(p.log)
	}

	return &App{
		log:        log,
		widthHints: p.widthHints,
		indent:     p.indent,
	}, nil
}
