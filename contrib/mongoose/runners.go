package goose

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/caarlos0/env/v11"
)

// Exit codes returned by Run itself. Actions are free to return their own.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitMisconfig = 2
)

type AppCtx[T any] struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Log        slog.Handler
	Flags      T
	Version    Version
	IsPipeline bool
}

type ActionFunc[T any] func(ctx context.Context, appCtx AppCtx[T]) int

type FlagDef interface {
	CustomMappers() map[reflect.Type]env.ParserFunc

	// required environments. Use Level for the field to accept TRACE, FATAL
	// and PANIC names.
	GetLogLevel() slog.Level
}

// Run loads flags of the action from environment and calls it with streams
// taken from the context (see BuildContext).
func Run[T FlagDef](action ActionFunc[T]) func(context.Context, []string) int {
	return func(ctx context.Context, _ []string) int {
		pipes := pipelineFromContext(ctx)

		flags, effective, err := ParseFlags[T](environFromContext(ctx))
		if err != nil {
			fmt.Fprintf(pipes.stderr, "parsing flags from environment: %v\n", err)
			return ExitMisconfig
		}

		log := defaultLogger(pipes.stderr, flags.GetLogLevel())
		newLogCallbacks(log).EffectiveEnvironment(effective)

		version, _ := VersionFromContext(ctx)
		return action(ctx, AppCtx[T]{
			IsPipeline: pipes.isPipeline,
			Stdin:      pipes.stdin,
			Stdout:     pipes.stdout,
			Log:        log,
			Flags:      flags,
			Version:    version,
		})
	}
}

// ParseFlags fills T from environ. Second value holds every variable that
// was applied, defaults included.
func ParseFlags[T FlagDef](environ map[string]string) (flags T, effective map[string]string, err error) {
	effective = make(map[string]string)
	if err := env.ParseWithOptions(&flags, env.Options{
		TagName:             "env",
		PrefixTagName:       "prefix",
		DefaultValueTagName: "default",
		RequiredIfNoDef:     true,
		Environment:         environ,
		FuncMap:             flags.CustomMappers(),
		OnSet: func(tag string, value any, _ bool) {
			effective[tag] = fmt.Sprint(value)
		},
	}); err != nil {
		return flags, nil, err
	}

	return flags, effective, nil
}

type ctxEnvironKey struct{}

// WithEnviron replaces process environment for Run. Mostly for tests.
func WithEnviron(ctx context.Context, environ map[string]string) context.Context {
	if environ == nil {
		environ = map[string]string{}
	}

	return context.WithValue(ctx, ctxEnvironKey{}, environ)
}

func environFromContext(ctx context.Context) map[string]string {
	if e, ok := ctx.Value(ctxEnvironKey{}).(map[string]string); ok {
		return e
	}

	return env.ToMap(os.Environ())
}
