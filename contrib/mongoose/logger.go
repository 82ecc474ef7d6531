package goose

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

const (
	LevelTrace = slog.LevelDebug - 4
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
	LevelFatal = slog.LevelError + 4
	LevelPanic = slog.LevelError + 8
)

// Level is a slog.Level which also understands TRACE, FATAL and PANIC names
// when loaded from environment.
type Level slog.Level

var _ slog.Leveler = Level(0)

func (l Level) Level() slog.Level { return slog.Level(l) }
func (l Level) String() string    { return replaceLevel(slog.Level(l)) }

func (l Level) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := parseLogLevel(string(text))
	if err != nil {
		return err
	}

	*l = Level(parsed)

	return nil
}

func defaultLogger(w io.Writer, level slog.Leveler) slog.Handler {
	opts := slog.HandlerOptions{
		AddSource: true,
		Level:     level,
		ReplaceAttr: multiReplacer(map[string]replacer{
			slog.SourceKey: sourceReplacer,
			slog.LevelKey:  levelReplacer,
		}),
	}

	return slog.NewJSONHandler(w, &opts)
}

type replacer = func(groups []string, a slog.Attr) slog.Attr

func multiReplacer(replacers map[string]replacer) replacer {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return a
		}

		if replacer, ok := replacers[a.Key]; ok {
			return replacer(groups, a)
		}

		return a
	}
}

// sourceReplacer keeps only package directory and file name. Records without
// caller lose the attribute.
func sourceReplacer(_ []string, a slog.Attr) slog.Attr {
	source, ok := a.Value.Any().(*slog.Source)
	if !ok {
		return a
	}
	if source == nil || source.File == "" {
		return slog.Attr{}
	}

	file := filepath.Join(filepath.Base(filepath.Dir(source.File)), filepath.Base(source.File))

	return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.ToSlash(file), source.Line))
}

func levelReplacer(_ []string, a slog.Attr) slog.Attr {
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}

	return slog.String(slog.LevelKey, replaceLevel(level))
}

func replaceLevel(l slog.Level) string {
	str := func(base string, val slog.Level) string {
		if val == 0 {
			return base
		}

		return fmt.Sprintf("%s%+d", base, val)
	}

	switch {
	case l <= LevelTrace:
		return str("TRACE", l-LevelTrace)
	case l <= LevelDebug:
		return str("DEBUG", l-LevelDebug)
	case l <= LevelInfo:
		return str("INFO", l-LevelInfo)
	case l <= LevelWarn:
		return str("WARN", l-LevelWarn)
	case l <= LevelError:
		return str("ERROR", l-LevelError)
	case l <= LevelFatal:
		return str("FATAL", l-LevelFatal)
	default:
		return str("PANIC", l-LevelPanic)
	}
}

func parseLogLevel(s string) (l slog.Level, err error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "FATAL":
		return LevelFatal, nil
	case "PANIC":
		return LevelPanic, nil
	default:
		return l, l.UnmarshalText([]byte(s))
	}
}
