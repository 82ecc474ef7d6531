package root

import (
	"log/slog"
	"reflect"

	"github.com/caarlos0/env/v11"

	goose "github.com/quenbyako/roboslack/contrib/mongoose"
)

type Flags struct {
	LogLevel   goose.Level `env:"FIELDLINT_LOG_LEVEL"   default:"info"`
	WidthHints bool        `env:"FIELDLINT_WIDTH_HINTS" default:"false"`
	Indent     int         `env:"FIELDLINT_INDENT"      default:"0"`
}

func (f Flags) CustomMappers() map[reflect.Type]env.ParserFunc {
	return nil
}

func (f Flags) GetLogLevel() slog.Level { return f.LogLevel.Level() }

var _ goose.FlagDef = (*Flags)(nil)
