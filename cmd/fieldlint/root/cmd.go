package root

import (
	"context"

	goose "github.com/quenbyako/roboslack/contrib/mongoose"
	"github.com/quenbyako/roboslack/contrib/onelog"

	"github.com/quenbyako/roboslack/internal/apps/fieldlint"
)

var _ goose.ActionFunc[Flags] = Cmd

// Cmd lints fields from stdin. Exit code is 1 if any field is invalid, 2 if
// input can't be read at all or stdin is a terminal.
func Cmd(ctx context.Context, appCtx goose.AppCtx[Flags]) int {
	log := onelog.Wrap(appCtx.Log)

	if !appCtx.IsPipeline {
		log.Error().Caller(1).Msg("Stdin is a terminal, pipe fields into fieldlint")

		return goose.ExitMisconfig
	}

	app, err := fieldlint.NewApp(
		fieldlint.WithLog(appCtx.Log),
		fieldlint.WithWidthHints(appCtx.Flags.WidthHints),
		fieldlint.WithIndent(appCtx.Flags.Indent),
	)
	if err != nil {
		log.Err(err).Caller(1).Msg("Can't configure linter")

		return goose.ExitMisconfig
	}

	report, err := app.Lint(ctx, appCtx.Stdin, appCtx.Stdout)
	switch {
	case err != nil:
		log.Err(err).Caller(1).Str("version", appCtx.Version.Version).Msg("Can't lint input")

		return goose.ExitMisconfig
	case !report.OK():
		return goose.ExitFailure
	default:
		return goose.ExitOK
	}
}
