// Package fieldlint checks attachment fields offline: it decodes fields
// through the same validating path the message builder uses and prints the
// survivors in canonical wire form.
package fieldlint

import (
	"context"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/quenbyako/roboslack/internal/domains/attachments/components"
)

var ErrUnsupportedInput = errors.New("input must be a field object or an array of field objects")

type App struct {
	log        LogCallbacks
	widthHints bool
	indent     int
}

// Problem is an element of input which can't be decoded into a field.
type Problem struct {
	Index int
	Err   error
}

type Report struct {
	Total    int
	Valid    int
	Invalid  int
	Hints    int
	Problems []Problem
}

// OK is true when every input element is a valid field.
func (r Report) OK() bool { return r.Invalid == 0 }

// Lint reads single JSON value from r, which is either a field object or an
// array of them. Anything after that value makes the whole input malformed.
// Every element is checked on its own; valid fields are written to w as a
// JSON array, problems are reported and logged.
//
// Returned error means that the input can't be processed at all.
func (a *App) Lint(ctx context.Context, r io.Reader, w io.Writer) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, errors.Wrap(err, "read input")
	}

	// a second top-level value would otherwise be dropped without a report
	if !jx.Valid(data) {
		return Report{}, errors.Wrap(components.ErrMalformedJSON, "read input")
	}

	items, err := splitInput(jx.DecodeBytes(data))
	if err != nil {
		return Report{}, err
	}

	report := Report{Total: len(items)}
	fields := make([]components.Field, 0, len(items))

	for i, raw := range items {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		f, err := components.DecodeField(raw)
		if err != nil {
			report.Invalid++
			report.Problems = append(report.Problems, Problem{Index: i, Err: err})
			a.log.FieldRejected(ctx, i, err)

			continue
		}

		report.Valid++
		fields = append(fields, f)

		if a.widthHints && f.IsShort() && !components.SuggestShort(f.Value()) {
			report.Hints++
			a.log.FieldTooWide(ctx, i, f.Title(), components.DisplayColumns(f.Value()))
		}
	}

	if err := a.write(w, fields); err != nil {
		return report, err
	}

	a.log.LintFinished(ctx, report)

	return report, nil
}

func splitInput(d *jx.Decoder) ([]jx.Raw, error) {
	switch d.Next() {
	case jx.Object:
		raw, err := d.Raw()
		if err != nil {
			return nil, errors.Wrap(err, "read field")
		}

		return []jx.Raw{raw}, nil

	case jx.Array:
		var items []jx.Raw
		if err := d.Arr(func(d *jx.Decoder) error {
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			items = append(items, raw)

			return nil
		}); err != nil {
			return nil, errors.Wrap(err, "read fields")
		}

		return items, nil

	default:
		return nil, ErrUnsupportedInput
	}
}

func (a *App) write(w io.Writer, fields []components.Field) error {
	e := jx.Encoder{}
	e.SetIdent(a.indent)

	e.ArrStart()
	for _, f := range fields {
		f.Encode(&e)
	}
	e.ArrEnd()

	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}
