package components_test

import (
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	"github.com/quenbyako/roboslack/contrib/preconditions"

	. "github.com/quenbyako/roboslack/internal/domains/attachments/components"
)

func TestNewFieldDefaultsToShort(t *testing.T) {
	for _, tt := range [][2]string{
		{"Status", "All systems operational"},
		{"Build", "#1024"},
		{"", ""},
		{"Owner", "snake_case_name"},
	} {
		f, err := NewField(tt[0], tt[1])
		require.NoError(t, err)
		require.True(t, f.Valid())
		require.Equal(t, tt[0], f.Title())
		require.Equal(t, tt[1], f.Value())
		require.True(t, f.IsShort())
	}
}

func TestFieldBuilder(t *testing.T) {
	f := must(NewFieldBuilder().
		Title("Description").
		Value("a rather long explanation that does not fit in half a row").
		Short(false).
		Build())

	require.Equal(t, "Description", f.Title())
	require.Equal(t, "a rather long explanation that does not fit in half a row", f.Value())
	require.False(t, f.IsShort())
}

func TestFieldBuilderLastWriteWins(t *testing.T) {
	f := must(NewFieldBuilder().
		Title("first").Title("second").
		Value("v").
		Short(false).Short(true).
		Build())

	require.Equal(t, "second", f.Title())
	require.True(t, f.IsShort())
}

func TestFieldBuilderMissingAttributes(t *testing.T) {
	for _, tt := range []struct {
		name    string
		builder *FieldBuilder
		missing []string
	}{
		{name: "no title", builder: NewFieldBuilder().Value("ok"), missing: []string{"title"}},
		{name: "no value", builder: NewFieldBuilder().Title("ok"), missing: []string{"value"}},
		{name: "nothing", builder: NewFieldBuilder().Short(false), missing: []string{"title", "value"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.builder.Build()
			require.ErrorIs(t, err, ErrMissingAttribute)
			require.Equal(t, Field{}, f)
			require.False(t, f.Valid())

			var missingErr *MissingAttributeError
			require.True(t, errors.As(err, &missingErr))
			require.Equal(t, tt.missing, missingErr.Attributes)
		})
	}
}

func TestFieldRejectsMarkdown(t *testing.T) {
	for _, md := range []string{
		"*bold*",
		"_italic_",
		"~strike~",
		"`code`",
		"```block```",
		"<https://example.com|link>",
	} {
		t.Run(md, func(t *testing.T) {
			_, err := NewFieldBuilder().Title(md).Value("ok").Build()
			requireMarkdownError(t, err, "title", md)

			_, err = NewFieldBuilder().Title("ok").Value(md).Build()
			requireMarkdownError(t, err, "text", md)

			_, err = NewField(md, md)
			requireMarkdownError(t, err, "title", md)
		})
	}
}

func TestZeroFieldIsNotConstructed(t *testing.T) {
	var f Field
	require.False(t, f.Valid())
	require.NoError(t, f.Validate())
	require.Empty(t, f.Title())
	require.Empty(t, f.Value())
	require.False(t, f.IsShort())
}

func TestSuggestShort(t *testing.T) {
	require.True(t, SuggestShort(""))
	require.True(t, SuggestShort("All systems operational"))
	require.True(t, SuggestShort(strings.Repeat("a", ShortValueColumns)))
	require.False(t, SuggestShort(strings.Repeat("a", ShortValueColumns+1)))

	// 20 wide runes already fill the row
	require.True(t, SuggestShort(strings.Repeat("漢", ShortValueColumns/2)))
	require.False(t, SuggestShort(strings.Repeat("漢", ShortValueColumns/2)+"a"))
	require.False(t, SuggestShort(strings.Repeat("Ａ", ShortValueColumns/2+1)))
}

func requireMarkdownError(t *testing.T, err error, field, content string) {
	t.Helper()

	require.ErrorIs(t, err, preconditions.ErrContainsMarkdown)

	var mdErr *preconditions.MarkdownError
	require.True(t, errors.As(err, &mdErr))
	require.Equal(t, field, mdErr.Field)
	require.Equal(t, content, mdErr.Content)
}

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}
