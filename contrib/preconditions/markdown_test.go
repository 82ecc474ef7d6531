package preconditions_test

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"

	. "github.com/quenbyako/roboslack/contrib/preconditions"
)

func TestCheckDoesNotContainMarkdown(t *testing.T) {
	for _, tt := range []struct {
		name      string
		content   string
		construct string
	}{
		{name: "plain", content: "All systems operational"},
		{name: "empty", content: ""},
		{name: "multiplication", content: "2 * 3 * 4"},
		{name: "identifier", content: "snake_case_name"},
		{name: "tilde approx", content: "~5 minutes"},
		{name: "comparison", content: "x < y | z > w"},
		{name: "lonely backtick", content: "it`s"},
		{name: "bold", content: "*bold*", construct: "bold"},
		{name: "bold in sentence", content: "this is *very* important", construct: "bold"},
		{name: "italic", content: "_italic_", construct: "italic"},
		{name: "strike", content: "was ~wrong~ right", construct: "strikethrough"},
		{name: "inline code", content: "run `make test`", construct: "inline code"},
		{name: "code block", content: "```fmt.Println()```", construct: "code block"},
		{name: "labeled link", content: "see <https://example.com|docs>", construct: "link"},
		{name: "bare link", content: "<https://example.com>", construct: "link"},
		{name: "mail link", content: "<mailto:ops@example.com>", construct: "link"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDoesNotContainMarkdown("title", tt.content)
			if tt.construct == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrContainsMarkdown)

			var mdErr *MarkdownError
			require.True(t, errors.As(err, &mdErr))
			require.Equal(t, "title", mdErr.Field)
			require.Equal(t, tt.content, mdErr.Content)
			require.Equal(t, tt.construct, mdErr.Construct)
		})
	}
}

func TestMarkdownErrorMessage(t *testing.T) {
	err := CheckDoesNotContainMarkdown("text", "*x*")
	require.EqualError(t, err, `text must not contain markdown (bold): "*x*"`)
}
