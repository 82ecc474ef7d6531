// Package preconditions contains argument checks shared by message
// components.
package preconditions

import (
	"fmt"
	"regexp"

	"github.com/go-faster/errors"
)

var ErrContainsMarkdown = errors.New("markdown is not allowed")

// MarkdownError reports a markdown construct found in a plain-text field.
type MarkdownError struct {
	Field     string
	Content   string
	Construct string
}

var _ error = (*MarkdownError)(nil)

func (e *MarkdownError) Error() string {
	return fmt.Sprintf("%s must not contain markdown (%s): %q", e.Field, e.Construct, e.Content)
}

func (e *MarkdownError) Is(target error) bool { return target == ErrContainsMarkdown }

type markdownRule struct {
	name string
	re   *regexp.Regexp
}

// emphasis markers count only when they hug non-space text and are not glued
// to a word on the outside: "2 * 3 * 4" and "snake_case_name" are fine.
func emphasis(marker string) *regexp.Regexp {
	m := regexp.QuoteMeta(marker)
	return regexp.MustCompile(`(?:^|[^\w` + m + `])` + m + `[^\s` + m + `](?:[^` + m + `\n]*[^\s` + m + `])?` + m + `(?:[^\w` + m + `]|$)`)
}

//nolint:gochecknoglobals // compiled once
var markdownRules = []markdownRule{
	{name: "code block", re: regexp.MustCompile("```")},
	{name: "inline code", re: regexp.MustCompile("`[^`\n]+`")},
	{name: "bold", re: emphasis("*")},
	{name: "italic", re: emphasis("_")},
	{name: "strikethrough", re: emphasis("~")},
	{name: "link", re: regexp.MustCompile(`<[^<>|\s]+\|[^<>]+>`)},
	{name: "link", re: regexp.MustCompile(`<(?i:https?|mailto):[^<>\s]+>`)},
}

// CheckDoesNotContainMarkdown returns *MarkdownError when content carries any
// formatting the chat platform would render.
func CheckDoesNotContainMarkdown(fieldName, content string) error {
	if construct, ok := FindMarkdown(content); ok {
		return &MarkdownError{
			Field:     fieldName,
			Content:   content,
			Construct: construct,
		}
	}

	return nil
}

// FindMarkdown returns the name of the first markdown construct found in s.
func FindMarkdown(s string) (construct string, found bool) {
	for _, rule := range markdownRules {
		if rule.re.MatchString(s) {
			return rule.name, true
		}
	}

	return "", false
}
