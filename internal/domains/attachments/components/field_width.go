package components

import (
	"golang.org/x/text/width"
)

// ShortValueColumns is the widest value, in display columns, that still
// renders nicely next to another field.
const ShortValueColumns = 40

// SuggestShort reports whether value fits into ShortValueColumns. Wide and
// fullwidth runes (CJK, fullwidth forms) take two columns.
func SuggestShort(value string) bool {
	return DisplayColumns(value) <= ShortValueColumns
}

// DisplayColumns is the width of s in a monospace terminal-like renderer.
func DisplayColumns(s string) (n int) {
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}
