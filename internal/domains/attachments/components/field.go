package components

import (
	"github.com/quenbyako/roboslack/contrib/preconditions"
)

// DefaultShort is the value of Field.IsShort when nobody set it, both for
// the builder and for the wire decoder.
const DefaultShort = true

// JSON keys. Markdown in the value is reported under its key, "text".
const (
	fieldTitle = "title"
	fieldValue = "text"
	fieldShort = "short"
)

// Field is one labeled piece of text displayed in the table of a message
// attachment.
//
// Only NewField, FieldBuilder.Build and the JSON decoder produce a valid
// Field. The zero value is not one: it reports Valid() == false and can't be
// marshaled.
//
// See https://api.slack.com/docs/message-attachments
type Field struct {
	title   string
	value   string
	isShort bool

	// Indicates that struct correctly initialized
	valid bool
}

// NewField creates field with default IsShort value.
func NewField(title, value string) (Field, error) {
	return NewFieldBuilder().Title(title).Value(value).Build()
}

func (f Field) Valid() bool { return f.valid }
func (f Field) Validate() error {
	if err := preconditions.CheckDoesNotContainMarkdown(fieldTitle, f.title); err != nil {
		return err
	}
	if err := preconditions.CheckDoesNotContainMarkdown(fieldValue, f.value); err != nil {
		return err
	}

	return nil
}

// Title is the bold heading above the value text.
func (f Field) Title() string { return f.title }

// Value is the text content of the field.
func (f Field) Value() string { return f.value }

// IsShort tells whether the value is short enough to be displayed
// side-by-side with other values. Usually anything longer than
// ShortValueColumns is considered long.
func (f Field) IsShort() bool { return f.isShort }

// FieldBuilder accumulates Field attributes. Nothing is checked until Build.
// A builder is not safe for concurrent use.
type FieldBuilder struct {
	title   string
	value   string
	isShort bool

	setTitle bool
	setValue bool
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{isShort: DefaultShort}
}

func (b *FieldBuilder) Title(title string) *FieldBuilder {
	b.title, b.setTitle = title, true
	return b
}

func (b *FieldBuilder) Value(value string) *FieldBuilder {
	b.value, b.setValue = value, true
	return b
}

func (b *FieldBuilder) Short(isShort bool) *FieldBuilder {
	b.isShort = isShort
	return b
}

// Build returns a validated Field. On any error the zero Field is returned.
func (b *FieldBuilder) Build() (Field, error) {
	var missing []string
	if !b.setTitle {
		missing = append(missing, "title")
	}
	if !b.setValue {
		missing = append(missing, "value")
	}
	if len(missing) > 0 {
		return Field{}, &MissingAttributeError{Attributes: missing}
	}

	f := Field{
		title:   b.title,
		value:   b.value,
		isShort: b.isShort,
	}

	if err := f.Validate(); err != nil {
		return Field{}, err
	}
	f.valid = true

	return f, nil
}
