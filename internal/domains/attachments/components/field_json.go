package components

import (
	"encoding/json"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/ogen-go/ogen/validate"
)

var (
	_ json.Marshaler   = Field{}
	_ json.Unmarshaler = (*Field)(nil)
)

//nolint:gochecknoglobals // lookup table for required bits
var jsonFieldsNameOfField = [2]string{
	0: fieldTitle,
	1: fieldValue,
}

// Encode writes all three keys, "short" included even when it equals the
// default.
func (f Field) Encode(e *jx.Encoder) {
	e.ObjStart()
	f.encodeFields(e)
	e.ObjEnd()
}

func (f Field) encodeFields(e *jx.Encoder) {
	e.FieldStart(fieldTitle)
	e.Str(f.title)

	e.FieldStart(fieldValue)
	e.Str(f.value)

	e.FieldStart(fieldShort)
	e.Bool(f.isShort)
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return nil, ErrNotConstructed
	}

	e := jx.Encoder{}
	f.Encode(&e)

	return e.Bytes(), nil
}

// Decode reads a field object and builds it through FieldBuilder, so decoded
// values pass the same checks as constructed ones. Unknown keys are skipped.
// On error f stays untouched.
func (f *Field) Decode(d *jx.Decoder) error {
	if f == nil {
		return errors.New("invalid: unable to decode Field to nil")
	}

	b := NewFieldBuilder()

	var requiredBitSet uint8
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case fieldTitle:
			requiredBitSet |= 1 << 0
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"title\"")
			}
			b.Title(v)

		case fieldValue:
			requiredBitSet |= 1 << 1
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"text\"")
			}
			b.Value(v)

		case fieldShort:
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "decode field \"short\"")
			}
			b.Short(v)

		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode Field")
	}

	const mask uint8 = 0b00000011
	if result := (requiredBitSet & mask) ^ mask; result != 0 {
		var failures []validate.FieldError
		for bitIdx, name := range jsonFieldsNameOfField {
			if result&(1<<bitIdx) != 0 {
				failures = append(failures, validate.FieldError{
					Name:  name,
					Error: validate.ErrFieldRequired,
				})
			}
		}

		return &validate.Error{Fields: failures}
	}

	res, err := b.Build()
	if err != nil {
		return errors.Wrap(err, "validate Field")
	}
	*f = res

	return nil
}

// UnmarshalJSON expects exactly one JSON value in data: trailing bytes, a
// second object or broken syntax fail before any key is read.
func (f *Field) UnmarshalJSON(data []byte) error {
	if !jx.Valid(data) {
		return errors.Wrap(ErrMalformedJSON, "decode Field")
	}

	d := jx.DecodeBytes(data)
	return f.Decode(d)
}

// DecodeField parses a single field object.
func DecodeField(data []byte) (Field, error) {
	var f Field
	if err := f.UnmarshalJSON(data); err != nil {
		return Field{}, err
	}

	return f, nil
}
