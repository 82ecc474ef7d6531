package components

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

var (
	ErrMissingAttribute = errors.New("required attribute is not set")
	ErrMalformedJSON    = errors.New("input is not a single JSON value")
	ErrNotConstructed   = errors.New("field was not built by FieldBuilder")
)

type MissingAttributeError struct {
	Attributes []string
}

var _ error = (*MissingAttributeError)(nil)

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("can't build field, some of required attributes are not set: [%s]", strings.Join(e.Attributes, ", "))
}

func (e *MissingAttributeError) Is(target error) bool { return target == ErrMissingAttribute }
