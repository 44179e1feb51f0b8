package build

import (
	"errors"
	"fmt"
)

// Sentinel errors for conversion failures that abort a document.
var (
	// ErrUnrecognizedElement indicates an element that is not allowed where
	// it was found, such as a table inside a list item.
	ErrUnrecognizedElement = errors.New("unrecognized element")
	// ErrMissingAttribute indicates an element without a required attribute.
	ErrMissingAttribute = errors.New("missing required attribute")
)

// UnrecognizedElementError reports content that cannot be placed in the
// list or table structure being built.
type UnrecognizedElementError struct {
	Tag    string // offending tag, or "#text" for stray text
	Parent string // tag of the enclosing structure
}

func (e *UnrecognizedElementError) Error() string {
	return fmt.Sprintf("unrecognized element <%s> inside <%s>", e.Tag, e.Parent)
}

func (e *UnrecognizedElementError) Unwrap() error {
	return ErrUnrecognizedElement
}

// MissingAttributeError reports an element lacking a required attribute.
type MissingAttributeError struct {
	Tag  string
	Attr string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("<%s> has no %s attribute", e.Tag, e.Attr)
}

func (e *MissingAttributeError) Unwrap() error {
	return ErrMissingAttribute
}
