package fontbank

import "fmt"

// ConvertErrorKind identifies the category of transcoding error.
type ConvertErrorKind string

const (
	ErrIncompleteEscape ConvertErrorKind = "incomplete_escape"
	ErrInvalidEscape    ConvertErrorKind = "invalid_escape"
	ErrInvalidHexEscape ConvertErrorKind = "invalid_hex_escape"
)

// ConvertError is the error returned when a display string cannot be
// converted to game text. Position is the byte offset of the offending
// escape sequence in the input.
type ConvertError struct {
	Kind     ConvertErrorKind
	Position int
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("fontbank: %s at position %d", e.Kind, e.Position)
}

func fail(kind ConvertErrorKind, pos int) error {
	return &ConvertError{Kind: kind, Position: pos}
}

// UnknownVersionError is returned when a text version lookup fails.
type UnknownVersionError struct {
	Name string
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("fontbank: unknown text version %q", e.Name)
}
