package parsers

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// MissingField means a required palette slot was absent from the file.
	MissingField ErrorKind = iota
	// InvalidColorValue means a slot was present but its value could not
	// be read as a color (non-numeric, out of range, bad hex).
	InvalidColorValue
	// UnsupportedFormat means the file's top-level structure is not the
	// shape the parser accepts.
	UnsupportedFormat
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case InvalidColorValue:
		return "invalid color value"
	case UnsupportedFormat:
		return "unsupported format"
	}
	return "unknown"
}

// ParseError is a per-file, recoverable parse failure. Slot carries the
// canonical slot name for MissingField and InvalidColorValue.
type ParseError struct {
	Kind   ErrorKind
	Slot   string
	Detail string
}

func (e *ParseError) Error() string {
	switch {
	case e.Slot != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Slot, e.Detail)
	case e.Slot != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Slot)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return e.Kind.String()
}

func missingField(slot string) *ParseError {
	return &ParseError{Kind: MissingField, Slot: slot}
}

func invalidColor(slot, detail string) *ParseError {
	return &ParseError{Kind: InvalidColorValue, Slot: slot, Detail: detail}
}

func unsupported(detail string) *ParseError {
	return &ParseError{Kind: UnsupportedFormat, Detail: detail}
}

// FileError labels a parse failure with the file it came from.
type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }
