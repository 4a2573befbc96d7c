package address

import "strconv"

// ErrorKind identifies the grammar rule an input violated.
type ErrorKind uint8

const (
	KindNotANumber ErrorKind = iota
	KindOutOfRange
	KindWrongGroupCount
	KindAmbiguousCompression
	KindMalformedBracket
	KindTrailingOrLeadingSeparator
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotANumber:
		return "not a number"
	case KindOutOfRange:
		return "out of range"
	case KindWrongGroupCount:
		return "wrong group count"
	case KindAmbiguousCompression:
		return "ambiguous zero compression"
	case KindMalformedBracket:
		return "malformed bracket"
	case KindTrailingOrLeadingSeparator:
		return "trailing or leading separator"
	default:
		return "unknown"
	}
}

// FormatError reports a rejected input together with the rule it broke.
// Parse functions return it, validate functions only report the boolean
// outcome; both are fronts over the same pipeline and never diverge.
type FormatError struct {
	Kind  ErrorKind
	Input string
}

func (e *FormatError) Error() string {
	return e.Kind.String() + ": " + strconv.Quote(e.Input)
}

func newError(kind ErrorKind, input string) *FormatError {
	return &FormatError{Kind: kind, Input: input}
}
