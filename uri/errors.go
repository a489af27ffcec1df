package uri

import (
	"strconv"

	"github.com/bhatti/Aeron/internal/util"
)

// Error is a string type of the package sentinel errors.
type Error string

func (e Error) Error() string { return string(e) }

// Grammar marks the error as a rejection of malformed input.
func (Error) Grammar() bool { return true }

// ErrInvalidFormat is matched by every error returned for malformed input.
const ErrInvalidFormat Error = "invalid format"

// Rejection reasons. Each one is reported inside a [*FormatError],
// which also matches [ErrInvalidFormat].
const (
	ErrMissingPrefix   Error = `missing "` + Prefix + `" prefix`
	ErrColonInMedia    Error = "colon not permitted within media"
	ErrIncompleteParam Error = "input ended within parameter key"
)

const maxErrInputLen = 256

// FormatError describes where and why the input was rejected.
type FormatError struct {
	// Input is the whole rejected input.
	Input string
	// Pos is the byte offset of the offending character,
	// or the input length when the input ended too early.
	Pos int
	// State is the scanner state at the moment of rejection.
	State State
	// Reason is one of ErrMissingPrefix, ErrColonInMedia, ErrIncompleteParam.
	Reason error
}

func newFormatError(input string, pos int, state State, reason error) error {
	return &FormatError{Input: input, Pos: pos, State: state, Reason: reason} //errtrace:skip
}

func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString(string(ErrInvalidFormat))
	if e.Reason != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Reason.Error())
	}
	sb.WriteString(" at offset ")
	sb.WriteString(strconv.Itoa(e.Pos))
	sb.WriteString(" in state ")
	sb.WriteString(e.State.String())
	sb.WriteString(": ")
	sb.WriteString(strconv.Quote(util.Ellipsis(e.Input, maxErrInputLen)))
	return sb.String()
}

// Unwrap returns [ErrInvalidFormat] and the rejection reason.
func (e *FormatError) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Reason == nil {
		return []error{ErrInvalidFormat}
	}
	return []error{ErrInvalidFormat, e.Reason}
}

// Grammar marks the error as a rejection of malformed input.
func (*FormatError) Grammar() bool { return true }
