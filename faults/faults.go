// Package faults carries the error taxonomy shared by every action, so callers
// can branch on the kind of failure rather than on message text.
package faults

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindUnknown    Kind = iota
	KindInput           // no data source, or a source that does not exist
	KindValidation      // malformed threshold or zoom input
	KindExport          // export requested before anything was plotted
	KindIO              // file read/write failure
	KindNoPlot          // view action issued before the first plot
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindValidation:
		return "validation"
	case KindExport:
		return "export"
	case KindIO:
		return "io"
	case KindNoPlot:
		return "no-plot"
	default:
		return "unknown"
	}
}

// Error is the concrete error returned by every package in the module.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, op, msg string) error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func Newf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind to err. A nil err stays nil.
func Wrap(kind Kind, op string, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Msg: msg, Err: errors.WithStack(err)}
}

func Input(op, msg string) error      { return New(KindInput, op, msg) }
func Validation(op, msg string) error { return New(KindValidation, op, msg) }
func Export(op, msg string) error     { return New(KindExport, op, msg) }

func IO(op string, err error, msg string) error { return Wrap(KindIO, op, err, msg) }

// KindOf reports the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Hint returns a short user-facing message naming the corrective action.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	var fe *Error
	if !errors.As(err, &fe) {
		return err.Error()
	}
	detail := fe.Msg
	if detail == "" {
		detail = errors.Cause(fe).Error()
	}
	switch fe.Kind {
	case KindInput:
		return "No data: " + detail + " (press i to enter data or o to open a file)"
	case KindValidation:
		return "Invalid value: " + detail
	case KindExport:
		return "Nothing to export: " + detail + " (plot data first)"
	case KindIO:
		return "File error: " + fe.Error()
	case KindNoPlot:
		return "Nothing plotted yet"
	default:
		return fe.Error()
	}
}
