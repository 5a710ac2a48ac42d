// Package errors provides structured error handling for the layout core.
//
// The core's policy is "never abort a frame": collaborator failures are
// reported through the handler and the frame continues with a cosmetic
// fallback, since the panel repaints every tick and a single bad frame is
// self-healing.
package errors

import (
	"fmt"
	"runtime"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMetrics indicates a content-metrics collaborator failure.
	KindMetrics
	// KindDraw indicates a drawing-backend failure.
	KindDraw
	// KindBinding indicates a reactive-binding resolution failure.
	KindBinding
	// KindTree indicates an internal tree consistency error.
	KindTree
	// KindStore indicates a panel-geometry persistence failure.
	KindStore
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMetrics:
		return "metrics"
	case KindDraw:
		return "draw"
	case KindBinding:
		return "binding"
	case KindTree:
		return "tree"
	case KindStore:
		return "store"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// PlankError represents a structured error in the layout core.
type PlankError struct {
	// Op is the operation that failed (e.g., "panel.Draw").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *PlankError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PlankError) Unwrap() error {
	return e.Err
}

// New creates a PlankError for the given operation and kind.
func New(op string, kind ErrorKind, err error) *PlankError {
	return &PlankError{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widget.Draw").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s panicked: %v", e.Op, e.Value)
}

// stack captures the current goroutine's stack.
func stack() string {
	buf := make([]byte, 16*1024)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
