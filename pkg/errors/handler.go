package errors

import (
	"sync"
	"time"
)

// ErrorHandler receives structured errors and recovered panics.
type ErrorHandler interface {
	HandleError(err *PlankError)
	HandlePanic(err *PanicError)
}

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *PlankError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// Isolate runs fn and converts a panic into a reported PanicError instead
// of unwinding the tick. Collaborator callbacks (drawing, metrics) run
// under this so a backend failure cannot corrupt layout state.
func Isolate(op string, fn func()) {
	defer func() {
		if v := recover(); v != nil {
			p := &PanicError{Op: op, Value: v, StackTrace: stack()}
			if h := getHandler(); h != nil {
				h.HandlePanic(p)
			}
		}
	}()
	fn()
}

// Debug gates internal consistency assertions (duplicate region
// registration, malformed trees). The production path never sets it:
// inconsistencies degrade gracefully rather than terminating the
// interaction loop.
var Debug bool

// Assert reports a consistency violation when Debug is set; it is a no-op
// otherwise.
func Assert(ok bool, op string, err error) {
	if !Debug || ok {
		return
	}
	Report(New(op, KindTree, err))
}
