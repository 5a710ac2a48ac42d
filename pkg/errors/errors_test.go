package errors

import (
	"errors"
	"testing"
)

type captureHandler struct {
	errs   []*PlankError
	panics []*PanicError
}

func (c *captureHandler) HandleError(err *PlankError) { c.errs = append(c.errs, err) }
func (c *captureHandler) HandlePanic(err *PanicError) { c.panics = append(c.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Report(&PlankError{Op: "engine.Measure", Kind: KindTree, Err: errors.New("boom")})
	if len(capture.errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Error("Report must stamp the error")
	}
}

func TestIsolateSwallowsPanic(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Isolate("widget.Draw", func() { panic("backend exploded") })

	if len(capture.panics) != 1 {
		t.Fatalf("got %d panics, want 1", len(capture.panics))
	}
	if capture.panics[0].Op != "widget.Draw" {
		t.Errorf("Op = %q", capture.panics[0].Op)
	}
	if capture.panics[0].StackTrace == "" {
		t.Error("panic should carry a stack trace")
	}
}

func TestIsolateRunsCleanFunctions(t *testing.T) {
	ran := false
	Isolate("noop", func() { ran = true })
	if !ran {
		t.Error("Isolate skipped the function")
	}
}

func TestAssertOnlyFiresInDebug(t *testing.T) {
	capture := &captureHandler{}
	SetHandler(capture)
	defer SetHandler(nil)

	Debug = false
	Assert(false, "input.Register", errors.New("duplicate region"))
	if len(capture.errs) != 0 {
		t.Error("Assert fired outside debug mode")
	}

	Debug = true
	defer func() { Debug = false }()
	Assert(false, "input.Register", errors.New("duplicate region"))
	if len(capture.errs) != 1 {
		t.Error("Assert did not fire in debug mode")
	}
	Assert(true, "input.Register", errors.New("unused"))
	if len(capture.errs) != 1 {
		t.Error("Assert fired on a satisfied condition")
	}
}

func TestErrorStringFormat(t *testing.T) {
	err := New("binding.Sync", KindBinding, errors.New("path unreachable"))
	want := "binding.Sync [binding]: path unreachable"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, err.Err) {
		t.Error("Unwrap chain broken")
	}
}
