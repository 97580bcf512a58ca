package errs

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// DomainError is the shared base carried by every taxonomy kind.
// It records when the failure happened, a human-readable message, and an
// optional context mapping with structured details about the violation.
//
// DomainError is not raised on its own; it is embedded in the five
// concrete kinds. Embedding promotes Error and MarshalJSON, so any kind
// can be formatted or serialized through the same contract.
type DomainError struct {
	// Name identifies the concrete kind (e.g. "ValidationError").
	Name string
	// Message is the human-readable description of the failure.
	Message string
	// Timestamp is the instant the error was constructed.
	Timestamp time.Time
	// Context holds structured details keyed by field name.
	Context map[string]any
	// Stack is a best-effort diagnostic trace captured at construction.
	// It may be empty.
	Stack string
}

// newDomainError builds the shared base for a concrete kind, stamping the
// current time and capturing the call stack.
func newDomainError(name string, message string, context map[string]any) DomainError {
	return DomainError{
		Name:      name,
		Message:   message,
		Timestamp: time.Now(),
		Context:   context,
		Stack:     captureStack(),
	}
}

// Error returns the human-readable message.
func (e *DomainError) Error() string {
	return e.Message
}

// MarshalJSON serializes the error as the stable projection
// {name, message, timestamp, context, stack}. Concrete kinds inherit this
// projection through embedding; their kind-specific fields are available
// under Context.
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name      string         `json:"name"`
		Message   string         `json:"message"`
		Timestamp time.Time      `json:"timestamp"`
		Context   map[string]any `json:"context,omitempty"`
		Stack     string         `json:"stack,omitempty"`
	}{
		Name:      e.Name,
		Message:   e.Message,
		Timestamp: e.Timestamp,
		Context:   e.Context,
		Stack:     e.Stack,
	})
}

// captureStack records the frames above the error constructors.
// Trace capture is diagnostic only; failures here yield an empty stack.
func captureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}

// mergeContext copies the caller-supplied context and overlays the
// kind-specific entries, leaving the caller's map untouched.
func mergeContext(base map[string]any, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
