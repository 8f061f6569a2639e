package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// MachineID records a state machine instance id under the key "machine_id".
// If id is nil, it returns an empty Attr.
func MachineID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("machine_id", id)
}

// RunID records the CLI invocation id under the key "run_id".
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// State records a state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Transition groups the source and target state names under "transition".
func Transition(from, to string) slog.Attr {
	return slog.Group("transition", slog.String("from", from), slog.String("to", to))
}

// Operation records the invoked operation under the key "op".
func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

// Result records an operation outcome under the key "result".
func Result(v any) slog.Attr {
	return slog.Any("result", v)
}
