// Package trafficlight models a traffic signal that cycles Red, Green, Yellow
// and back to Red.
//
//	light := trafficlight.New(trafficlight.WithLogger(log))
//	light.ChangeState(ctx) // Green
//
// A Light is owned by its caller and is not meant to be shared between goroutines.
package trafficlight

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/statemachine"
)

// State is a signal colour.
type State string

const (
	Red    State = "Red"
	Green  State = "Green"
	Yellow State = "Yellow"
)

func (s State) Name() string {
	return string(s)
}

const change = statemachine.StringEvent("change")

// Light is a traffic signal. The zero value is not usable; call New.
type Light struct {
	id     uuid.UUID
	sm     statemachine.StateMachine
	logger *slog.Logger
}

type Option func(*Light)

// WithLogger sets the logger transitions are reported to at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(light *Light) {
		if l != nil {
			light.logger = l
		}
	}
}

// New returns a light showing Red.
func New(opts ...Option) *Light {
	l := &Light{
		id:     uuid.New(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.sm = statemachine.MustNew(Red,
		statemachine.WithCycle(change, Red, Green, Yellow),
		statemachine.WithListener(l.logTransition),
	)
	return l
}

// ID identifies the light in log records.
func (l *Light) ID() uuid.UUID {
	return l.id
}

// ChangeState advances to the next colour and returns it.
func (l *Light) ChangeState(ctx context.Context) State {
	// Every colour has a successor, so Fire cannot fail.
	_ = l.sm.Fire(ctx, change, nil)
	return l.CurrentState()
}

func (l *Light) CurrentState() State {
	return l.sm.Current().(State)
}

// Reset turns the light back to Red.
func (l *Light) Reset() {
	_ = l.sm.Reset()
}

func (l *Light) logTransition(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
	l.logger.DebugContext(ctx, "traffic light changed",
		logger.Component("trafficlight"),
		logger.MachineID(l.id),
		logger.Event(event.Name()),
		logger.Transition(from.Name(), to.Name()),
	)
}
