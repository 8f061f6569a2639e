package vending

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/statemachine"
)

type State string

const (
	Ready      State = "Ready"
	Dispensing State = "Dispensing"
)

func (s State) Name() string {
	return string(s)
}

const (
	CoinInserted     = "Coin Inserted. Select your drink."
	InvalidOperation = "Invalid operation in current state."
)

// ErrUnknownState is returned by New when WithState names a state the
// machine does not have.
var ErrUnknownState = statemachine.ErrUnknownState

const insertCoin = statemachine.StringEvent("insert_coin")

type Machine struct {
	id     uuid.UUID
	sm     statemachine.StateMachine
	logger *slog.Logger
}

type config struct {
	state  State
	logger *slog.Logger
}

type Option func(*config)

// WithState starts the machine in s instead of Ready.
func WithState(s State) Option {
	return func(c *config) {
		c.state = s
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a machine. It fails only when WithState names an unknown state.
func New(opts ...Option) (*Machine, error) {
	cfg := &config{
		state:  Ready,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	m := &Machine{
		id:     uuid.New(),
		logger: cfg.logger,
	}

	b := statemachine.NewBuilder(Ready)
	if _, err := b.From(Ready).When(insertCoin).To(Dispensing).WithGuard(requestActive).Add(); err != nil {
		return nil, fmt.Errorf("vending: %w", err)
	}
	b.OnTransition(m.logTransition)
	m.sm = b.Build()

	if err := m.sm.Restore(cfg.state); err != nil {
		return nil, fmt.Errorf("vending: %w", err)
	}
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Machine {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Machine) ID() uuid.UUID {
	return m.id
}

// InsertCoin accepts a coin when Ready and moves to Dispensing. In any other
// state, or once ctx is done, the coin is refused and the state is unchanged.
func (m *Machine) InsertCoin(ctx context.Context) string {
	err := m.sm.Fire(ctx, insertCoin, nil)
	switch {
	case err == nil:
		return CoinInserted
	case statemachine.IsNoTransitionAvailableError(err):
		m.logger.DebugContext(ctx, "coin refused",
			logger.Component("vending"),
			logger.MachineID(m.id),
			logger.State(m.sm.Current().Name()),
			logger.Error(err),
		)
	case statemachine.IsTransitionRejectedError(err):
		m.logger.WarnContext(ctx, "coin returned, request ended",
			logger.Component("vending"),
			logger.MachineID(m.id),
			logger.State(m.sm.Current().Name()),
			logger.Error(context.Cause(ctx)),
		)
	default:
		m.logger.ErrorContext(ctx, "coin insert failed",
			logger.Component("vending"),
			logger.MachineID(m.id),
			logger.Error(err),
		)
	}
	return InvalidOperation
}

func (m *Machine) State() State {
	return m.sm.Current().(State)
}

// Reset returns the machine to Ready.
func (m *Machine) Reset() {
	_ = m.sm.Reset()
}

// requestActive keeps a coin from being taken for a caller that has gone away.
func requestActive(ctx context.Context, _ statemachine.State, _ statemachine.Event, _ any) bool {
	return ctx.Err() == nil
}

func (m *Machine) logTransition(ctx context.Context, from, to statemachine.State, event statemachine.Event) {
	m.logger.DebugContext(ctx, "vending machine changed",
		logger.Component("vending"),
		logger.MachineID(m.id),
		logger.Event(event.Name()),
		logger.Transition(from.Name(), to.Name()),
	)
}
