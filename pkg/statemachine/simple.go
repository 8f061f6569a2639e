package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine provides a thread-safe in-memory state machine implementation.
// Uses a nested map structure for O(1) transition lookups: [fromState][event][]Transition
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
	known        map[string]State
	listeners    []Listener
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
		known:        map[string]State{initialState.Name(): initialState},
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	fromStateName := from.Name()
	eventName := event.Name()

	if _, ok := sm.transitions[fromStateName]; !ok {
		sm.transitions[fromStateName] = make(map[string][]Transition)
	}

	transition := Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	}

	// Multiple transitions allowed for same from/event to support guard-based branching
	sm.transitions[fromStateName][eventName] = append(sm.transitions[fromStateName][eventName], transition)
	sm.known[fromStateName] = from
	sm.known[to.Name()] = to
	return nil
}

func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	from, to, err := sm.commit(ctx, event, data)
	if err != nil {
		return err
	}

	// Listeners run outside the lock so they may read Current.
	for _, l := range sm.listeners {
		l(ctx, from, to, event)
	}
	return nil
}

func (sm *SimpleStateMachine) commit(ctx context.Context, event Event, data any) (State, State, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	from := sm.currentState
	transition, err := sm.match(ctx, event, data)
	if err != nil {
		return nil, nil, err
	}

	// Execute actions before state change; any failure aborts transition
	for _, action := range transition.Actions {
		if action != nil {
			if err := action(ctx, from, transition.To, event, data); err != nil {
				return nil, nil, fmt.Errorf("action failed: %w", err)
			}
		}
	}

	sm.currentState = transition.To
	return from, transition.To, nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	_, err := sm.match(ctx, event, data)
	return err == nil
}

// match returns the first transition from the current state whose guards all
// pass. Callers must hold the lock.
func (sm *SimpleStateMachine) match(ctx context.Context, event Event, data any) (*Transition, error) {
	currentStateName := sm.currentState.Name()
	eventName := event.Name()

	transitions := sm.transitions[currentStateName][eventName]
	if len(transitions) == 0 {
		return nil, NewErrNoTransitionAvailable(currentStateName, eventName)
	}

	// First transition with passing guards wins (enables priority ordering)
	for i, t := range transitions {
		if sm.guardsPass(ctx, t, event, data) {
			return &transitions[i], nil
		}
	}

	return nil, NewErrTransitionRejected(currentStateName, eventName)
}

func (sm *SimpleStateMachine) guardsPass(ctx context.Context, t Transition, event Event, data any) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(ctx, sm.currentState, event, data) {
			return false
		}
	}
	return true
}

// Restore moves the machine straight to state without firing an event.
// The state must be the initial state or appear in a registered transition.
// Guards, actions and listeners are not invoked.
func (sm *SimpleStateMachine) Restore(state State) error {
	if state == nil {
		return ErrInvalidState
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	known, ok := sm.known[state.Name()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownState, state.Name())
	}
	sm.currentState = known
	return nil
}

func (sm *SimpleStateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
	return nil
}
