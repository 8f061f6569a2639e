// Package statemachine provides a small, type-safe finite-state-machine engine.
//
// States and events are anything with a Name method. StringState and
// StringEvent cover the common case; domain packages usually declare their
// own string types so that states cannot be mixed across machines.
//
// The engine handles:
//  1. Transition lookup keyed by (current state, event)
//  2. Optional Guard evaluation to accept or reject transitions
//  3. Actions executed before the state changes
//  4. Listeners notified after the state has changed
//  5. Restore, for putting a machine into a known state without an event
//
// # Usage
//
//	const (
//	    Red    = statemachine.StringState("Red")
//	    Green  = statemachine.StringState("Green")
//	    Yellow = statemachine.StringState("Yellow")
//	    Change = statemachine.StringEvent("change")
//	)
//
//	machine := statemachine.MustNew(Red,
//	    statemachine.WithCycle(Change, Red, Green, Yellow),
//	)
//	_ = machine.Fire(ctx, Change, nil) // Green
//
// The fluent Builder is an alternative for machines with guards and actions:
//
//	b := statemachine.NewBuilder(Ready)
//	_, err := b.From(Ready).When(InsertCoin).To(Dispensing).WithAction(charge).Add()
//	machine := b.Build()
//
// # Error Handling
//
// Fire distinguishes "no transition defined" from "guards rejected":
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//
// Restore returns ErrUnknownState for a state the machine has never seen.
//
// # Concurrency
//
// SimpleStateMachine guards its state with a RWMutex. Listeners run after the
// lock is released, so they may call Current.
package statemachine
