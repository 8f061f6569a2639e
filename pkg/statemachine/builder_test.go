package statemachine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/statemachine"
)

func TestBuilder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("fluent transition", func(t *testing.T) {
		t.Parallel()
		var charged bool
		charge := func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
			charged = true
			return nil
		}

		b := statemachine.NewBuilder(Off)
		_, err := b.From(Off).When(PowerOn).To(Red).WithAction(charge).Add()
		require.NoError(t, err)
		sm := b.Build()

		require.NoError(t, sm.Fire(ctx, PowerOn, nil))
		assert.True(t, charged)
		assert.Equal(t, Red, sm.Current())
	})

	t.Run("incomplete transition", func(t *testing.T) {
		t.Parallel()
		_, err := statemachine.NewBuilder(Off).From(Off).When(PowerOn).Add()
		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	})

	t.Run("From resets pending guards", func(t *testing.T) {
		t.Parallel()
		never := func(context.Context, statemachine.State, statemachine.Event, any) bool { return false }

		b := statemachine.NewBuilder(Off)
		b.From(Red).WithGuard(never)
		_, err := b.From(Off).When(PowerOn).To(Red).Add()
		require.NoError(t, err)

		assert.True(t, b.Build().CanFire(ctx, PowerOn, nil))
	})

	t.Run("shorthand and listener", func(t *testing.T) {
		t.Parallel()
		var moves []string

		b := statemachine.NewBuilder(Red)
		_, err := b.WithTransition(Red, Green, Change, nil, nil)
		require.NoError(t, err)
		b.OnTransition(func(_ context.Context, from, to statemachine.State, _ statemachine.Event) {
			moves = append(moves, from.Name()+"->"+to.Name())
		})

		sm := b.Build()
		require.NoError(t, sm.Fire(ctx, Change, nil))
		assert.Equal(t, []string{"Red->Green"}, moves)
	})
}
