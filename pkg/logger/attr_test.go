package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestMachineID(t *testing.T) {
	t.Parallel()

	attr := logger.MachineID("abc")
	assert.Equal(t, "machine_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
	assert.True(t, logger.MachineID(nil).Equal(slog.Attr{}))
}

func TestTransition(t *testing.T) {
	t.Parallel()

	attr := logger.Transition("Red", "Green")
	assert.Equal(t, "transition", attr.Key)
	assert.Equal(t, slog.KindGroup, attr.Value.Kind())

	group := attr.Value.Group()
	assert.Len(t, group, 2)
	assert.Equal(t, "from", group[0].Key)
	assert.Equal(t, "Red", group[0].Value.String())
	assert.Equal(t, "to", group[1].Key)
	assert.Equal(t, "Green", group[1].Value.String())
}

func TestStringAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr slog.Attr
		key  string
		val  string
	}{
		{logger.Component("vending"), "component", "vending"},
		{logger.Event("insert_coin"), "event", "insert_coin"},
		{logger.State("Ready"), "state", "Ready"},
		{logger.RunID("r-1"), "run_id", "r-1"},
		{logger.Operation("grade"), "op", "grade"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.val, tt.attr.Value.String())
	}

	assert.Equal(t, "result", logger.Result(42).Key)
	assert.Equal(t, int64(42), logger.Result(42).Value.Any())
}
