package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

func TestOperationContext(t *testing.T) {
	t.Parallel()

	ctx := logger.WithOperation(context.Background(), "shipping")
	assert.Equal(t, "shipping", logger.OperationFromContext(ctx))
	assert.Empty(t, logger.OperationFromContext(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Empty(t, logger.OperationFromContext(nil))
}

func TestOperationExtractor(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(logger.OperationExtractor()),
	)

	log.InfoContext(logger.WithOperation(context.Background(), "grade"), "msg")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "grade", entry["op"])

	buf.Reset()
	log.InfoContext(context.Background(), "msg")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "op")
}
