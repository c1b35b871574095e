package logging

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogData_ReturnsStoredCollector(t *testing.T) {
	logger := SetupLogging()
	logger.SetOutput(io.Discard)
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
}

func TestGetLogData_FallsBackWithoutCollector(t *testing.T) {
	logData := GetLogData(context.Background())

	require.NotNil(t, logData)
	logData.AddData("key", "value")
	logData.AddTiming("step")()
}
