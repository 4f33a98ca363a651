package requestctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	require.NotNil(t, Logger(ctx))
	require.False(t, HasLogger(ctx))
	require.False(t, HasLogger(WithLogger(ctx, nil)))

	logger := zap.NewExample()
	ctx = WithLogger(ctx, logger)
	require.True(t, HasLogger(ctx))
	require.Same(t, logger, Logger(ctx))
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	require.Empty(t, TraceID(context.Background()))
	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", TraceID(WithTraceID(context.Background(), "4bf92f3577b34da6a3ce929d0e0e4736")))
}
