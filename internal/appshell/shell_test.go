package appshell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.Equal(t, 0, Normalize(ctx, 0))
	require.Equal(t, 3, Normalize(ctx, 3))
	cancel()
	require.Equal(t, 130, Normalize(ctx, 0))
	require.Equal(t, 2, Normalize(ctx, 2))
}
