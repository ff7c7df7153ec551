package scalar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-math3d/internal/kernel/registry"
)

func TestRegistered(t *testing.T) {
	entry, ok := registry.Global.Find("scalar")
	require.True(t, ok, "scalar kernel set not registered - init() not running")
	require.Equal(t, 0, entry.Priority)
	require.NotNil(t, entry.F32)
	require.NotNil(t, entry.F64)
}
