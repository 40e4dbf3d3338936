package nilcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleStruct struct{}

type sampleLogger interface {
	Info(args ...any)
}

type sampleImpl struct{}

func (*sampleImpl) Info(args ...any) {}

func TestInterface(t *testing.T) {
	t.Parallel()

	var nilPointer *sampleStruct
	var nilSlice []any
	var nilMap map[string]any
	var nilChan chan int
	var nilFunc func()
	var nilIface sampleLogger

	var typedNilIface sampleLogger
	var typedImpl *sampleImpl
	typedNilIface = typedImpl

	require.True(t, Interface(nil))
	require.True(t, Interface(nilPointer))
	require.True(t, Interface(nilSlice))
	require.True(t, Interface(nilMap))
	require.True(t, Interface(nilChan))
	require.True(t, Interface(nilFunc))
	require.True(t, Interface(nilIface))
	require.True(t, Interface(typedNilIface))

	require.False(t, Interface(0))
	require.False(t, Interface(false))
	require.False(t, Interface(""))
	require.False(t, Interface(sampleStruct{}))
	require.False(t, Interface(&sampleStruct{}))
	require.False(t, Interface(map[string]any{}))
	require.False(t, Interface([]any{}))
}
