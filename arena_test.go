package framealloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"positive size", 1024, nil},
		{"one byte", 1, nil},
		{"zero size", 0, ErrInvalidSize},
		{"negative size", -1, ErrInvalidSize},
		{"unsatisfiable size", math.MaxInt, ErrOutOfMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArena(tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.size, a.Size())
			assert.Len(t, a.Bytes(), tt.size)
		})
	}
}

func TestArenaOffset(t *testing.T) {
	a, err := NewArena(256)
	require.NoError(t, err)

	buf := a.Bytes()
	off, ok := a.Offset(buf[40:48])
	require.True(t, ok)
	assert.Equal(t, 40, off)

	off, ok = a.Offset(buf[255:])
	require.True(t, ok)
	assert.Equal(t, 255, off)

	_, ok = a.Offset(make([]byte, 8))
	assert.False(t, ok, "foreign slice")

	_, ok = a.Offset(nil)
	assert.False(t, ok, "nil slice")
}

func TestArenaRelease(t *testing.T) {
	a, err := NewArena(64)
	require.NoError(t, err)

	a.Release()
	assert.True(t, a.Released())
	assert.Zero(t, a.Size())

	// Multiple releases should be safe
	a.Release()

	assert.Panics(t, func() { a.Bytes() })
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		input    uintptr
		align    uintptr
		expected uintptr
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{3, 4, 4},
		{5, 1, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, alignUp(tt.input, tt.align), "alignUp(%d, %d)", tt.input, tt.align)
	}
}
