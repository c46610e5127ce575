package framealloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeListInitialize(t *testing.T) {
	var l FreeList
	l.Initialize(4)
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 4, l.Cap())

	for want := 0; want < 4; want++ {
		got, ok := l.Obtain()
		require.True(t, ok)
		assert.Equal(t, want, got, "slots are handed out in address order")
	}

	_, ok := l.Obtain()
	assert.False(t, ok)
	assert.Zero(t, l.Len())
}

func TestFreeListLIFO(t *testing.T) {
	var l FreeList
	l.Initialize(8)

	a, _ := l.Obtain()
	b, _ := l.Obtain()
	l.Lose(a)
	l.Lose(b)

	got, ok := l.Obtain()
	require.True(t, ok)
	assert.Equal(t, b, got, "last lost slot is obtained first")
	got, ok = l.Obtain()
	require.True(t, ok)
	assert.Equal(t, a, got)
}

func TestFreeListZeroValue(t *testing.T) {
	var l FreeList
	_, ok := l.Obtain()
	assert.False(t, ok)
	assert.Zero(t, l.Len())

	l.Initialize(0)
	_, ok = l.Obtain()
	assert.False(t, ok)
}

func TestFreeListCycleClosure(t *testing.T) {
	var l FreeList
	l.Initialize(16)

	for round := 0; round < 5; round++ {
		seen := make(map[int]bool)
		var got []int
		for {
			i, ok := l.Obtain()
			if !ok {
				break
			}
			require.False(t, seen[i], "slot %d obtained twice in round %d", i, round)
			seen[i] = true
			got = append(got, i)
		}
		require.Len(t, got, 16)
		for _, i := range got {
			l.Lose(i)
		}
		require.Equal(t, 16, l.Len())
	}
}

func TestFreeListFree(t *testing.T) {
	var l FreeList
	l.Initialize(4)
	l.Free()

	assert.Zero(t, l.Cap())
	_, ok := l.Obtain()
	assert.False(t, ok)
}
