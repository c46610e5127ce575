package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	var tm Timer
	tm.Start()
	time.Sleep(5 * time.Millisecond)
	assert.GreaterOrEqual(t, tm.Stop(), 5*time.Millisecond)

	tm.Start()
	assert.Less(t, tm.Stop(), 5*time.Millisecond*100)
}

func TestMeasure(t *testing.T) {
	boom := errors.New("boom")
	d, err := Measure(func() error {
		time.Sleep(time.Millisecond)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.GreaterOrEqual(t, d, time.Millisecond)
}
