package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeltaTimerFirstTickIsZero(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next())
	assert.False(t, d.IsZero())
}

func TestDeltaTimerMeasuresSinceLastTick(t *testing.T) {
	var d DeltaTimer
	d.Set(time.Now().Add(-time.Second))
	dt := d.Next()
	assert.GreaterOrEqual(t, dt, time.Second)
	assert.Less(t, d.Next(), time.Second)
}
