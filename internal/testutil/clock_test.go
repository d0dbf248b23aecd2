package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvances(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := NewClock(start, time.Second)

	assert.Equal(t, start, clock.Peek())
	assert.Equal(t, start, clock.Now())
	assert.Equal(t, start.Add(time.Second), clock.Now())
	assert.Equal(t, start.Add(2*time.Second), clock.Peek())
}

func TestClockStrictlyIncreasing(t *testing.T) {
	clock := NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Nanosecond)
	prev := clock.Now()
	for i := 0; i < 100; i++ {
		next := clock.Now()
		assert.True(t, next.After(prev))
		prev = next
	}
}
