package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_Range(t *testing.T) {
	base := 100 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDuration_ZeroJitter(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
}

func TestExponentialBackoff_Growth(t *testing.T) {
	base := 100 * time.Millisecond
	max := 2 * time.Second

	assert.GreaterOrEqual(t, ExponentialBackoff(base, max, 0, 0), base)
	assert.Equal(t, 200*time.Millisecond, ExponentialBackoff(base, max, 1, 0))
	assert.Equal(t, 400*time.Millisecond, ExponentialBackoff(base, max, 2, 0))
}

func TestExponentialBackoff_CappedAtMax(t *testing.T) {
	base := 100 * time.Millisecond
	max := 2 * time.Second

	assert.Equal(t, max, ExponentialBackoff(base, max, 20, 0))
}
