package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider_Sleep(t *testing.T) {
	p := NewRealTimeProvider()

	start := time.Now()
	p.Sleep(20 * time.Millisecond)

	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
