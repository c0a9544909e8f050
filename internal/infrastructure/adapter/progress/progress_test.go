package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/waitbar/internal/domain/error"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewLineReporter(&buf)

	r.Start(2 * time.Second)
	for _, elapsed := range []time.Duration{0, 500 * time.Millisecond, time.Second, 1500 * time.Millisecond} {
		r.Update(elapsed, 2*time.Second)
	}
	r.Finish()

	assert.Equal(t, "0s / 2s\n1s / 2s\n", buf.String())
}

func TestBarReporter(t *testing.T) {
	t.Run("draws on update and ends the line", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewBarReporter(&buf)

		r.Start(time.Minute)
		r.Update(30*time.Second, time.Minute)
		r.Finish()

		out := buf.String()
		assert.Contains(t, out, "50")
		assert.True(t, strings.HasSuffix(out, "\n"))
	})

	t.Run("nothing written without updates", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewBarReporter(&buf)

		r.Start(0)
		r.Finish()

		assert.Empty(t, buf.String())
	})

	t.Run("update before start is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewBarReporter(&buf)

		r.Update(time.Second, time.Minute)
		r.Finish()

		assert.Empty(t, buf.String())
	})
}

func TestNewReporter(t *testing.T) {
	var buf bytes.Buffer

	r, err := NewReporter(StyleBar, &buf)
	require.NoError(t, err)
	assert.IsType(t, &BarReporter{}, r)

	r, err = NewReporter(StyleLine, &buf)
	require.NoError(t, err)
	assert.IsType(t, &LineReporter{}, r)

	// a buffer is never a terminal
	r, err = NewReporter(StyleAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &LineReporter{}, r)

	_, err = NewReporter("fancy", &buf)
	assert.ErrorIs(t, err, errs.ErrInvalidConfig)
}
