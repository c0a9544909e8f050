package wait

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/waitbar/internal/domain/entity"
	"github.com/amirhossein-jamali/waitbar/internal/domain/usecase/parser"
	coremocks "github.com/amirhossein-jamali/waitbar/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/waitbar/mocks/port/usecase"
)

func TestLoop_Wait(t *testing.T) {
	t.Run("two seconds at 500ms ticks four times", func(t *testing.T) {
		// Setup mocks
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Sleep(500 * time.Millisecond).Return().Times(4)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Times(2)
		mockLogger.EXPECT().Debug("Tick", mock.Anything).Times(4)

		total, err := parser.Parse("2s")
		require.NoError(t, err)

		loop := NewLoop(mockTime, mockLogger, 500*time.Millisecond)

		var ticks []time.Duration
		state := loop.Wait(total, func(elapsed, tot time.Duration) {
			assert.Equal(t, total, tot)
			ticks = append(ticks, elapsed)
		})

		assert.Equal(t, []time.Duration{
			0,
			500 * time.Millisecond,
			1000 * time.Millisecond,
			1500 * time.Millisecond,
		}, ticks)
		assert.Equal(t, 4, state.Iterations)
		assert.Equal(t, 2000*time.Millisecond, state.Elapsed)
		assert.Equal(t, entity.WaitDone, state.Phase())
	})

	t.Run("zero total never sleeps", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Times(2)

		loop := NewLoop(mockTime, mockLogger, time.Second)

		called := false
		state := loop.Wait(0, func(time.Duration, time.Duration) { called = true })

		assert.False(t, called)
		assert.Equal(t, 0, state.Iterations)
		mockTime.AssertNotCalled(t, "Sleep", mock.Anything)
	})

	t.Run("nil tick func is allowed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockTime.EXPECT().Sleep(time.Second).Return().Times(3)
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

		state := NewLoop(mockTime, mockLogger, time.Second).Wait(3*time.Second, nil)

		assert.Equal(t, 3, state.Iterations)
	})
}

func TestLoop_IterationCount(t *testing.T) {
	testCases := []struct {
		name     string
		total    time.Duration
		interval time.Duration
	}{
		{"exact multiple", 2 * time.Second, 500 * time.Millisecond},
		{"partial last interval", 1100 * time.Millisecond, 500 * time.Millisecond},
		{"one second interval", time.Minute, time.Second},
		{"interval longer than total", 300 * time.Millisecond, time.Second},
		{"odd interval", 7 * time.Second, 750 * time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTime := coremocks.NewMockTimeProvider(t)
			mockLogger := coremocks.NewMockLogger(t)
			mockTime.EXPECT().Sleep(tc.interval).Return()
			mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
			mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

			var last time.Duration
			state := NewLoop(mockTime, mockLogger, tc.interval).Wait(tc.total, func(elapsed, _ time.Duration) {
				last = elapsed
			})

			// ceil(T / R)
			want := int((tc.total + tc.interval - 1) / tc.interval)
			assert.Equal(t, want, state.Iterations)
			mockTime.AssertNumberOfCalls(t, "Sleep", want)

			assert.GreaterOrEqual(t, last, tc.total-tc.interval)
			assert.Less(t, last, tc.total+tc.interval)
			assert.GreaterOrEqual(t, state.Elapsed, tc.total)
			assert.Less(t, state.Elapsed, tc.total+tc.interval)
		})
	}
}

func TestNewLoop_DefaultInterval(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)

	assert.Equal(t, DefaultRefreshInterval, NewLoop(mockTime, mockLogger, 0).Interval())
	assert.Equal(t, DefaultRefreshInterval, NewLoop(mockTime, mockLogger, -time.Second).Interval())
	assert.Equal(t, time.Second, NewLoop(mockTime, mockLogger, time.Second).Interval())
}

func TestLoop_DrivesReporter(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockLogger := coremocks.NewMockLogger(t)
	mockReporter := usecasemocks.NewMockProgressReporter(t)

	total := 3 * time.Second
	mockTime.EXPECT().Sleep(time.Second).Return().Times(3)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()

	mockReporter.EXPECT().Start(total).Once()
	for _, elapsed := range []time.Duration{0, time.Second, 2 * time.Second} {
		mockReporter.EXPECT().Update(elapsed, total).Once()
	}
	// no exact 100% update before finishing
	mockReporter.EXPECT().Finish().Once()

	loop := NewLoop(mockTime, mockLogger, time.Second)

	mockReporter.Start(total)
	loop.Wait(total, mockReporter.Update)
	mockReporter.Finish()

	mockReporter.AssertNotCalled(t, "Update", total, total)
}
