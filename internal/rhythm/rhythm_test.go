package rhythm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alcyxob/gym-frontdesk/internal/domain"
)

func TestCalculateGracePeriod(t *testing.T) {
	now := time.Now()
	// Inside the first minute the verdict is always on pace, regardless of
	// how little was done.
	assert.Equal(t, domain.RhythmOnPace, Calculate(now, now, 0, 5))
	assert.Equal(t, domain.RhythmOnPace, Calculate(now, now.Add(-30*time.Second), 0, 5))
}

func TestCalculateNoExercises(t *testing.T) {
	now := time.Now()
	assert.Equal(t, domain.RhythmOnPace, Calculate(now, now.Add(-90*time.Minute), 0, 0))
}

func TestCalculateLate(t *testing.T) {
	now := time.Now()
	// 70 minutes in with 1 of 5 touched: timeRatio ≈ 1.17 > 0.2 + 0.2.
	assert.Equal(t, domain.RhythmLate, Calculate(now, now.Add(-70*time.Minute), 1, 5))
}

func TestCalculateOnPace(t *testing.T) {
	now := time.Now()
	// 30 minutes in with 3 of 5 touched: 0.5 <= 0.6 + 0.2.
	assert.Equal(t, domain.RhythmOnPace, Calculate(now, now.Add(-30*time.Minute), 3, 5))
}

func TestCalculateToleranceBoundary(t *testing.T) {
	now := time.Now()
	// 12 minutes in, nothing touched: timeRatio = 0.2, not strictly above
	// the 0.2 tolerance, so still on pace.
	assert.Equal(t, domain.RhythmOnPace, Calculate(now, now.Add(-12*time.Minute), 0, 5))
	// A minute later the ratio crosses the margin.
	assert.Equal(t, domain.RhythmLate, Calculate(now, now.Add(-13*time.Minute), 0, 5))
}

func TestCalculateElapsedAloneFlipsVerdict(t *testing.T) {
	start := time.Now()
	touched, total := 2, 5

	early := Calculate(start.Add(20*time.Minute), start, touched, total)
	late := Calculate(start.Add(50*time.Minute), start, touched, total)

	assert.Equal(t, domain.RhythmOnPace, early)
	assert.Equal(t, domain.RhythmLate, late)
}
