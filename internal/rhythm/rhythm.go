// Package rhythm computes the pacing verdict for an active workout session.
// The verdict is a heuristic, not exact scheduling: it compares the share of
// the nominal workout window already spent against the share of exercises
// the student has touched, with a fixed tolerance. Elapsed time alone can
// flip the verdict, so callers re-evaluate it on a timer.
package rhythm

import (
	"time"

	"alcyxob/gym-frontdesk/internal/domain"
)

const (
	// WorkoutDuration is the nominal session length the time ratio is
	// measured against.
	WorkoutDuration = 60 * time.Minute

	// ToleranceMargin is how far the time ratio may run ahead of the
	// exercise ratio before the student counts as late.
	ToleranceMargin = 0.2

	// gracePeriod suppresses the verdict right after a session starts.
	gracePeriod = time.Minute
)

// Calculate returns the pacing verdict at instant now for a session that
// began at startTime, where exercisesStarted counts exercises in progress or
// done out of totalExercises in the executed plan.
func Calculate(now, startTime time.Time, exercisesStarted, totalExercises int) domain.Rhythm {
	elapsed := now.Sub(startTime)
	if elapsed < gracePeriod || totalExercises == 0 {
		return domain.RhythmOnPace
	}

	timeRatio := elapsed.Minutes() / WorkoutDuration.Minutes()
	exerciseRatio := float64(exercisesStarted) / float64(totalExercises)

	if timeRatio > exerciseRatio+ToleranceMargin {
		return domain.RhythmLate
	}
	return domain.RhythmOnPace
}
