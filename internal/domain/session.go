package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseStatus is the live progress of one exercise inside a session.
type ExerciseStatus string

const (
	ExerciseNotStarted ExerciseStatus = "not_started"
	ExerciseInProgress ExerciseStatus = "in_progress"
	ExerciseDone       ExerciseStatus = "done"
)

// LiveExercise is one exercise being executed during a session. EntryID is
// the plan slot this entry was snapshotted from; LibraryID mirrors the
// slot's library reference at snapshot time.
type LiveExercise struct {
	EntryID   uuid.UUID
	LibraryID int64
	Status    ExerciseStatus
}

// ActiveSession is the runtime execution of a plan. It snapshots the plan's
// exercises at start time; at most one exists per student.
type ActiveSession struct {
	StudentID int64
	PlanID    int64
	StartTime time.Time
	Exercises []LiveExercise
}

// StartedCount counts exercises that were touched: in progress or done.
func (s *ActiveSession) StartedCount() int {
	n := 0
	for _, ex := range s.Exercises {
		if ex.Status == ExerciseInProgress || ex.Status == ExerciseDone {
			n++
		}
	}
	return n
}

// DoneCount counts exercises fully finished.
func (s *ActiveSession) DoneCount() int {
	n := 0
	for _, ex := range s.Exercises {
		if ex.Status == ExerciseDone {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the session.
func (s ActiveSession) Clone() ActiveSession {
	out := s
	out.Exercises = append([]LiveExercise(nil), s.Exercises...)
	return out
}
