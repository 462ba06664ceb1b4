package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStudentCheckInvariants(t *testing.T) {
	trainerID := int64(1)
	onPace := RhythmOnPace

	tests := []struct {
		name    string
		student Student
		want    bool
	}{
		{"available without trainer", Student{Status: StatusAvailable}, true},
		{"training with trainer", Student{Status: StatusTraining, TrainerID: &trainerID}, true},
		{"training with trainer and rhythm", Student{Status: StatusTraining, TrainerID: &trainerID, Rhythm: &onPace}, true},
		{"training without trainer", Student{Status: StatusTraining}, false},
		{"available with trainer", Student{Status: StatusAvailable, TrainerID: &trainerID}, false},
		{"queued with rhythm", Student{Status: StatusQueued, Rhythm: &onPace}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.student.CheckInvariants())
		})
	}
}

func TestActivePlans(t *testing.T) {
	s := Student{Plans: []Plan{
		{ID: 1, Active: true},
		{ID: 2, Active: false},
		{ID: 3, Active: true},
	}}

	active := s.ActivePlans()

	assert.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)
}

func TestSessionCounts(t *testing.T) {
	s := ActiveSession{Exercises: []LiveExercise{
		{EntryID: uuid.New(), Status: ExerciseDone},
		{EntryID: uuid.New(), Status: ExerciseInProgress},
		{EntryID: uuid.New(), Status: ExerciseNotStarted},
	}}

	assert.Equal(t, 2, s.StartedCount(), "in progress counts as started")
	assert.Equal(t, 1, s.DoneCount())
}

func TestStudentCloneIsDeep(t *testing.T) {
	trainerID := int64(2)
	s := Student{
		ID:        1,
		TrainerID: &trainerID,
		Plans:     []Plan{{ID: 10, Exercises: []PlanExercise{{EntryID: uuid.New(), Series: "3"}}}},
		History:   []HistoryEntry{{Date: time.Now(), Outcome: OutcomeComplete}},
	}

	c := s.Clone()
	*c.TrainerID = 99
	c.Plans[0].Exercises[0].Series = "9"
	c.History[0].Outcome = OutcomeIncomplete

	assert.Equal(t, int64(2), *s.TrainerID)
	assert.Equal(t, "3", s.Plans[0].Exercises[0].Series)
	assert.Equal(t, OutcomeComplete, s.History[0].Outcome)
}
