package roster

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/gym-frontdesk/internal/domain"
)

func storeFixture() *Store {
	students := []domain.Student{
		{
			ID:              201,
			Name:            "Ana Júlia Ribeiro",
			Status:          domain.StatusAvailable,
			StatusChangedAt: time.Now(),
			Plans: []domain.Plan{
				{ID: 301, Name: "Treino de Janeiro", Active: true,
					Exercises: []domain.PlanExercise{{EntryID: uuid.New(), LibraryID: 105, Series: "4", Repetitions: "10"}}},
			},
		},
	}
	trainers := []domain.Trainer{{ID: 1, Name: "Carlos Andrade", Status: domain.TrainerActive}}
	library := []domain.LibraryExercise{{ID: 105, Name: "Supino 45º"}}
	return New(trainers, library, students)
}

func TestIDCountersStartAboveSeed(t *testing.T) {
	s := storeFixture()
	assert.Equal(t, int64(202), s.NextStudentID())
	assert.Equal(t, int64(203), s.NextStudentID())
	assert.Equal(t, int64(302), s.NextPlanID())
}

func TestSnapshotsAreDeepCopies(t *testing.T) {
	s := storeFixture()

	students := s.Students()
	students[0].Name = "tampered"
	students[0].Plans[0].Name = "tampered"
	students[0].Plans[0].Exercises[0].Series = "tampered"

	fresh, err := s.StudentByID(201)
	require.NoError(t, err)
	assert.Equal(t, "Ana Júlia Ribeiro", fresh.Name)
	assert.Equal(t, "Treino de Janeiro", fresh.Plans[0].Name)
	assert.Equal(t, "4", fresh.Plans[0].Exercises[0].Series)
}

func TestReplaceSessionLastWriteWins(t *testing.T) {
	s := storeFixture()
	first := domain.ActiveSession{StudentID: 201, PlanID: 301, StartTime: time.Now().Add(-time.Hour)}
	second := domain.ActiveSession{StudentID: 201, PlanID: 301, StartTime: time.Now()}

	s.ReplaceSession(first)
	s.ReplaceSession(second)

	sessions := s.Sessions()
	require.Len(t, sessions, 1)
	assert.Equal(t, second.StartTime, sessions[0].StartTime)
}

func TestRemoveSession(t *testing.T) {
	s := storeFixture()
	s.ReplaceSession(domain.ActiveSession{StudentID: 201, PlanID: 301, StartTime: time.Now()})

	s.RemoveSession(201)

	assert.Empty(t, s.Sessions())
	_, err := s.SessionByStudent(201)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAppendStudentsSkipsIDCollisions(t *testing.T) {
	s := storeFixture()

	added := s.AppendStudents([]domain.Student{
		{ID: 201, Name: "Impostora"}, // collides with seeded student
		{ID: 210, Name: "Marina Souza"},
	})

	assert.Equal(t, 1, added)
	require.Len(t, s.Students(), 2)
	existing, err := s.StudentByID(201)
	require.NoError(t, err)
	assert.Equal(t, "Ana Júlia Ribeiro", existing.Name, "collision must not overwrite")
}

func TestUpdateStudentIsAtomic(t *testing.T) {
	s := storeFixture()
	trainerID := int64(1)
	rhythm := domain.RhythmOnPace

	err := s.UpdateStudent(201, func(st *domain.Student) {
		st.Status = domain.StatusTraining
		st.TrainerID = &trainerID
		st.Rhythm = &rhythm
	})
	require.NoError(t, err)

	st, err := s.StudentByID(201)
	require.NoError(t, err)
	assert.True(t, st.CheckInvariants())

	assert.ErrorIs(t, s.UpdateStudent(999, func(*domain.Student) {}), ErrStudentNotFound)
}
