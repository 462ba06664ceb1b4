package poller

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"alcyxob/gym-frontdesk/internal/domain"
	"alcyxob/gym-frontdesk/internal/roster"
	"alcyxob/gym-frontdesk/internal/service"
)

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "agora mesmo", FormatTimeAgo(now, now))
	assert.Equal(t, "agora mesmo", FormatTimeAgo(now, now.Add(-45*time.Second)))
	assert.Equal(t, "5 min", FormatTimeAgo(now, now.Add(-5*time.Minute)))
	assert.Equal(t, "59 min", FormatTimeAgo(now, now.Add(-59*time.Minute)))
	assert.Equal(t, "1 h", FormatTimeAgo(now, now.Add(-90*time.Minute)))
	assert.Equal(t, "2 h", FormatTimeAgo(now, now.Add(-2*time.Hour)))
}

func pollerFixture(t *testing.T, sessionAge time.Duration) (*roster.Store, service.SessionService) {
	t.Helper()
	trainerID := int64(1)
	onPace := domain.RhythmOnPace
	startedAt := time.Now().Add(-sessionAge)
	entry := uuid.New()

	students := []domain.Student{
		{
			ID:              203,
			Name:            "Clara Dias",
			Status:          domain.StatusTraining,
			TrainerID:       &trainerID,
			Rhythm:          &onPace,
			StatusChangedAt: startedAt,
			Plans: []domain.Plan{
				{
					ID:     304,
					Name:   "Treino Atual de Força",
					Active: true,
					Exercises: []domain.PlanExercise{
						{EntryID: entry, LibraryID: 102, Series: "5", Repetitions: "5"},
					},
				},
			},
		},
	}
	trainers := []domain.Trainer{
		{ID: 1, Name: "Carlos Andrade", Roles: []domain.Role{domain.RoleTrainer}, Status: domain.TrainerActive},
	}
	store := roster.New(trainers, nil, students)
	sessions := service.NewSessionService(store, zap.NewNop(), trainerID)
	require.NoError(t, sessions.BootstrapSessions(context.Background()))
	return store, sessions
}

func TestRefreshStatusAges(t *testing.T) {
	store, sessions := pollerFixture(t, 25*time.Minute)
	c := NewCoordinator(sessions, store, zap.NewNop(), time.Second, time.Minute)

	c.refreshStatusAges(time.Now())

	assert.Equal(t, "25 min", c.StatusAge(203))
	assert.Equal(t, "25 min", c.SessionElapsed(203))
	assert.Empty(t, c.StatusAge(999))
}

func TestCoordinatorAppliesRhythm(t *testing.T) {
	// Session started 70 minutes ago with nothing touched: late.
	store, sessions := pollerFixture(t, 70*time.Minute)
	c := NewCoordinator(sessions, store, zap.NewNop(), 10*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)
	defer c.Stop()

	require.Eventually(t, func() bool {
		students := store.Students()
		for _, st := range students {
			if st.ID == 203 {
				return st.Rhythm != nil && *st.Rhythm == domain.RhythmLate
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond)
}

func TestCoordinatorStopIsIdempotent(t *testing.T) {
	store, sessions := pollerFixture(t, time.Minute)
	c := NewCoordinator(sessions, store, zap.NewNop(), 10*time.Millisecond, 10*time.Millisecond)

	ctx := context.Background()
	c.Start(ctx)
	c.Stop()
	c.Stop() // second stop must not panic
}
