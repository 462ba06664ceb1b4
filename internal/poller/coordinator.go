// Package poller runs the two periodic re-evaluations behind the dashboard:
// a tight rhythm tick and a slower status-age display tick. The rhythm tick
// is intentionally much tighter because rhythm is the time-sensitive signal
// driving a visible indicator; elapsed time alone can flip it.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"alcyxob/gym-frontdesk/internal/roster"
	"alcyxob/gym-frontdesk/internal/service"
)

// Coordinator owns the two tickers. Both loops stop when the context is
// cancelled or Stop is called; no callback fires afterwards.
type Coordinator struct {
	sessions    service.SessionService
	store       *roster.Store
	logger      *zap.Logger
	rhythmTick  time.Duration
	displayTick time.Duration
	stopChan    chan struct{}
	stopOnce    sync.Once

	mu             sync.Mutex
	statusAges     map[int64]string // studentID -> "time in status" label
	sessionElapsed map[int64]string // studentID -> "time since session start" label
}

// NewCoordinator creates the polling coordinator.
func NewCoordinator(sessions service.SessionService, store *roster.Store, logger *zap.Logger, rhythmTick, displayTick time.Duration) *Coordinator {
	return &Coordinator{
		sessions:       sessions,
		store:          store,
		logger:         logger,
		rhythmTick:     rhythmTick,
		displayTick:    displayTick,
		stopChan:       make(chan struct{}),
		statusAges:     map[int64]string{},
		sessionElapsed: map[int64]string{},
	}
}

// Start launches both loops. Each runs an immediate pass first so the
// dashboard is populated before the first tick elapses.
func (c *Coordinator) Start(ctx context.Context) {
	c.logger.Info("starting polling coordinator",
		zap.Duration("rhythmTick", c.rhythmTick),
		zap.Duration("displayTick", c.displayTick))
	go c.runRhythmLoop(ctx)
	go c.runStatusAgeLoop(ctx)
}

// Stop cancels both loops. Safe to call more than once.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		c.logger.Info("stopping polling coordinator")
		close(c.stopChan)
	})
}

func (c *Coordinator) runRhythmLoop(ctx context.Context) {
	c.sessions.ReevaluateRhythms(ctx, time.Now())

	ticker := time.NewTicker(c.rhythmTick)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			c.sessions.ReevaluateRhythms(ctx, now)
		case <-c.stopChan:
			c.logger.Info("rhythm loop stopped")
			return
		case <-ctx.Done():
			c.logger.Info("rhythm loop cancelled")
			return
		}
	}
}

func (c *Coordinator) runStatusAgeLoop(ctx context.Context) {
	c.refreshStatusAges(time.Now())

	ticker := time.NewTicker(c.displayTick)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			c.refreshStatusAges(now)
		case <-c.stopChan:
			c.logger.Info("status-age loop stopped")
			return
		case <-ctx.Done():
			c.logger.Info("status-age loop cancelled")
			return
		}
	}
}

// refreshStatusAges recomputes every student's "time in status" label and
// every live session's elapsed label from one consistent snapshot.
func (c *Coordinator) refreshStatusAges(now time.Time) {
	students, sessions := c.store.Snapshot()

	ages := make(map[int64]string, len(students))
	for _, student := range students {
		ages[student.ID] = FormatTimeAgo(now, student.StatusChangedAt)
	}
	elapsed := make(map[int64]string, len(sessions))
	for _, session := range sessions {
		elapsed[session.StudentID] = FormatTimeAgo(now, session.StartTime)
	}

	c.mu.Lock()
	c.statusAges = ages
	c.sessionElapsed = elapsed
	c.mu.Unlock()
}

// StatusAge returns the display label for how long the student has been in
// the current status, as of the last display tick.
func (c *Coordinator) StatusAge(studentID int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusAges[studentID]
}

// SessionElapsed returns the display label for how long the student's
// session has been running, as of the last display tick.
func (c *Coordinator) SessionElapsed(studentID int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionElapsed[studentID]
}
