package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alcyxob/gym-frontdesk/internal/domain"
	"alcyxob/gym-frontdesk/internal/rhythm"
	"alcyxob/gym-frontdesk/internal/roster"
)

// --- Error Definitions ---
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrSessionNotFound    = errors.New("no active session for student")
	ErrExerciseNotFound   = errors.New("exercise not found in session")
	ErrPlanInactive       = errors.New("plan is not active")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrAlreadyResponsible = errors.New("trainer is already responsible for this session")
)

// SessionService drives the per-student status cycle
// (available → queued → training → available) and the live sessions.
type SessionService interface {
	Enqueue(ctx context.Context, studentID int64) error
	StartSession(ctx context.Context, studentID, planID int64) (domain.ActiveSession, error)
	ClaimSession(ctx context.Context, studentID, trainerID int64) error
	UpdateExerciseStatus(ctx context.Context, studentID int64, entryID uuid.UUID, status domain.ExerciseStatus) error
	RemoveExerciseFromSession(ctx context.Context, studentID int64, entryID uuid.UUID, confirm Confirmer) error
	FinishSession(ctx context.Context, studentID int64) (*domain.HistoryEntry, error)

	// BootstrapSessions synthesizes sessions for students seeded directly in
	// the training status, snapshotting their first active plan.
	BootstrapSessions(ctx context.Context) error

	// ReevaluateRhythms recomputes the pacing verdict for every live session
	// and applies it to the owning student when it changed. Called by the
	// polling coordinator.
	ReevaluateRhythms(ctx context.Context, now time.Time)
}

type sessionService struct {
	store             *roster.Store
	logger            *zap.Logger
	loggedInTrainerID int64
	now               func() time.Time
}

// NewSessionService creates the session lifecycle manager.
// loggedInTrainerID is the trainer assigned as responsible when a session
// starts with nobody claimed.
func NewSessionService(store *roster.Store, logger *zap.Logger, loggedInTrainerID int64) SessionService {
	return &sessionService{
		store:             store,
		logger:            logger,
		loggedInTrainerID: loggedInTrainerID,
		now:               time.Now,
	}
}

// Enqueue moves an available student into the waiting queue. No session is
// created.
func (s *sessionService) Enqueue(ctx context.Context, studentID int64) error {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		s.logger.Warn("enqueue: student lookup failed", zap.Int64("studentId", studentID))
		return ErrStudentNotFound
	}
	if student.Status != domain.StatusAvailable {
		s.logger.Warn("enqueue: student not available",
			zap.Int64("studentId", studentID),
			zap.String("status", string(student.Status)))
		return ErrInvalidTransition
	}
	now := s.now()
	return s.store.UpdateStudent(studentID, func(st *domain.Student) {
		st.Status = domain.StatusQueued
		st.StatusChangedAt = now
		st.TrainerID = nil
		st.Rhythm = nil
	})
}

// StartSession snapshots the plan's exercises into a new ActiveSession and
// moves the student into training. Any prior session for the student is
// replaced (last write wins). The logged-in trainer becomes responsible if
// nobody is yet.
func (s *sessionService) StartSession(ctx context.Context, studentID, planID int64) (domain.ActiveSession, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		s.logger.Warn("start session: student lookup failed", zap.Int64("studentId", studentID))
		return domain.ActiveSession{}, ErrStudentNotFound
	}
	plan := student.PlanByID(planID)
	if plan == nil {
		s.logger.Warn("start session: plan lookup failed",
			zap.Int64("studentId", studentID), zap.Int64("planId", planID))
		return domain.ActiveSession{}, ErrPlanNotFound
	}
	if !plan.Active {
		return domain.ActiveSession{}, ErrPlanInactive
	}

	now := s.now()
	session := domain.ActiveSession{
		StudentID: studentID,
		PlanID:    planID,
		StartTime: now,
		Exercises: snapshotExercises(plan),
	}
	s.store.ReplaceSession(session)

	trainerID := s.loggedInTrainerID
	if student.TrainerID != nil {
		trainerID = *student.TrainerID
	}
	onPace := domain.RhythmOnPace
	err = s.store.UpdateStudent(studentID, func(st *domain.Student) {
		if st.Status != domain.StatusTraining {
			st.Status = domain.StatusTraining
			st.StatusChangedAt = now
		}
		st.TrainerID = &trainerID
		st.Rhythm = &onPace
	})
	if err != nil {
		return domain.ActiveSession{}, ErrStudentNotFound
	}

	s.logger.Info("session started",
		zap.Int64("studentId", studentID),
		zap.Int64("planId", planID),
		zap.Int("exercises", len(session.Exercises)))
	return session, nil
}

// ClaimSession reassigns the responsible trainer for a running session.
// The session itself and its timestamps are untouched.
func (s *sessionService) ClaimSession(ctx context.Context, studentID, trainerID int64) error {
	if _, err := s.store.TrainerByID(trainerID); err != nil {
		s.logger.Warn("claim session: trainer lookup failed", zap.Int64("trainerId", trainerID))
		return err
	}
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		s.logger.Warn("claim session: student lookup failed", zap.Int64("studentId", studentID))
		return ErrStudentNotFound
	}
	if student.Status != domain.StatusTraining {
		return ErrInvalidTransition
	}
	if student.TrainerID != nil && *student.TrainerID == trainerID {
		return ErrAlreadyResponsible
	}
	return s.store.UpdateStudent(studentID, func(st *domain.Student) {
		st.TrainerID = &trainerID
	})
}

// UpdateExerciseStatus sets one live exercise's status. Marking an exercise
// in progress reverts any other in-progress exercise to not started, so at
// most one exercise runs at a time per session.
func (s *sessionService) UpdateExerciseStatus(ctx context.Context, studentID int64, entryID uuid.UUID, status domain.ExerciseStatus) error {
	found := false
	err := s.store.UpdateSession(studentID, func(sess *domain.ActiveSession) {
		for i := range sess.Exercises {
			if sess.Exercises[i].EntryID == entryID {
				sess.Exercises[i].Status = status
				found = true
			} else if status == domain.ExerciseInProgress && sess.Exercises[i].Status == domain.ExerciseInProgress {
				sess.Exercises[i].Status = domain.ExerciseNotStarted
			}
		}
	})
	if err != nil {
		s.logger.Warn("update exercise: session lookup failed", zap.Int64("studentId", studentID))
		return ErrSessionNotFound
	}
	if !found {
		s.logger.Warn("update exercise: entry not in session",
			zap.Int64("studentId", studentID), zap.String("entryId", entryID.String()))
		return ErrExerciseNotFound
	}
	return nil
}

// RemoveExerciseFromSession drops a live exercise from the session only.
// The underlying plan keeps the slot. Destructive, so confirmation-gated.
func (s *sessionService) RemoveExerciseFromSession(ctx context.Context, studentID int64, entryID uuid.UUID, confirm Confirmer) error {
	if !confirm.Confirm("Tem certeza que deseja excluir este exercício do treino?") {
		return ErrConfirmationDeclined
	}
	found := false
	err := s.store.UpdateSession(studentID, func(sess *domain.ActiveSession) {
		kept := sess.Exercises[:0]
		for _, ex := range sess.Exercises {
			if ex.EntryID == entryID {
				found = true
				continue
			}
			kept = append(kept, ex)
		}
		sess.Exercises = kept
	})
	if err != nil {
		s.logger.Warn("remove exercise: session lookup failed", zap.Int64("studentId", studentID))
		return ErrSessionNotFound
	}
	if !found {
		return ErrExerciseNotFound
	}
	return nil
}

// FinishSession records the outcome against the executed plan, appends a
// history entry, clears the session and returns the student to available.
// Outcome is complete only when every exercise of the plan was done.
func (s *sessionService) FinishSession(ctx context.Context, studentID int64) (*domain.HistoryEntry, error) {
	session, err := s.store.SessionByStudent(studentID)
	if err != nil {
		s.logger.Warn("finish session: session lookup failed", zap.Int64("studentId", studentID))
		return nil, ErrSessionNotFound
	}
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		s.logger.Warn("finish session: student lookup failed", zap.Int64("studentId", studentID))
		return nil, ErrStudentNotFound
	}

	now := s.now()
	var entry *domain.HistoryEntry
	if plan := student.PlanByID(session.PlanID); plan != nil {
		outcome := domain.OutcomeIncomplete
		if session.DoneCount() == len(plan.Exercises) {
			outcome = domain.OutcomeComplete
		}
		entry = &domain.HistoryEntry{
			ID:       uuid.New(),
			Date:     now,
			PlanID:   plan.ID,
			PlanName: plan.Name,
			Outcome:  outcome,
		}
	} else {
		// Plan deleted mid-session: no history to record, but the session
		// still tears down.
		s.logger.Warn("finish session: executed plan no longer exists",
			zap.Int64("studentId", studentID), zap.Int64("planId", session.PlanID))
	}

	err = s.store.UpdateStudent(studentID, func(st *domain.Student) {
		if entry != nil {
			st.History = append(st.History, *entry)
		}
		st.Status = domain.StatusAvailable
		st.StatusChangedAt = now
		st.TrainerID = nil
		st.Rhythm = nil
	})
	if err != nil {
		return nil, ErrStudentNotFound
	}
	s.store.RemoveSession(studentID)

	s.logger.Info("session finished", zap.Int64("studentId", studentID))
	return entry, nil
}

// BootstrapSessions backfills sessions for students seeded as training.
// Start time is the status timestamp, so elapsed time stays meaningful.
func (s *sessionService) BootstrapSessions(ctx context.Context) error {
	for _, student := range s.store.Students() {
		if student.Status != domain.StatusTraining {
			continue
		}
		if _, err := s.store.SessionByStudent(student.ID); err == nil {
			continue
		}
		active := student.ActivePlans()
		if len(active) == 0 {
			s.logger.Warn("bootstrap: training student has no active plan",
				zap.Int64("studentId", student.ID))
			continue
		}
		plan := active[0]
		s.store.ReplaceSession(domain.ActiveSession{
			StudentID: student.ID,
			PlanID:    plan.ID,
			StartTime: student.StatusChangedAt,
			Exercises: snapshotExercises(&plan),
		})
		s.logger.Info("bootstrap session created",
			zap.Int64("studentId", student.ID), zap.Int64("planId", plan.ID))
	}
	return nil
}

// ReevaluateRhythms snapshots students and sessions together, computes the
// verdict per session against the executed plan's exercise count, then
// applies only actual changes, and only while a trainer is responsible.
func (s *sessionService) ReevaluateRhythms(ctx context.Context, now time.Time) {
	students, sessions := s.store.Snapshot()
	byID := make(map[int64]*domain.Student, len(students))
	for i := range students {
		byID[students[i].ID] = &students[i]
	}

	for _, session := range sessions {
		student, ok := byID[session.StudentID]
		if !ok {
			continue
		}
		total := 0
		if plan := student.PlanByID(session.PlanID); plan != nil {
			total = len(plan.Exercises)
		}
		verdict := rhythm.Calculate(now, session.StartTime, session.StartedCount(), total)
		if student.TrainerID == nil || (student.Rhythm != nil && *student.Rhythm == verdict) {
			continue
		}
		studentID := session.StudentID
		_ = s.store.UpdateStudent(studentID, func(st *domain.Student) {
			// Re-check under the lock: the student may have left training
			// between snapshot and commit.
			if st.Status != domain.StatusTraining || st.TrainerID == nil {
				return
			}
			v := verdict
			st.Rhythm = &v
		})
	}
}

func snapshotExercises(plan *domain.Plan) []domain.LiveExercise {
	exercises := make([]domain.LiveExercise, len(plan.Exercises))
	for i, ex := range plan.Exercises {
		exercises[i] = domain.LiveExercise{
			EntryID:   ex.EntryID,
			LibraryID: ex.LibraryID,
			Status:    domain.ExerciseNotStarted,
		}
	}
	return exercises
}
