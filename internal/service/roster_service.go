package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alcyxob/gym-frontdesk/internal/domain"
	"alcyxob/gym-frontdesk/internal/roster"
	"alcyxob/gym-frontdesk/internal/validation"
)

var (
	ErrTrainerNotFound  = errors.New("trainer not found")
	ErrValidationFailed = errors.New("validation failed")
)

// historyWindowDays is how far back the merged history view reaches.
const historyWindowDays = 30

// StudentFilter narrows the roster snapshot handed to the presentation
// layer. Zero value means no filtering.
type StudentFilter struct {
	Status   *domain.StudentStatus
	MineOnly bool   // only students whose responsible trainer is the logged-in one
	Name     string // case-insensitive substring match
}

// TrainerProfileUpdate carries editable trainer profile fields.
type TrainerProfileUpdate struct {
	Name       string
	License    *string
	NationalID string
}

// RosterService is the mutation surface over students, plans, exercises and
// trainers. Plan edits go through PlanDraft and are gated by the validation
// engine on save.
type RosterService interface {
	Students(filter StudentFilter) []domain.Student
	Trainers() []domain.Trainer
	Library() []domain.LibraryExercise
	History(ctx context.Context, studentID int64) ([]domain.HistoryEntry, error)

	NewPlanDraft(ctx context.Context, studentID int64) (*PlanDraft, error)
	EditPlanDraft(ctx context.Context, studentID, planID int64) (*PlanDraft, error)
	SavePlan(ctx context.Context, draft *PlanDraft) (validation.Result, error)
	SaveExercise(ctx context.Context, studentID, planID int64, exercise domain.PlanExercise) (validation.Result, error)
	TogglePlanActive(ctx context.Context, studentID, planID int64) error
	DeletePlan(ctx context.Context, studentID, planID int64, confirm Confirmer) error
	DeleteExerciseFromPlan(ctx context.Context, studentID, planID int64, entryID uuid.UUID, confirm Confirmer) error

	UpdateTrainerProfile(ctx context.Context, trainerID int64, update TrainerProfileUpdate) error
	ToggleInternFlag(ctx context.Context, trainerID int64) error
	ToggleTrainerStatus(ctx context.Context, trainerID int64) error
	ResetTrainerPassword(ctx context.Context, trainerID int64, confirm Confirmer) (string, error)

	ImportStudents(ctx context.Context, names []string) (int, error)
}

type rosterService struct {
	store             *roster.Store
	logger            *zap.Logger
	loggedInTrainerID int64
	now               func() time.Time

	// Licenses cleared by the intern toggle are cached here so toggling
	// back restores the prior value.
	licenseMu    sync.Mutex
	licenseCache map[int64]string
}

// NewRosterService creates the roster mutation engine.
func NewRosterService(store *roster.Store, logger *zap.Logger, loggedInTrainerID int64) RosterService {
	return &rosterService{
		store:             store,
		logger:            logger,
		loggedInTrainerID: loggedInTrainerID,
		now:               time.Now,
		licenseCache:      map[int64]string{},
	}
}

// Students returns a filtered snapshot of the roster.
func (s *rosterService) Students(filter StudentFilter) []domain.Student {
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	var out []domain.Student
	for _, student := range s.store.Students() {
		if filter.Status != nil && student.Status != *filter.Status {
			continue
		}
		if filter.MineOnly && (student.TrainerID == nil || *student.TrainerID != s.loggedInTrainerID) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(student.Name), name) {
			continue
		}
		out = append(out, student)
	}
	return out
}

func (s *rosterService) Trainers() []domain.Trainer { return s.store.Trainers() }

func (s *rosterService) Library() []domain.LibraryExercise { return s.store.Library() }

// History returns the student's last 30 days, newest first. Days without a
// recorded workout get a synthetic not-done entry so the view always shows
// a full window.
func (s *rosterService) History(ctx context.Context, studentID int64) ([]domain.HistoryEntry, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		s.logger.Warn("history: student lookup failed", zap.Int64("studentId", studentID))
		return nil, ErrStudentNotFound
	}

	now := s.now()
	var out []domain.HistoryEntry
	for i := 0; i < historyWindowDays; i++ {
		day := now.AddDate(0, 0, -i)
		matched := false
		for _, entry := range student.History {
			if sameDay(entry.Date, day) {
				out = append(out, entry)
				matched = true
			}
		}
		if !matched {
			out = append(out, domain.HistoryEntry{
				Date:     day,
				PlanName: "Não houve treino",
				Outcome:  domain.OutcomeNotDone,
			})
		}
	}
	return out, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NewPlanDraft opens a blank plan for the student: empty name, active, one
// blank exercise already in edit mode.
func (s *rosterService) NewPlanDraft(ctx context.Context, studentID int64) (*PlanDraft, error) {
	if _, err := s.store.StudentByID(studentID); err != nil {
		s.logger.Warn("new plan: student lookup failed", zap.Int64("studentId", studentID))
		return nil, ErrStudentNotFound
	}
	draft := &PlanDraft{
		StudentID: studentID,
		Plan: domain.Plan{
			ID:     s.store.NextPlanID(),
			Active: true,
		},
		Errors:  map[string]string{},
		library: s.store.Library(),
	}
	draft.AddBlankExercise()
	return draft, nil
}

// EditPlanDraft opens an existing plan for editing. The draft works on a
// copy; the roster only changes on SavePlan.
func (s *rosterService) EditPlanDraft(ctx context.Context, studentID, planID int64) (*PlanDraft, error) {
	student, err := s.store.StudentByID(studentID)
	if err != nil {
		s.logger.Warn("edit plan: student lookup failed", zap.Int64("studentId", studentID))
		return nil, ErrStudentNotFound
	}
	plan := student.PlanByID(planID)
	if plan == nil {
		s.logger.Warn("edit plan: plan lookup failed",
			zap.Int64("studentId", studentID), zap.Int64("planId", planID))
		return nil, ErrPlanNotFound
	}
	return &PlanDraft{
		StudentID: studentID,
		Plan:      plan.Clone(),
		Errors:    map[string]string{},
		library:   s.store.Library(),
	}, nil
}

// SavePlan validates the draft and commits it: a plan id already present on
// the student is replaced, otherwise the plan is appended. On validation
// failure nothing is written and the error map is returned for the editor.
func (s *rosterService) SavePlan(ctx context.Context, draft *PlanDraft) (validation.Result, error) {
	result := draft.Validate()
	if !result.Valid {
		return result, ErrValidationFailed
	}

	plan := draft.Plan.Clone()
	err := s.store.UpdateStudent(draft.StudentID, func(st *domain.Student) {
		for i := range st.Plans {
			if st.Plans[i].ID == plan.ID {
				st.Plans[i] = plan
				return
			}
		}
		st.Plans = append(st.Plans, plan)
	})
	if err != nil {
		s.logger.Warn("save plan: student lookup failed", zap.Int64("studentId", draft.StudentID))
		return result, ErrStudentNotFound
	}
	s.logger.Info("plan saved",
		zap.Int64("studentId", draft.StudentID), zap.Int64("planId", plan.ID))
	return result, nil
}

// SaveExercise commits a single exercise edit into a plan, gated by the
// exercise validation rules. The slot is matched by its stable entry id.
func (s *rosterService) SaveExercise(ctx context.Context, studentID, planID int64, exercise domain.PlanExercise) (validation.Result, error) {
	result := validation.ValidateExercise(exercise)
	if !result.Valid {
		return result, ErrValidationFailed
	}

	found := false
	err := s.store.UpdateStudent(studentID, func(st *domain.Student) {
		plan := st.PlanByID(planID)
		if plan == nil {
			return
		}
		if slot := plan.ExerciseByEntry(exercise.EntryID); slot != nil {
			*slot = exercise
			found = true
		}
	})
	if err != nil {
		s.logger.Warn("save exercise: student lookup failed", zap.Int64("studentId", studentID))
		return result, ErrStudentNotFound
	}
	if !found {
		s.logger.Warn("save exercise: slot lookup failed",
			zap.Int64("studentId", studentID), zap.Int64("planId", planID))
		return result, ErrExerciseNotFound
	}
	return result, nil
}

// TogglePlanActive flips a plan's active flag.
func (s *rosterService) TogglePlanActive(ctx context.Context, studentID, planID int64) error {
	found := false
	err := s.store.UpdateStudent(studentID, func(st *domain.Student) {
		if plan := st.PlanByID(planID); plan != nil {
			plan.Active = !plan.Active
			found = true
		}
	})
	if err != nil {
		s.logger.Warn("toggle plan: student lookup failed", zap.Int64("studentId", studentID))
		return ErrStudentNotFound
	}
	if !found {
		s.logger.Warn("toggle plan: plan lookup failed",
			zap.Int64("studentId", studentID), zap.Int64("planId", planID))
		return ErrPlanNotFound
	}
	return nil
}

// DeletePlan removes a plan from the student. Confirmation-gated.
func (s *rosterService) DeletePlan(ctx context.Context, studentID, planID int64, confirm Confirmer) error {
	if !confirm.Confirm("Tem certeza que deseja excluir este plano? Esta ação não pode ser desfeita.") {
		return ErrConfirmationDeclined
	}
	found := false
	err := s.store.UpdateStudent(studentID, func(st *domain.Student) {
		kept := st.Plans[:0]
		for _, p := range st.Plans {
			if p.ID == planID {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		st.Plans = kept
	})
	if err != nil {
		s.logger.Warn("delete plan: student lookup failed", zap.Int64("studentId", studentID))
		return ErrStudentNotFound
	}
	if !found {
		return ErrPlanNotFound
	}
	return nil
}

// DeleteExerciseFromPlan removes one slot from a saved plan (manage-plans
// screen). Confirmation-gated; live sessions are unaffected.
func (s *rosterService) DeleteExerciseFromPlan(ctx context.Context, studentID, planID int64, entryID uuid.UUID, confirm Confirmer) error {
	if !confirm.Confirm("Tem certeza que deseja excluir este exercício do plano? Esta ação não pode ser desfeita.") {
		return ErrConfirmationDeclined
	}
	found := false
	err := s.store.UpdateStudent(studentID, func(st *domain.Student) {
		plan := st.PlanByID(planID)
		if plan == nil {
			return
		}
		kept := plan.Exercises[:0]
		for _, ex := range plan.Exercises {
			if ex.EntryID == entryID {
				found = true
				continue
			}
			kept = append(kept, ex)
		}
		plan.Exercises = kept
	})
	if err != nil {
		s.logger.Warn("delete exercise: student lookup failed", zap.Int64("studentId", studentID))
		return ErrStudentNotFound
	}
	if !found {
		s.logger.Warn("delete exercise: slot lookup failed",
			zap.Int64("studentId", studentID), zap.Int64("planId", planID))
		return ErrExerciseNotFound
	}
	return nil
}

// UpdateTrainerProfile edits the trainer's profile fields. A license passed
// here supersedes any value cached by the intern toggle.
func (s *rosterService) UpdateTrainerProfile(ctx context.Context, trainerID int64, update TrainerProfileUpdate) error {
	err := s.store.UpdateTrainer(trainerID, func(t *domain.Trainer) {
		t.Name = update.Name
		t.NationalID = update.NationalID
		if !t.Intern {
			t.License = update.License
		}
	})
	if err != nil {
		s.logger.Warn("update trainer: lookup failed", zap.Int64("trainerId", trainerID))
		return ErrTrainerNotFound
	}
	return nil
}

// ToggleInternFlag flips the intern flag. Becoming an intern clears the
// license number (interns have none); leaving internship restores the value
// cached when it was cleared.
func (s *rosterService) ToggleInternFlag(ctx context.Context, trainerID int64) error {
	s.licenseMu.Lock()
	defer s.licenseMu.Unlock()

	err := s.store.UpdateTrainer(trainerID, func(t *domain.Trainer) {
		if t.Intern {
			t.Intern = false
			if cached, ok := s.licenseCache[trainerID]; ok {
				t.License = &cached
				delete(s.licenseCache, trainerID)
			}
		} else {
			t.Intern = true
			if t.License != nil {
				s.licenseCache[trainerID] = *t.License
			}
			t.License = nil
		}
	})
	if err != nil {
		s.logger.Warn("toggle intern: lookup failed", zap.Int64("trainerId", trainerID))
		return ErrTrainerNotFound
	}
	return nil
}

// ToggleTrainerStatus flips the trainer between active and inactive.
func (s *rosterService) ToggleTrainerStatus(ctx context.Context, trainerID int64) error {
	err := s.store.UpdateTrainer(trainerID, func(t *domain.Trainer) {
		if t.Status == domain.TrainerActive {
			t.Status = domain.TrainerInactive
		} else {
			t.Status = domain.TrainerActive
		}
	})
	if err != nil {
		s.logger.Warn("toggle status: lookup failed", zap.Int64("trainerId", trainerID))
		return ErrTrainerNotFound
	}
	return nil
}

// ResetTrainerPassword generates an opaque one-time token for the trainer.
// Display-only: there is no credential store behind it. Confirmation-gated.
func (s *rosterService) ResetTrainerPassword(ctx context.Context, trainerID int64, confirm Confirmer) (string, error) {
	if _, err := s.store.TrainerByID(trainerID); err != nil {
		s.logger.Warn("reset password: lookup failed", zap.Int64("trainerId", trainerID))
		return "", ErrTrainerNotFound
	}
	if !confirm.Confirm("Tem certeza que deseja redefinir a senha deste PEF?") {
		return "", ErrConfirmationDeclined
	}
	token := uuid.NewString()
	s.logger.Info("password reset token issued", zap.Int64("trainerId", trainerID))
	return token, nil
}

// ImportStudents synthesizes a student per parsed name and merges them into
// the roster: fresh id, available, empty plans and history. Blank names are
// skipped; an id collision (should not happen with counter-generated ids)
// skips the row rather than overwriting.
func (s *rosterService) ImportStudents(ctx context.Context, names []string) (int, error) {
	now := s.now()
	var students []domain.Student
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		students = append(students, domain.Student{
			ID:              s.store.NextStudentID(),
			Name:            name,
			Status:          domain.StatusAvailable,
			StatusChangedAt: now,
		})
	}
	added := s.store.AppendStudents(students)
	s.logger.Info("students imported", zap.Int("added", added), zap.Int("parsed", len(names)))
	return added, nil
}
