package domain

import (
	"time"
)

// StudentStatus tracks where a student is in the front-desk flow.
type StudentStatus string

const (
	StatusAvailable StudentStatus = "available"
	StatusQueued    StudentStatus = "queued"
	StatusTraining  StudentStatus = "training"
)

// Rhythm is the pacing verdict for a student currently training.
type Rhythm string

const (
	RhythmOnPace Rhythm = "on_pace"
	RhythmLate   Rhythm = "late"
)

// Student is a gym member ("aluno") tracked on the dashboard.
//
// Invariants, enforced by every status transition:
//   - TrainerID is set if and only if Status == StatusTraining.
//   - Rhythm is set only while Status == StatusTraining and TrainerID is set.
type Student struct {
	ID              int64
	Name            string
	Status          StudentStatus
	TrainerID       *int64 // responsible trainer, only while training
	Rhythm          *Rhythm
	StatusChangedAt time.Time
	Plans           []Plan
	History         []HistoryEntry // append-only
}

// ActivePlans returns the plans eligible to start a session.
func (s *Student) ActivePlans() []Plan {
	var active []Plan
	for _, p := range s.Plans {
		if p.Active {
			active = append(active, p)
		}
	}
	return active
}

// PlanByID returns the student's plan with the given id, or nil.
func (s *Student) PlanByID(planID int64) *Plan {
	for i := range s.Plans {
		if s.Plans[i].ID == planID {
			return &s.Plans[i]
		}
	}
	return nil
}

// CheckInvariants reports whether the training/trainer/rhythm coupling holds.
func (s *Student) CheckInvariants() bool {
	if (s.Status == StatusTraining) != (s.TrainerID != nil) {
		return false
	}
	if s.Rhythm != nil && (s.Status != StatusTraining || s.TrainerID == nil) {
		return false
	}
	return true
}

// Clone returns a deep copy so snapshots never share slices with the store.
func (s Student) Clone() Student {
	out := s
	if s.TrainerID != nil {
		id := *s.TrainerID
		out.TrainerID = &id
	}
	if s.Rhythm != nil {
		r := *s.Rhythm
		out.Rhythm = &r
	}
	out.Plans = make([]Plan, len(s.Plans))
	for i, p := range s.Plans {
		out.Plans[i] = p.Clone()
	}
	out.History = append([]HistoryEntry(nil), s.History...)
	return out
}
