package domain

import "github.com/google/uuid"

// Plan is a named, ordered list of exercises ("plano de treino").
type Plan struct {
	ID        int64
	Name      string
	Active    bool
	Exercises []PlanExercise
}

// PlanExercise is one slot in a plan.
//
// EntryID is the slot's own stable identity; LibraryID points at the library
// exercise the slot currently refers to and changes when the user picks a
// different suggestion. Keeping the two apart means re-picking an exercise
// never churns the slot's identity.
type PlanExercise struct {
	EntryID     uuid.UUID
	LibraryID   int64
	Name        string // resolved from the library when empty
	Series      string // numeric or a range like "10-12"
	Repetitions string
	Load        string
	Notes       string
}

// ExerciseByEntry returns the slot with the given entry id, or nil.
func (p *Plan) ExerciseByEntry(entryID uuid.UUID) *PlanExercise {
	for i := range p.Exercises {
		if p.Exercises[i].EntryID == entryID {
			return &p.Exercises[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	out := p
	out.Exercises = append([]PlanExercise(nil), p.Exercises...)
	return out
}

// LibraryExercise is a canonical entry in the fixed exercise catalog.
// Read-only reference data, static for the lifetime of the process.
type LibraryExercise struct {
	ID   int64
	Name string
}
