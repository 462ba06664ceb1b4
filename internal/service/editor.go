package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"alcyxob/gym-frontdesk/internal/domain"
	"alcyxob/gym-frontdesk/internal/validation"
)

// ExerciseField names an editable field of a plan exercise slot.
type ExerciseField string

const (
	FieldName        ExerciseField = "name"
	FieldSeries      ExerciseField = "series"
	FieldRepetitions ExerciseField = "repetitions"
	FieldLoad        ExerciseField = "load"
	FieldNotes       ExerciseField = "notes"
)

// PlanDraft is a plan being edited, detached from the roster until saved.
// Errors is the current field-keyed validation error map; editing a field
// clears that field's error, mirroring how the editor surfaces feedback.
type PlanDraft struct {
	StudentID int64
	Plan      domain.Plan
	Errors    map[string]string

	library []domain.LibraryExercise
}

// AddBlankExercise appends an empty slot to the draft.
func (d *PlanDraft) AddBlankExercise() {
	d.Plan.Exercises = append(d.Plan.Exercises, domain.PlanExercise{
		EntryID: uuid.New(),
	})
}

// RemoveExercise drops the slot with the given entry id from the draft.
func (d *PlanDraft) RemoveExercise(entryID uuid.UUID) {
	kept := d.Plan.Exercises[:0]
	for _, ex := range d.Plan.Exercises {
		if ex.EntryID != entryID {
			kept = append(kept, ex)
		}
	}
	d.Plan.Exercises = kept
}

// SetName updates the draft plan's name and clears its pending error.
func (d *PlanDraft) SetName(name string) {
	d.Plan.Name = name
	delete(d.Errors, "planName")
}

// UpdateField sets one field of the slot at index and clears that field's
// pending error. Out-of-range indexes are ignored.
func (d *PlanDraft) UpdateField(index int, field ExerciseField, value string) {
	if index < 0 || index >= len(d.Plan.Exercises) {
		return
	}
	delete(d.Errors, fmt.Sprintf("exercises[%d].%s", index, field))

	ex := &d.Plan.Exercises[index]
	switch field {
	case FieldName:
		ex.Name = value
	case FieldSeries:
		ex.Series = value
	case FieldRepetitions:
		ex.Repetitions = value
	case FieldLoad:
		ex.Load = value
	case FieldNotes:
		ex.Notes = value
	}
}

// SelectSuggestion binds the slot at index to a library exercise, replacing
// both the display name and the library reference. Selecting an exercise
// already present in another slot of the same draft is rejected with an
// error on this slot's name field, leaving the slot unchanged.
func (d *PlanDraft) SelectSuggestion(index int, suggestion domain.LibraryExercise) bool {
	if index < 0 || index >= len(d.Plan.Exercises) {
		return false
	}
	key := fmt.Sprintf("exercises[%d].name", index)
	for i, ex := range d.Plan.Exercises {
		if i != index && ex.LibraryID == suggestion.ID {
			if d.Errors == nil {
				d.Errors = map[string]string{}
			}
			d.Errors[key] = "Este exercício já está no plano."
			return false
		}
	}
	delete(d.Errors, key)
	d.Plan.Exercises[index].Name = suggestion.Name
	d.Plan.Exercises[index].LibraryID = suggestion.ID
	return true
}

// Suggestions returns library entries matching the query, accent, case and
// whitespace insensitive. An empty query yields no suggestions.
func (d *PlanDraft) Suggestions(query string) []domain.LibraryExercise {
	normalized := validation.Normalize(query)
	if normalized == "" {
		return nil
	}
	var matches []domain.LibraryExercise
	for _, entry := range d.library {
		if strings.Contains(validation.Normalize(entry.Name), normalized) {
			matches = append(matches, entry)
		}
	}
	return matches
}

// Validate runs the plan validation rules against the draft and records the
// resulting error map on the draft.
func (d *PlanDraft) Validate() validation.Result {
	result := validation.ValidatePlan(d.Plan, d.library)
	d.Errors = result.Errors
	return result
}
