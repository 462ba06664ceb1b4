// Package validation holds the pure checks that gate plan and exercise
// edits before they are committed to the roster. Nothing here mutates state;
// failures come back as field-keyed error maps.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"alcyxob/gym-frontdesk/internal/domain"
)

// Result is the outcome of a validation pass. Errors is keyed by field:
// "series", "repetitions", "planName", "form" or "exercises[i].name".
type Result struct {
	Valid  bool
	Errors map[string]string
}

func newResult(errors map[string]string) Result {
	return Result{Valid: len(errors) == 0, Errors: errors}
}

// stripAccents removes combining marks after NFD decomposition, so
// "Elevação" and "Elevacao" compare equal.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a name for matching: diacritics stripped,
// lowercased, trimmed, internal whitespace collapsed. Used both for
// validation and autocomplete suggestion matching.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		out = s
	}
	out = strings.ToLower(strings.TrimSpace(out))
	return strings.Join(strings.Fields(out), " ")
}

// ValidateExercise checks a single exercise's execution fields: series must
// be present and numeric, repetitions must be present.
func ValidateExercise(ex domain.PlanExercise) Result {
	errors := map[string]string{}

	series := strings.TrimSpace(ex.Series)
	if series == "" {
		errors["series"] = "Obrigatório e numérico"
	} else if _, err := strconv.ParseFloat(series, 64); err != nil {
		errors["series"] = "Obrigatório e numérico"
	}

	if strings.TrimSpace(ex.Repetitions) == "" {
		errors["repetitions"] = "Obrigatório"
	}

	return newResult(errors)
}

// ValidatePlan checks a plan before save: the name must be non-empty, the
// plan must hold at least one exercise, and every exercise name must match
// an entry in the library (accent, case and whitespace insensitive).
func ValidatePlan(plan domain.Plan, library []domain.LibraryExercise) Result {
	errors := map[string]string{}

	if strings.TrimSpace(plan.Name) == "" {
		errors["planName"] = "Nome do plano é obrigatório"
	}

	if len(plan.Exercises) == 0 {
		errors["form"] = "O plano deve ter pelo menos um exercício."
	}

	for i, ex := range plan.Exercises {
		key := fmt.Sprintf("exercises[%d].name", i)
		if strings.TrimSpace(ex.Name) == "" {
			errors[key] = "Nome do exercício é obrigatório"
			continue
		}
		if !libraryContains(library, ex.Name) {
			errors[key] = "Selecione um exercício válido da lista de sugestões."
		}
	}

	return newResult(errors)
}

func libraryContains(library []domain.LibraryExercise, name string) bool {
	want := Normalize(name)
	for _, entry := range library {
		if Normalize(entry.Name) == want {
			return true
		}
	}
	return false
}
