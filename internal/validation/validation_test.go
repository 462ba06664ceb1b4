package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/gym-frontdesk/internal/domain"
)

var testLibrary = []domain.LibraryExercise{
	{ID: 104, Name: "Elevação Frontal"},
	{ID: 119, Name: "Supino Reto com Barra"},
	{ID: 148, Name: "Leg Press 45°"},
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Elevação Frontal", "elevacao frontal"},
		{"  elevacao   FRONTAL  ", "elevacao frontal"},
		{"SUPINO RETO COM BARRA", "supino reto com barra"},
		{"Tríceps  Pulley", "triceps pulley"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestValidateExercise(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		result := ValidateExercise(domain.PlanExercise{Series: "3", Repetitions: "10"})
		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing series", func(t *testing.T) {
		result := ValidateExercise(domain.PlanExercise{Series: "  ", Repetitions: "10"})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "series")
	})

	t.Run("non-numeric series", func(t *testing.T) {
		result := ValidateExercise(domain.PlanExercise{Series: "10-12", Repetitions: "10"})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "series")
	})

	t.Run("missing repetitions", func(t *testing.T) {
		result := ValidateExercise(domain.PlanExercise{Series: "3", Repetitions: ""})
		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "repetitions")
		assert.NotContains(t, result.Errors, "series")
	})
}

func TestValidatePlanEmpty(t *testing.T) {
	result := ValidatePlan(domain.Plan{Name: "", Exercises: nil}, testLibrary)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "planName")
	assert.Contains(t, result.Errors, "form")
}

func TestValidatePlanValid(t *testing.T) {
	plan := domain.Plan{
		Name: "X",
		Exercises: []domain.PlanExercise{
			{LibraryID: 119, Name: "Supino Reto com Barra", Series: "3", Repetitions: "10"},
		},
	}

	result := ValidatePlan(plan, testLibrary)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidatePlanExerciseNames(t *testing.T) {
	plan := domain.Plan{
		Name: "Treino A",
		Exercises: []domain.PlanExercise{
			{Name: "supino reto com BARRA", Series: "3", Repetitions: "10"}, // normalizes to a library entry
			{Name: "", Series: "3", Repetitions: "10"},
			{Name: "Exercício Inventado", Series: "3", Repetitions: "10"},
		},
	}

	result := ValidatePlan(plan, testLibrary)

	require.False(t, result.Valid)
	assert.NotContains(t, result.Errors, "exercises[0].name")
	assert.Equal(t, "Nome do exercício é obrigatório", result.Errors["exercises[1].name"])
	assert.Equal(t, "Selecione um exercício válido da lista de sugestões.", result.Errors["exercises[2].name"])
}

func TestValidatePlanAccentInsensitiveMatch(t *testing.T) {
	plan := domain.Plan{
		Name: "Pernas",
		Exercises: []domain.PlanExercise{
			{Name: "elevacao frontal", Series: "4", Repetitions: "12"},
		},
	}

	result := ValidatePlan(plan, testLibrary)

	assert.True(t, result.Valid)
}
