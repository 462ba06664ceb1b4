// Package seed carries the static dataset the roster is initialized from at
// startup: the trainer staff, the fixed exercise catalog and the initial
// students with their plans. The data is embedded at build time; nothing is
// loaded from disk and nothing here changes while the process runs.
package seed

import (
	"time"

	"github.com/google/uuid"

	"alcyxob/gym-frontdesk/internal/domain"
)

// LoggedInTrainerID designates the trainer considered "logged in" for the
// whole process. Not a real auth system.
const LoggedInTrainerID int64 = 1

func strPtr(s string) *string { return &s }

// Trainers returns the staff roster.
func Trainers() []domain.Trainer {
	return []domain.Trainer{
		{
			ID:         1,
			Name:       "Carlos Andrade",
			Intern:     false,
			License:    strPtr("012345-G/RJ"),
			Roles:      []domain.Role{domain.RoleTrainer, domain.RoleAdmin},
			Status:     domain.TrainerActive,
			NationalID: "123.456.789-01",
		},
		{
			ID:         2,
			Name:       "Fernanda Lima",
			Intern:     false,
			License:    strPtr("023456-G/RJ"),
			Roles:      []domain.Role{domain.RoleTrainer},
			Status:     domain.TrainerActive,
			NationalID: "234.567.890-12",
		},
		{
			ID:         3,
			Name:       "Bruno Costa",
			Intern:     true,
			License:    nil,
			Roles:      []domain.Role{domain.RoleTrainer},
			Status:     domain.TrainerActive,
			NationalID: "345.678.901-23",
		},
	}
}

// Library returns the canonical exercise catalog.
func Library() []domain.LibraryExercise {
	return []domain.LibraryExercise{
		{ID: 101, Name: "Crossover"},
		{ID: 102, Name: "Remada Alta"},
		{ID: 103, Name: "Voador Peitoral"},
		{ID: 104, Name: "Elevação Frontal"},
		{ID: 105, Name: "Supino 45º"},
		{ID: 106, Name: "Abdução de Ombro"},
		{ID: 107, Name: "Tríceps Francês"},
		{ID: 108, Name: "Tríceps Testa"},
		{ID: 109, Name: "Tríceps Pulley"},
		{ID: 110, Name: "Pullover"},
		{ID: 111, Name: "Bíceps 35º"},
		{ID: 112, Name: "Remada na Polia Baixa"},
		{ID: 113, Name: "Rosca Bíceps na Corda"},
		{ID: 114, Name: "Remada no banco 35º"},
		{ID: 115, Name: "Puxada"},
		{ID: 116, Name: "Voador Dorsal"},
		{ID: 117, Name: "Facepull"},
		{ID: 118, Name: "Rosca Bíceps Barra W"},
		{ID: 119, Name: "Supino Reto com Barra"},
		{ID: 120, Name: "Supino Inclinado com Halteres"},
		{ID: 121, Name: "Crucifixo Reto (Halteres ou Máquina)"},
		{ID: 122, Name: "Flexão de Braço (Push-up)"},
		{ID: 123, Name: "Mergulho nas Paralelas (Dips)"},
		{ID: 124, Name: "Crossover na Polia Alta"},
		{ID: 125, Name: "Voador (Peck Deck)"},
		{ID: 126, Name: "Puxada Frontal (Pulley)"},
		{ID: 127, Name: "Remada Curvada com Barra"},
		{ID: 128, Name: "Remada Unilateral com Halter (Serrote)"},
		{ID: 129, Name: "Barra Fixa (Pull-up)"},
		{ID: 130, Name: "Remada Sentada na Máquina"},
		{ID: 131, Name: "Pulldown com Braços Estendidos"},
		{ID: 132, Name: "Hiperextensão Lombar (Banco Romano)"},
		{ID: 133, Name: "Crucifixo Invertido (Halteres ou Máquina)"},
		{ID: 134, Name: "Desenvolvimento com Halteres (Arnold Press)"},
		{ID: 135, Name: "Elevação Lateral com Halteres"},
		{ID: 136, Name: "Encolhimento com Halteres (Trapézio)"},
		{ID: 137, Name: "Desenvolvimento Militar com Barra"},
		{ID: 138, Name: "Rosca Direta com Barra"},
		{ID: 139, Name: "Rosca Alternada com Halteres"},
		{ID: 140, Name: "Rosca Martelo (Hammer Curl)"},
		{ID: 141, Name: "Rosca Scott (Banco Scott)"},
		{ID: 142, Name: "Rosca Concentrada"},
		{ID: 143, Name: "Tríceps Testa com Barra"},
		{ID: 144, Name: "Tríceps Francês Unilateral com Halter"},
		{ID: 145, Name: "Flexão Diamante"},
		{ID: 146, Name: "Mergulho no Banco"},
		{ID: 147, Name: "Agachamento Livre com Barra"},
		{ID: 148, Name: "Leg Press 45°"},
		{ID: 149, Name: "Afundo (Lunge) com Halteres"},
		{ID: 150, Name: "Cadeira Extensora"},
		{ID: 151, Name: "Mesa Flexora"},
		{ID: 152, Name: "Stiff com Barra ou Halteres"},
		{ID: 153, Name: "Levantamento Terra (Deadlift)"},
		{ID: 154, Name: "Agachamento Búlgaro"},
		{ID: 155, Name: "Elevação Pélvica (Hip Thrust)"},
		{ID: 156, Name: "Abdução de Quadril na Máquina ou com Elástico"},
		{ID: 157, Name: "Cadeira Adutora"},
		{ID: 158, Name: "Coice na Polia Baixa"},
		{ID: 159, Name: "Bom dia com Barra"},
		{ID: 160, Name: "Panturrilha em Pé (Gêmeos)"},
		{ID: 161, Name: "Panturrilha Sentado (Sóleo)"},
		{ID: 162, Name: "Panturrilha no Leg Press"},
		{ID: 163, Name: "Prancha Abdominal (Plank)"},
		{ID: 164, Name: "Abdominal supra (Crunch)"},
		{ID: 165, Name: "Elevação de Pernas (Abdominal Infra)"},
		{ID: 166, Name: "Abdominal Remador"},
		{ID: 167, Name: "Prancha Lateral"},
		{ID: 168, Name: "Rotação de Tronco na Polia (Pallof Press)"},
		{ID: 169, Name: "Extensão Lombar na Máquina"},
		{ID: 170, Name: "Ponte (Glute Bridge)"},
	}
}

func ex(libID int64, series, reps, load, notes string) domain.PlanExercise {
	return domain.PlanExercise{
		EntryID:     uuid.New(),
		LibraryID:   libID,
		Series:      series,
		Repetitions: reps,
		Load:        load,
		Notes:       notes,
	}
}

// Students returns the initial student roster. Status timestamps are offsets
// from now so the dashboard shows plausible ages right after startup.
func Students(now time.Time) []domain.Student {
	trainerTwo := int64(2)
	onPace := domain.RhythmOnPace

	return []domain.Student{
		{
			ID:              201,
			Name:            "Ana Júlia Ribeiro",
			Status:          domain.StatusAvailable,
			StatusChangedAt: now.Add(-10 * time.Minute),
			Plans: []domain.Plan{
				{
					ID:     301,
					Name:   "Treino de Janeiro",
					Active: false,
					Exercises: []domain.PlanExercise{
						ex(105, "4", "10", "20, 25, 30, 35", ""),
					},
				},
				{
					ID:     302,
					Name:   "Treino de Fevereiro",
					Active: true,
					Exercises: []domain.PlanExercise{
						ex(106, "5", "8-10", "", ""),
					},
				},
			},
		},
		{
			ID:              202,
			Name:            "Breno Gonçalves",
			Status:          domain.StatusQueued,
			StatusChangedAt: now.Add(-5 * time.Minute),
			Plans: []domain.Plan{
				{
					ID:     303,
					Name:   "Full Body (Iniciante)",
					Active: true,
					Exercises: []domain.PlanExercise{
						ex(102, "3", "15", "", ""),
					},
				},
			},
		},
		{
			ID:              203,
			Name:            "Clara Dias",
			Status:          domain.StatusTraining,
			TrainerID:       &trainerTwo,
			Rhythm:          &onPace,
			StatusChangedAt: now.Add(-25 * time.Minute),
			Plans: []domain.Plan{
				{
					ID:     304,
					Name:   "Treino Atual de Força",
					Active: true,
					Exercises: []domain.PlanExercise{
						ex(102, "5", "5", "80kg", ""),
					},
				},
				{
					ID:     305,
					Name:   "Treino de Cardio (inativo)",
					Active: false,
					Exercises: []domain.PlanExercise{
						ex(101, "3", "20", "15", ""),
					},
				},
			},
		},
		{
			ID:              205,
			Name:            "Rodrigo Macedo",
			Status:          domain.StatusAvailable,
			StatusChangedAt: now.Add(-15 * time.Minute),
			Plans: []domain.Plan{
				{
					ID:     401,
					Name:   "Treino A - Peito, Ombro e Tríceps",
					Active: true,
					Exercises: []domain.PlanExercise{
						ex(101, "3", "10-12", "40", "Polia alta"),
						ex(102, "3", "10-12", "45", "No crossover"),
						ex(103, "3", "10-12", "61", "Aparelho, Pegada Pronada, Regulagem do banco: 6"),
						ex(104, "3", "10-12", "20", "Na corda"),
						ex(105, "3", "10-12", "29", "HBC"),
						ex(106, "3", "10-12", "10", "HBC"),
						ex(107, "3", "10-12", "10", "HBC"),
						ex(108, "3", "10-12", "10", "Barra T"),
						ex(109, "3", "10-12", "45", "Na corda"),
					},
				},
				{
					ID:     402,
					Name:   "Treino B - Costas e Bíceps",
					Active: true,
					Exercises: []domain.PlanExercise{
						ex(110, "3", "10-12", "45", "Na corda"),
						ex(111, "3", "10-12", "12", "Pegada Supinada"),
						ex(112, "3", "10-12", "50", "HBL"),
						ex(113, "3", "10-12", "50", "Polia baixa com corda"),
						ex(114, "3", "10-12", "65", "Pegada Pronada"),
						ex(118, "3", "10-10", "55", "Polia baixa com barra W"),
						ex(115, "3", "10-12", "45", "Barra Triângulo"),
						ex(116, "3", "10-12", "20", "Aparelho, Pegada Pronada, Regulagem: 6"),
						ex(117, "3", "10-12", "45", "Na Corda"),
					},
				},
				{
					ID:     403,
					Name:   "Treino de Hipertrofia (Antigo)",
					Active: false,
					Exercises: []domain.PlanExercise{
						ex(114, "4", "8", "70", ""),
					},
				},
			},
		},
	}
}
