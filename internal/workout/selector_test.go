package workout

import (
	"testing"

	"github.com/myrjola/planfit/internal/catalog"
	"github.com/myrjola/planfit/internal/ptr"
)

func TestPrescribeGoalSchemes(t *testing.T) {
	benchPress, err := catalog.ExerciseByID("bench-press")
	if err != nil {
		t.Fatalf("ExerciseByID() error = %v", err)
	}
	plank, err := catalog.ExerciseByID("plank")
	if err != nil {
		t.Fatalf("ExerciseByID() error = %v", err)
	}

	tests := []struct {
		name         string
		exercise     catalog.Exercise
		profile      Profile
		wantSets     int
		wantReps     *int
		wantDuration bool
	}{
		{
			name:     "strength advanced",
			exercise: benchPress,
			profile:  Profile{FitnessLevel: "advanced", PrimaryGoal: "strength"},
			wantSets: 5,
			wantReps: ptr.Ref(6),
		},
		{
			name:     "strength intermediate",
			exercise: benchPress,
			profile:  Profile{FitnessLevel: "intermediate", PrimaryGoal: "strength"},
			wantSets: 4,
			wantReps: ptr.Ref(6),
		},
		{
			name:     "hypertrophy",
			exercise: benchPress,
			profile:  Profile{FitnessLevel: "intermediate", PrimaryGoal: "muscle_gain"},
			wantSets: 3,
			wantReps: ptr.Ref(10),
		},
		{
			name:     "fat loss",
			exercise: benchPress,
			profile:  Profile{FitnessLevel: "intermediate", PrimaryGoal: "fat_loss"},
			wantSets: 3,
			wantReps: ptr.Ref(15),
		},
		{
			name:         "duration based keeps duration and drops reps",
			exercise:     plank,
			profile:      Profile{FitnessLevel: "intermediate", PrimaryGoal: "strength"},
			wantSets:     4,
			wantDuration: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := prescribe(tt.exercise, 50, tt.profile)
			if selection.Sets != tt.wantSets {
				t.Errorf("sets = %d, want %d", selection.Sets, tt.wantSets)
			}
			if tt.wantReps != nil {
				if selection.Reps == nil || *selection.Reps != *tt.wantReps {
					t.Errorf("reps = %v, want %d", selection.Reps, *tt.wantReps)
				}
			} else if selection.Reps != nil {
				t.Errorf("reps = %d, want nil", *selection.Reps)
			}
			if tt.wantDuration && selection.DurationSeconds == nil {
				t.Error("duration = nil, want set")
			}
			if selection.RestSeconds <= 0 {
				t.Errorf("rest = %d, want > 0", selection.RestSeconds)
			}
		})
	}
}

func TestAlternativeExercises(t *testing.T) {
	benchPress, err := catalog.ExerciseByID("bench-press")
	if err != nil {
		t.Fatalf("ExerciseByID() error = %v", err)
	}

	p := Profile{FitnessLevel: "intermediate", PrimaryGoal: "muscle_gain", Location: "gym"}
	alternatives := AlternativeExercises(catalog.Exercises(), benchPress, p, 5)

	if len(alternatives) == 0 {
		t.Fatal("AlternativeExercises() returned none")
	}
	if len(alternatives) > 5 {
		t.Fatalf("AlternativeExercises() returned %d, want at most 5", len(alternatives))
	}
	for i, alt := range alternatives {
		if alt.Exercise.ID == benchPress.ID {
			t.Error("alternatives include the current exercise")
		}
		if !sharesPrimaryMuscle(alt.Exercise, benchPress) {
			t.Errorf("%s shares no primary muscle with %s", alt.Exercise.Name, benchPress.Name)
		}
		if i > 0 && alternatives[i-1].Score < alt.Score {
			t.Error("alternatives not sorted by descending score")
		}
	}
}

func TestAlternativeExercisesHomeFiltering(t *testing.T) {
	benchPress, err := catalog.ExerciseByID("bench-press")
	if err != nil {
		t.Fatalf("ExerciseByID() error = %v", err)
	}

	p := Profile{FitnessLevel: "intermediate", PrimaryGoal: "muscle_gain", Location: "home"}
	for _, alt := range AlternativeExercises(catalog.Exercises(), benchPress, p, 5) {
		if alt.Exercise.Equipment != catalog.EquipmentNone && alt.Exercise.Equipment != catalog.EquipmentMat {
			t.Errorf("home alternative %s requires %s", alt.Exercise.Name, alt.Exercise.Equipment)
		}
	}
}
