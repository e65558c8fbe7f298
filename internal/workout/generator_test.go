package workout

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/planfit/internal/catalog"
)

func gymProfile(workoutDays int) Profile {
	return Profile{
		FitnessLevel:          "intermediate",
		PrimaryGoal:           "muscle_gain",
		Location:              "gym",
		WorkoutDays:           workoutDays,
		TimePerSessionMinutes: 60,
	}
}

func TestGenerateWeeklyPlanSchedules(t *testing.T) {
	tests := []struct {
		name         string
		workoutDays  int
		wantWorkouts int
		wantRestDays []string
		wantFirstDay string
		wantLastType string
	}{
		{
			name:         "three day full body",
			workoutDays:  3,
			wantWorkouts: 3,
			wantRestDays: []string{"Tuesday", "Thursday", "Saturday", "Sunday"},
			wantFirstDay: "Monday",
			wantLastType: "Full Body C",
		},
		{
			name:         "four day upper lower",
			workoutDays:  4,
			wantWorkouts: 4,
			wantRestDays: []string{"Wednesday", "Saturday", "Sunday"},
			wantFirstDay: "Monday",
			wantLastType: "Lower Body + Core",
		},
		{
			name:         "five day body part split",
			workoutDays:  5,
			wantWorkouts: 5,
			wantRestDays: []string{"Saturday", "Sunday"},
			wantFirstDay: "Monday",
			wantLastType: "Full Body",
		},
		{
			name:         "six day push pull legs",
			workoutDays:  6,
			wantWorkouts: 6,
			wantRestDays: []string{"Sunday"},
			wantFirstDay: "Monday",
			wantLastType: "Legs + Core",
		},
		{
			name:         "unsupported frequency falls back to three days",
			workoutDays:  2,
			wantWorkouts: 3,
			wantRestDays: []string{"Tuesday", "Thursday", "Saturday", "Sunday"},
			wantFirstDay: "Monday",
			wantLastType: "Full Body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := GenerateWeeklyPlan(catalog.Exercises(), gymProfile(tt.workoutDays))
			if err != nil {
				t.Fatalf("GenerateWeeklyPlan() error = %v", err)
			}
			if got := len(plan.Workouts); got != tt.wantWorkouts {
				t.Fatalf("workouts = %d, want %d", got, tt.wantWorkouts)
			}
			if diff := cmp.Diff(tt.wantRestDays, plan.RestDays); diff != "" {
				t.Errorf("rest days mismatch (-want +got):\n%s", diff)
			}
			if got := plan.Workouts[0].Day; got != tt.wantFirstDay {
				t.Errorf("first workout day = %s, want %s", got, tt.wantFirstDay)
			}
			if got := plan.Workouts[len(plan.Workouts)-1].Type; got != tt.wantLastType {
				t.Errorf("last workout type = %s, want %s", got, tt.wantLastType)
			}
		})
	}
}

func TestGenerateWeeklyPlanSessionSize(t *testing.T) {
	p := gymProfile(3)
	p.TimePerSessionMinutes = 30

	plan, err := GenerateWeeklyPlan(catalog.Exercises(), p)
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan() error = %v", err)
	}
	for _, workout := range plan.Workouts {
		// 30 minutes at roughly 8 minutes per exercise gives 3 slots.
		if got := len(workout.Exercises); got > 3 {
			t.Errorf("%s has %d exercises, want at most 3", workout.Day, got)
		}
		if workout.DurationMinutes <= 0 {
			t.Errorf("%s duration = %d, want > 0", workout.Day, workout.DurationMinutes)
		}
	}
}

func TestGenerateWeeklyPlanHomeBodyweightOnly(t *testing.T) {
	p := Profile{
		FitnessLevel:          "beginner",
		PrimaryGoal:           "fat_loss",
		Location:              "home",
		WorkoutDays:           3,
		TimePerSessionMinutes: 45,
	}

	plan, err := GenerateWeeklyPlan(catalog.Exercises(), p)
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan() error = %v", err)
	}
	for _, workout := range plan.Workouts {
		for _, e := range workout.Exercises {
			if e.Exercise.Equipment != catalog.EquipmentNone && e.Exercise.Equipment != catalog.EquipmentMat {
				t.Errorf("%s includes %s requiring %s without owned equipment",
					workout.Day, e.Exercise.Name, e.Exercise.Equipment)
			}
		}
	}
	if !strings.Contains(plan.Reasoning, "adapted for home training") {
		t.Errorf("reasoning = %q, want home training note", plan.Reasoning)
	}
}

func TestGenerateWeeklyPlanNoEligibleExercises(t *testing.T) {
	p := gymProfile(3)
	p.TimePerSessionMinutes = 60

	pool := []catalog.Exercise{}
	if _, err := GenerateWeeklyPlan(pool, p); !errors.Is(err, ErrNoEligibleExercises) {
		t.Errorf("GenerateWeeklyPlan() error = %v, want %v", err, ErrNoEligibleExercises)
	}
}

func TestGenerateWeeklyPlanMuscleVariety(t *testing.T) {
	plan, err := GenerateWeeklyPlan(catalog.Exercises(), gymProfile(3))
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan() error = %v", err)
	}

	day := plan.Workouts[0]
	seen := map[string]bool{}
	for i, e := range day.Exercises {
		repeated := false
		for _, m := range e.Exercise.PrimaryMuscles {
			if seen[m] {
				repeated = true
			}
		}
		// Repeats are only allowed once the day already covers at least
		// four distinct primary muscles.
		if repeated && i > 0 && len(seen) < varietyMuscleLimit {
			t.Errorf("%s repeats a primary muscle before covering %d groups", e.Exercise.Name, varietyMuscleLimit)
		}
		for _, m := range e.Exercise.PrimaryMuscles {
			seen[m] = true
		}
	}
}

func TestWeeklyReasoning(t *testing.T) {
	p := gymProfile(4)
	p.PrimaryGoal = "strength"

	got := weeklyReasoning(p)
	want := "4-day upper/lower split for optimal recovery, emphasizing strength development (4-6 reps)."
	if got != want {
		t.Errorf("weeklyReasoning() = %q, want %q", got, want)
	}
}
