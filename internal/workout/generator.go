package workout

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/myrjola/planfit/internal/catalog"
)

// ErrNoEligibleExercises is returned when a workout day cannot be filled
// with a single exercise, typically because the profile rules out all
// equipment the catalog needs.
var ErrNoEligibleExercises = errors.New("no eligible exercises for workout day")

// Session sizing constants.
const (
	// minutesPerExercise is the rough session time one exercise occupies,
	// used to size the day from the available time.
	minutesPerExercise = 8
	maxExercisesPerDay = 8
	// secondsPerRep approximates rep tempo when estimating day duration.
	secondsPerRep = 3
)

// GenerateWeeklyPlan builds a full week of workouts from the exercise pool:
// it picks the split template for the requested frequency, fills each
// training day with scored exercises, and estimates session durations.
func GenerateWeeklyPlan(pool []catalog.Exercise, p Profile) (WeeklyPlan, error) {
	week := splitForDays(p.WorkoutDays)

	exercisesPerWorkout := min(p.TimePerSessionMinutes/minutesPerExercise, maxExercisesPerDay)

	var workouts []DayWorkout
	var restDays []string
	workoutIndex := 0

	for i, dayName := range week.schedule {
		if dayName == restMarker {
			restDays = append(restDays, daysOfWeek[i])
			continue
		}

		split := week.splits[workoutIndex%len(week.splits)]
		exercises := selectExercisesForDay(pool, split.muscles, p, exercisesPerWorkout)
		if len(exercises) == 0 {
			return WeeklyPlan{}, fmt.Errorf("%s (%s): %w", dayName, split.typ, ErrNoEligibleExercises)
		}

		workouts = append(workouts, DayWorkout{
			Day:             dayName,
			DayNumber:       i + 1,
			Type:            split.typ,
			TargetMuscles:   split.muscles,
			Exercises:       exercises,
			DurationMinutes: estimateDuration(exercises),
			Reasoning:       dayReasoning(split),
		})
		workoutIndex++
	}

	return WeeklyPlan{
		Workouts:  workouts,
		RestDays:  restDays,
		Reasoning: weeklyReasoning(p),
	}, nil
}

// estimateDuration approximates the session length in minutes: per set, the
// work time (explicit duration or reps at tempo) plus the rest interval.
func estimateDuration(exercises []ExerciseSelection) int {
	var total float64
	for _, e := range exercises {
		timePerSet := float64(defaultReps * secondsPerRep)
		switch {
		case e.DurationSeconds != nil:
			timePerSet = float64(*e.DurationSeconds)
		case e.Reps != nil:
			timePerSet = float64(*e.Reps * secondsPerRep)
		}
		total += float64(e.Sets) * (timePerSet + float64(e.RestSeconds)) / 60
	}
	return int(math.Round(total))
}

// dayReasoning names the day's focus with up to three target muscles.
func dayReasoning(split splitDay) string {
	muscles := split.muscles
	if len(muscles) > 3 {
		muscles = muscles[:3]
	}
	return fmt.Sprintf("%s workout targeting %s", split.typ, strings.Join(muscles, ", "))
}

// weeklyReasoning assembles the plan-level justification sentence.
func weeklyReasoning(p Profile) string {
	var parts []string

	switch {
	case p.WorkoutDays == 3:
		parts = append(parts, "3-day full body split for balanced muscle development")
	case p.WorkoutDays == 4:
		parts = append(parts, "4-day upper/lower split for optimal recovery")
	case p.WorkoutDays >= 5:
		parts = append(parts, fmt.Sprintf("%d-day split for advanced training volume", p.WorkoutDays))
	}

	switch p.PrimaryGoal {
	case "muscle_gain":
		parts = append(parts, "focused on hypertrophy rep ranges (8-12 reps)")
	case "strength":
		parts = append(parts, "emphasizing strength development (4-6 reps)")
	case "fat_loss":
		parts = append(parts, "incorporating higher reps (12-15) for calorie burn")
	}

	if p.Location == "home" {
		parts = append(parts, "adapted for home training with minimal equipment")
	}

	return strings.Join(parts, ", ") + "."
}
