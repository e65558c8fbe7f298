// Package workout generates weekly training plans: it splits the week by
// training frequency, scores the exercise catalog against a user profile,
// and fills each day with the best-fitting exercises.
package workout

import "github.com/myrjola/planfit/internal/catalog"

// Profile captures everything the generator needs to know about the user.
type Profile struct {
	FitnessLevel          string              `json:"fitness_level"`
	PrimaryGoal           string              `json:"primary_goal"`
	Location              string              `json:"location"`
	AvailableEquipment    []catalog.Equipment `json:"available_equipment,omitempty"`
	AvoidEquipment        []catalog.Equipment `json:"avoid_equipment,omitempty"`
	WorkoutDays           int                 `json:"workout_days"`
	TimePerSessionMinutes int                 `json:"time_per_session_minutes"`
	Injuries              []string            `json:"injuries,omitempty"`
	AvoidExercises        []string            `json:"avoid_exercises,omitempty"`
}

// ExerciseSelection is an exercise slotted into a workout day with its
// prescribed volume. Reps and DurationSeconds are mutually exclusive.
type ExerciseSelection struct {
	Exercise        catalog.Exercise `json:"exercise"`
	Sets            int              `json:"sets"`
	Reps            *int             `json:"reps,omitempty"`
	DurationSeconds *int             `json:"duration_seconds,omitempty"`
	RestSeconds     int              `json:"rest_seconds"`
	Score           float64          `json:"score"`
	Reasoning       string           `json:"reasoning"`
}

// DayWorkout is one training day of a weekly plan.
type DayWorkout struct {
	Day             string              `json:"day"`
	DayNumber       int                 `json:"day_number"`
	Type            string              `json:"type"`
	TargetMuscles   []string            `json:"target_muscles"`
	Exercises       []ExerciseSelection `json:"exercises"`
	DurationMinutes int                 `json:"duration_minutes"`
	Reasoning       string              `json:"reasoning"`
}

// WeeklyPlan is a full week of workouts plus the rest days left over.
type WeeklyPlan struct {
	Workouts  []DayWorkout `json:"workouts"`
	RestDays  []string     `json:"rest_days"`
	Reasoning string       `json:"reasoning"`
}

// Overload is a progressive-overload prescription for a given training week.
type Overload struct {
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight_kg"`
	Notes    string  `json:"notes"`
}

// splitDay is a day template within a weekly split.
type splitDay struct {
	typ     string
	muscles []string
}
