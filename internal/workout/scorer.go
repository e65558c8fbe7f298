package workout

import (
	"math"
	"strings"

	"github.com/myrjola/planfit/internal/catalog"
)

// Exercise scoring weights.
const (
	difficultyMatchPoints    = 25
	difficultyMismatchPoints = -20
	homeBodyweightPoints     = 30
	homeOwnedEquipmentPoints = 20
	gymEquipmentPoints       = 30
	bothPreferredPoints      = 25
	bothFallbackPoints       = 15
	primaryMusclePoints      = 20
	secondaryMusclePoints    = 10
	muscleScoreCap           = 30
	goalMatchPoints          = 15
	goalGenericPoints        = 5
	avoidExercisePenalty     = 50
	avoidEquipmentPenalty    = 30
)

// acceptedDifficulties maps a fitness level to the exercise difficulties it
// can train productively. Advanced users skip pure beginner movements.
var acceptedDifficulties = map[string][]catalog.ExerciseDifficulty{
	"beginner":     {catalog.ExerciseBeginner},
	"intermediate": {catalog.ExerciseBeginner, catalog.ExerciseIntermediate},
	"advanced":     {catalog.ExerciseIntermediate, catalog.ExerciseAdvanced},
}

// scoreExercise computes a fit score for an exercise against the profile and
// the day's target muscles. A zero score means the exercise is unusable, for
// example equipment the user does not have at home.
func scoreExercise(exercise catalog.Exercise, p Profile, targetMuscles []string) float64 {
	var score float64

	if difficultyAccepted(p.FitnessLevel, exercise.Difficulty) {
		score += difficultyMatchPoints
	} else {
		score += difficultyMismatchPoints
	}

	equipmentScore, usable := equipmentFit(exercise, p)
	if !usable {
		return 0
	}
	score += equipmentScore

	score += muscleFit(exercise, targetMuscles)
	score += goalFit(exercise, p.PrimaryGoal)

	if avoidedByName(exercise, p.AvoidExercises) {
		score -= avoidExercisePenalty
	}
	for _, equipment := range p.AvoidEquipment {
		if exercise.Equipment == equipment {
			score -= avoidEquipmentPenalty
		}
	}

	return math.Max(0, score)
}

func difficultyAccepted(fitnessLevel string, difficulty catalog.ExerciseDifficulty) bool {
	for _, accepted := range acceptedDifficulties[strings.ToLower(fitnessLevel)] {
		if accepted == difficulty {
			return true
		}
	}
	return false
}

// equipmentFit scores equipment availability for the training location. The
// second return is false when the exercise cannot be performed at all.
func equipmentFit(exercise catalog.Exercise, p Profile) (float64, bool) {
	switch p.Location {
	case "home":
		if exercise.Equipment == catalog.EquipmentNone || exercise.Equipment == catalog.EquipmentMat {
			return homeBodyweightPoints, true
		}
		if hasEquipment(p.AvailableEquipment, exercise.Equipment) {
			return homeOwnedEquipmentPoints, true
		}
		return 0, false
	case "gym":
		return gymEquipmentPoints, true
	default:
		if hasEquipment(p.AvailableEquipment, exercise.Equipment) || exercise.Equipment == catalog.EquipmentNone {
			return bothPreferredPoints, true
		}
		return bothFallbackPoints, true
	}
}

func hasEquipment(available []catalog.Equipment, equipment catalog.Equipment) bool {
	for _, e := range available {
		if e == equipment {
			return true
		}
	}
	return false
}

// muscleFit awards points per target muscle hit, capped so a single exercise
// never dominates on coverage alone.
func muscleFit(exercise catalog.Exercise, targetMuscles []string) float64 {
	var score float64
	for _, target := range targetMuscles {
		switch {
		case containsMuscle(exercise.PrimaryMuscles, target):
			score += primaryMusclePoints
		case containsMuscle(exercise.SecondaryMuscles, target):
			score += secondaryMusclePoints
		}
	}
	return math.Min(score, muscleScoreCap)
}

func containsMuscle(muscles []string, target string) bool {
	for _, m := range muscles {
		if m == target {
			return true
		}
	}
	return false
}

// goalFit awards the goal-alignment component. Any exercise carries a small
// general fitness benefit even without a direct goal match.
func goalFit(exercise catalog.Exercise, goal string) float64 {
	switch {
	case goal == "fat_loss" && exercise.Category == catalog.CategoryCardio:
		return goalMatchPoints
	case goal == "muscle_gain" &&
		(exercise.Category == catalog.CategoryUpperBody || exercise.Category == catalog.CategoryLowerBody):
		return goalMatchPoints
	case goal == "strength" && exercise.Equipment != catalog.EquipmentNone:
		return goalMatchPoints
	default:
		return goalGenericPoints
	}
}

// avoidedByName reports whether the exercise name contains any avoided term,
// ignoring case.
func avoidedByName(exercise catalog.Exercise, avoid []string) bool {
	name := strings.ToLower(exercise.Name)
	for _, term := range avoid {
		if term != "" && strings.Contains(name, strings.ToLower(term)) {
			return true
		}
	}
	return false
}
