package workout

import (
	"sort"
	"strings"

	"github.com/myrjola/planfit/internal/catalog"
)

// Prescription defaults applied when the catalog leaves volume unset.
const (
	defaultSets        = 3
	defaultReps        = 12
	defaultRestSeconds = 60
)

// Goal-specific set and rep schemes.
const (
	strengthSetsAdvanced = 5
	strengthSets         = 4
	strengthReps         = 6
	hypertrophySetsAdv   = 4
	hypertrophySets      = 3
	hypertrophyReps      = 10
	fatLossSets          = 3
	fatLossReps          = 15
)

// varietyMuscleLimit is the number of distinct primary muscles a day must
// cover before repeats of an already-worked muscle are allowed.
const varietyMuscleLimit = 4

// selectExercisesForDay scores the pool against the day's target muscles and
// greedily fills up to exerciseCount slots, spreading the selection across
// muscle groups before doubling up.
func selectExercisesForDay(pool []catalog.Exercise, targetMuscles []string, p Profile, exerciseCount int) []ExerciseSelection {
	type scoredExercise struct {
		exercise catalog.Exercise
		score    float64
	}

	var scored []scoredExercise
	for _, exercise := range pool {
		if score := scoreExercise(exercise, p, targetMuscles); score > 0 {
			scored = append(scored, scoredExercise{exercise: exercise, score: score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var selected []ExerciseSelection
	usedMuscles := map[string]bool{}

	for _, candidate := range scored {
		if len(selected) >= exerciseCount {
			break
		}

		primaryUsed := false
		for _, m := range candidate.exercise.PrimaryMuscles {
			if usedMuscles[m] {
				primaryUsed = true
				break
			}
		}
		if primaryUsed && len(selected) > 0 && len(usedMuscles) < varietyMuscleLimit {
			continue
		}

		for _, m := range candidate.exercise.PrimaryMuscles {
			usedMuscles[m] = true
		}

		selected = append(selected, prescribe(candidate.exercise, candidate.score, p))
	}

	return selected
}

// prescribe turns a scored exercise into a concrete selection with sets,
// reps or duration, and rest per the user's goal and level.
func prescribe(exercise catalog.Exercise, score float64, p Profile) ExerciseSelection {
	sets := exercise.DefaultSets
	if sets == 0 {
		sets = defaultSets
	}

	var reps *int
	var duration *int
	if exercise.DurationBased() {
		d := exercise.DefaultDurationSeconds
		duration = &d
	} else {
		r := exercise.DefaultReps
		if r == 0 {
			r = defaultReps
		}
		reps = &r
	}

	advanced := strings.EqualFold(p.FitnessLevel, "advanced")
	switch p.PrimaryGoal {
	case "strength":
		sets = strengthSets
		if advanced {
			sets = strengthSetsAdvanced
		}
		if reps != nil {
			r := strengthReps
			reps = &r
		}
	case "muscle_gain":
		sets = hypertrophySets
		if advanced {
			sets = hypertrophySetsAdv
		}
		if reps != nil {
			r := hypertrophyReps
			reps = &r
		}
	case "fat_loss":
		sets = fatLossSets
		if reps != nil {
			r := fatLossReps
			reps = &r
		}
	}

	rest := exercise.RestSeconds
	if rest == 0 {
		rest = defaultRestSeconds
	}

	return ExerciseSelection{
		Exercise:        exercise,
		Sets:            sets,
		Reps:            reps,
		DurationSeconds: duration,
		RestSeconds:     rest,
		Score:           score,
		Reasoning: "Targets " + strings.Join(exercise.PrimaryMuscles, ", ") +
			" with " + string(exercise.Equipment),
	}
}

// AlternativeExercises returns up to count substitutes for an exercise:
// catalog entries sharing at least one primary muscle, scored against the
// current exercise's muscle targets, best first.
func AlternativeExercises(pool []catalog.Exercise, current catalog.Exercise, p Profile, count int) []ExerciseSelection {
	if count <= 0 {
		count = 5
	}

	var alternatives []ExerciseSelection
	for _, exercise := range pool {
		if exercise.ID == current.ID || !sharesPrimaryMuscle(exercise, current) {
			continue
		}
		score := scoreExercise(exercise, p, current.PrimaryMuscles)
		if score <= 0 {
			continue
		}

		sets := current.DefaultSets
		if sets == 0 {
			sets = defaultSets
		}
		reps := exercise.DefaultReps
		if reps == 0 {
			reps = defaultReps
		}
		rest := exercise.RestSeconds
		if rest == 0 {
			rest = defaultRestSeconds
		}

		alternatives = append(alternatives, ExerciseSelection{
			Exercise:    exercise,
			Sets:        sets,
			Reps:        &reps,
			RestSeconds: rest,
			Score:       score,
			Reasoning:   "Alternative targeting " + strings.Join(exercise.PrimaryMuscles, ", "),
		})
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Score > alternatives[j].Score
	})
	if len(alternatives) > count {
		alternatives = alternatives[:count]
	}
	return alternatives
}

func sharesPrimaryMuscle(a, b catalog.Exercise) bool {
	for _, m := range a.PrimaryMuscles {
		if containsMuscle(b.PrimaryMuscles, m) {
			return true
		}
	}
	return false
}
