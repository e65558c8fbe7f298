package workout

import (
	"fmt"
	"math"
)

// Progression cadence and increments per goal.
const (
	strengthWeekInterval  = 2
	strengthWeightFactor  = 0.025
	hypertrophyCycleWeeks = 3
	hypertrophyRepBump    = 2
	enduranceWeekInterval = 4
	enduranceRepBump      = 2
)

// ProgressiveOverload prescribes the sets, reps, and weight for a training
// week relative to a baseline. Strength adds weight every other week,
// muscle gain alternates rep and set bumps on a three-week cycle, and every
// other goal slowly accumulates reps.
func ProgressiveOverload(weekNumber int, baseWeightKg float64, baseSets, baseReps int, goal string) Overload {
	sets := baseSets
	reps := baseReps
	weight := baseWeightKg
	var notes string

	switch goal {
	case "strength":
		if weekNumber%strengthWeekInterval == 0 {
			weight = baseWeightKg * (1 + strengthWeightFactor*float64(weekNumber/strengthWeekInterval))
			percent := int(math.Floor((weight - baseWeightKg) / baseWeightKg * 100))
			notes = fmt.Sprintf("Increased weight by %d%%", percent)
		}
	case "muscle_gain":
		cycle := weekNumber / hypertrophyCycleWeeks
		if cycle%2 == 0 {
			reps = baseReps + hypertrophyRepBump
			notes = "Added 2 reps for progressive overload"
		} else {
			sets = baseSets + 1
			notes = "Added 1 set for increased volume"
		}
	default:
		reps = baseReps + (weekNumber/enduranceWeekInterval)*enduranceRepBump
		if weekNumber%enduranceWeekInterval == 0 {
			notes = "Increased reps for endurance"
		}
	}

	return Overload{
		Sets:     sets,
		Reps:     reps,
		WeightKg: math.Round(weight*10) / 10,
		Notes:    notes,
	}
}
