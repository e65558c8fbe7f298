package diet

import (
	"math"
	"strings"
)

// Activity multipliers keyed by fitness level. Unrecognized levels fall back
// to a moderate default so the estimator never fails.
const (
	activityBeginner     = 1.2
	activityIntermediate = 1.55
	activityAdvanced     = 1.725
	activityDefault      = 1.375
)

// Goal adjustment factors applied to total daily energy expenditure.
const (
	deficitWeightLoss        = 0.80
	deficitExtremeWeightLoss = 0.75
	surplusMuscleGain        = 1.10
)

var activityMultipliers = map[string]float64{
	"beginner":     activityBeginner,
	"intermediate": activityIntermediate,
	"advanced":     activityAdvanced,
}

// EstimateDailyCalories computes the daily calorie target with the
// Mifflin-St Jeor equation, scaled by activity level and goal. Gender is
// matched case-insensitively; anything other than "male" uses the female
// formula.
func EstimateDailyCalories(p Profile) int {
	bmr := basalMetabolicRate(p)

	multiplier, ok := activityMultipliers[strings.ToLower(p.FitnessLevel)]
	if !ok {
		multiplier = activityDefault
	}
	tdee := bmr * multiplier

	return int(math.Round(tdee * goalAdjustment(p.PrimaryGoal)))
}

// basalMetabolicRate applies the Mifflin-St Jeor formula.
func basalMetabolicRate(p Profile) float64 {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if strings.EqualFold(p.Gender, "male") {
		return bmr + 5
	}
	return bmr - 161
}

// goalAdjustment returns the deficit or surplus factor for a goal. Unknown
// goals are treated as maintenance.
func goalAdjustment(goal string) float64 {
	switch goal {
	case "fat_loss", "weight_loss":
		return deficitWeightLoss
	case "extreme_weight_loss":
		return deficitExtremeWeightLoss
	case "muscle_gain":
		return surplusMuscleGain
	default:
		return 1.0
	}
}
