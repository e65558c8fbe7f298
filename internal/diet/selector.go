package diet

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/myrjola/planfit/internal/catalog"
)

// ErrEmptyCatalog is returned when there are no diets to score.
var ErrEmptyCatalog = errors.New("diet catalog is empty")

// Diet scoring weights. The components sum before clamping to [0, 100].
const (
	styleMatchPoints    = 40
	styleFlexiblePoints = 20
	goalMatchPoints     = 30
	healthSafePoints    = 5
	healthSafeCap       = 15
	healthCautionPoints = 20
	maxDietScore        = 100
)

// dietaryStyleMatches maps a user's dietary style to the diet ids that
// satisfy it. A style missing from the map matches only the diet with the
// same id as the style itself.
var dietaryStyleMatches = map[string][]string{
	"mediterranean": {"mediterranean"},
	"low-carb":      {"low-carb", "keto", "ketogenic"},
	"low-fat":       {"low-fat"},
	"vegan":         {"vegan"},
	"vegetarian":    {"vegetarian", "flexitarian"},
	"keto":          {"keto", "ketogenic", "low-carb"},
	"paleo":         {"paleo"},
	"mixed":         {"mediterranean", "flexitarian", "calorie-counting"},
	"flexible":      {"flexitarian", "calorie-counting"},
}

// flexibleDietIDs are diets that work reasonably for most people and earn a
// partial style score even without a direct match.
var flexibleDietIDs = map[string]bool{
	"flexitarian":      true,
	"calorie-counting": true,
}

// goalDietMatches maps fitness goals to the diet ids that support them.
var goalDietMatches = map[string][]string{
	"fat_loss":    {"low-carb", "keto", "low-fat", "intermittent-fasting"},
	"weight_loss": {"low-carb", "keto", "low-fat", "intermittent-fasting"},
	"muscle_gain": {"high-protein", "calorie-counting"},
	"health":      {"mediterranean", "dash", "flexitarian"},
	"maintenance": {"mediterranean", "calorie-counting", "flexitarian"},
}

// difficultyFit scores how well a diet's difficulty suits a fitness level.
var difficultyFit = map[string]map[catalog.DietDifficulty]float64{
	"beginner":     {catalog.DietEasy: 15, catalog.DietModerate: 8, catalog.DietAdvanced: 3},
	"intermediate": {catalog.DietEasy: 10, catalog.DietModerate: 15, catalog.DietAdvanced: 8},
	"advanced":     {catalog.DietEasy: 8, catalog.DietModerate: 12, catalog.DietAdvanced: 15},
}

// SelectDiet scores every diet in the pool against the profile and returns
// the best one with its score and a human-readable justification. Ties go to
// the diet listed first in the pool.
func SelectDiet(pool []catalog.Diet, p Profile) (SelectionResult, error) {
	if len(pool) == 0 {
		return SelectionResult{}, ErrEmptyCatalog
	}

	scored := make([]SelectionResult, len(pool))
	for i, d := range pool {
		scored[i] = SelectionResult{Diet: d, Score: scoreDiet(d, p), Reasoning: ""}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	top := scored[0]
	top.Reasoning = dietReasoning(top.Diet, p)
	return top, nil
}

// scoreDiet computes a 0-100 score for a diet given the profile.
func scoreDiet(d catalog.Diet, p Profile) float64 {
	score := styleScore(d, p.DietaryStyle) + goalScore(d, p.PrimaryGoal)
	score += difficultyFit[strings.ToLower(p.FitnessLevel)][d.Difficulty]
	score += healthScore(d, p.HealthConditions)

	return clamp(score, 0, maxDietScore)
}

// styleScore awards the dietary-style match component.
func styleScore(d catalog.Diet, style string) float64 {
	matching, ok := dietaryStyleMatches[strings.ToLower(style)]
	if !ok {
		matching = []string{strings.ToLower(style)}
	}
	for _, id := range matching {
		if id == d.ID {
			return styleMatchPoints
		}
	}
	if flexibleDietIDs[d.ID] {
		return styleFlexiblePoints
	}
	return 0
}

// goalScore awards the goal-alignment component.
func goalScore(d catalog.Diet, goal string) float64 {
	for _, id := range goalDietMatches[goal] {
		if id == d.ID {
			return goalMatchPoints
		}
	}
	return 0
}

// healthScore awards up to healthSafeCap points for safe-for matches and an
// uncapped penalty for each caution-for match. Matching is case-insensitive
// substring containment of the condition within the diet's tag.
func healthScore(d catalog.Diet, conditions []string) float64 {
	if len(conditions) == 0 {
		return 0
	}

	var bonus, penalty float64
	for _, condition := range conditions {
		if matchesAnyTag(d.ClinicalInfo.SafeFor, condition) {
			bonus += healthSafePoints
		}
		if matchesAnyTag(d.ClinicalInfo.CautionFor, condition) {
			penalty += healthCautionPoints
		}
	}
	return math.Min(bonus, healthSafeCap) - penalty
}

// matchesAnyTag reports whether any tag contains the condition, ignoring case.
func matchesAnyTag(tags []string, condition string) bool {
	needle := strings.ToLower(condition)
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// dietReasoning assembles the justification sentences for a selected diet.
func dietReasoning(d catalog.Diet, p Profile) string {
	var reasons []string

	switch p.PrimaryGoal {
	case "fat_loss", "weight_loss":
		reasons = append(reasons, "Selected "+d.Name+" to support your fat loss goal with controlled calorie intake")
	case "muscle_gain":
		reasons = append(reasons, "Selected "+d.Name+" to provide adequate protein for muscle growth")
	default:
		reasons = append(reasons, "Selected "+d.Name+" for balanced nutrition and health")
	}

	if p.DietaryStyle != "mixed" {
		reasons = append(reasons, "Matches your "+p.DietaryStyle+" dietary preference")
	}

	if d.Difficulty == catalog.DietEasy {
		reasons = append(reasons, "Easy to follow and maintain long-term")
	}

	return strings.Join(reasons, ". ") + "."
}

func clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(high, v))
}
