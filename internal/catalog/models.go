// Package catalog holds the static diet and exercise catalogs that the
// selection engines draw from. The catalogs are built at compile time and
// are read-only for the process lifetime.
package catalog

// DietDifficulty describes how demanding a diet is to follow.
type DietDifficulty string

// Diet difficulty constants.
const (
	DietEasy     DietDifficulty = "Easy"
	DietModerate DietDifficulty = "Moderate"
	DietAdvanced DietDifficulty = "Advanced"
)

// ExerciseDifficulty describes the skill level an exercise requires.
type ExerciseDifficulty string

// Exercise difficulty constants.
const (
	ExerciseBeginner     ExerciseDifficulty = "Beginner"
	ExerciseIntermediate ExerciseDifficulty = "Intermediate"
	ExerciseAdvanced     ExerciseDifficulty = "Advanced"
)

// Category groups exercises by body focus.
type Category string

// Exercise category constants.
const (
	CategoryCardio    Category = "Cardio"
	CategoryUpperBody Category = "Upper Body"
	CategoryLowerBody Category = "Lower Body"
	CategoryCore      Category = "Core"
	CategoryFullBody  Category = "Full Body"
)

// Equipment is the single equipment tag an exercise needs.
type Equipment string

// Equipment constants.
const (
	EquipmentNone            Equipment = "None"
	EquipmentMat             Equipment = "Mat"
	EquipmentDumbbells       Equipment = "Dumbbells"
	EquipmentBarbell         Equipment = "Barbell"
	EquipmentKettlebell      Equipment = "Kettlebell"
	EquipmentResistanceBands Equipment = "Resistance Bands"
	EquipmentPullUpBar       Equipment = "Pull-up Bar"
	EquipmentBench           Equipment = "Bench"
)

// Range is an inclusive min-max span, e.g. a calorie or macro range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Midpoint returns the arithmetic middle of the range.
func (r Range) Midpoint() float64 {
	return float64(r.Min+r.Max) / 2
}

// MealOption is one concrete meal choice within a diet. The name is unique
// within its option list and serves as the meal's identity. Macro ranges are
// optional; snack options typically carry calories only.
type MealOption struct {
	Name     string `json:"name"`
	Calories Range  `json:"calories"`
	Protein  *Range `json:"protein,omitempty"`
	Carbs    *Range `json:"carbs,omitempty"`
	Fat      *Range `json:"fat,omitempty"`
}

// HasCompleteMacros reports whether protein, carbs and fat are all present.
func (m MealOption) HasCompleteMacros() bool {
	return m.Protein != nil && m.Carbs != nil && m.Fat != nil
}

// ClinicalInfo carries the condition tags a diet is safe or risky for.
type ClinicalInfo struct {
	SafeFor    []string `json:"safe_for"`
	CautionFor []string `json:"caution_for,omitempty"`
}

// Diet is a catalog entry representing a named eating pattern with
// associated meal option pools. Every option list is non-empty.
type Diet struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Difficulty       DietDifficulty `json:"difficulty"`
	ClinicalInfo     ClinicalInfo   `json:"clinical_info"`
	BreakfastOptions []MealOption   `json:"breakfast_options"`
	LunchOptions     []MealOption   `json:"lunch_options"`
	DinnerOptions    []MealOption   `json:"dinner_options"`
	SnackOptions     []MealOption   `json:"snack_options"`
}

// Exercise is a catalog entry for a single movement. An exercise is either
// rep-based (DefaultReps > 0) or duration-based (DefaultDurationSeconds > 0);
// it always has at least one of the two.
type Exercise struct {
	ID                     string             `json:"id"`
	Name                   string             `json:"name"`
	Difficulty             ExerciseDifficulty `json:"difficulty"`
	Category               Category           `json:"category"`
	Equipment              Equipment          `json:"equipment"`
	PrimaryMuscles         []string           `json:"primary_muscles"`
	SecondaryMuscles       []string           `json:"secondary_muscles,omitempty"`
	DefaultSets            int                `json:"default_sets"`
	DefaultReps            int                `json:"default_reps,omitempty"`
	DefaultDurationSeconds int                `json:"default_duration_seconds,omitempty"`
	RestSeconds            int                `json:"rest_seconds"`
}

// DurationBased reports whether the exercise is timed rather than counted.
func (e Exercise) DurationBased() bool {
	return e.DefaultDurationSeconds > 0
}
