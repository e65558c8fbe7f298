package cli

import (
	"github.com/myrjola/planfit/internal/catalog"
	"github.com/myrjola/planfit/internal/diet"
	"github.com/myrjola/planfit/internal/workout"
	"github.com/spf13/pflag"
)

// profileFlags collects every profile attribute a command may need. Each
// command registers only the flag groups it uses.
type profileFlags struct {
	age              int
	gender           string
	weightKg         float64
	heightCm         float64
	fitnessLevel     string
	primaryGoal      string
	dietaryStyle     string
	culturalPref     string
	healthConditions []string
	allergies        []string
	targetCalories   int

	location       string
	equipment      []string
	avoidEquipment []string
	workoutDays    int
	timePerSession int
	injuries       []string
	avoidExercises []string
}

// registerBodyFlags adds the flags the calorie estimator needs.
func (f *profileFlags) registerBodyFlags(fs *pflag.FlagSet) {
	fs.IntVar(&f.age, "age", 30, "Age in years")
	fs.StringVar(&f.gender, "gender", "female", "Gender (male or female formula)")
	fs.Float64Var(&f.weightKg, "weight", 70, "Body weight in kilograms")
	fs.Float64Var(&f.heightCm, "height", 170, "Height in centimeters")
}

// registerGoalFlags adds fitness level and goal flags.
func (f *profileFlags) registerGoalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.fitnessLevel, "fitness-level", "beginner", "Fitness level: beginner, intermediate or advanced")
	fs.StringVar(&f.primaryGoal, "goal", "health", "Primary goal: fat_loss, weight_loss, muscle_gain, strength, health or maintenance")
}

// registerDietFlags adds diet preference flags.
func (f *profileFlags) registerDietFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.dietaryStyle, "dietary-style", "mixed", "Dietary style, e.g. mediterranean, keto, vegan, mixed")
	fs.StringVar(&f.culturalPref, "cultural-preference", "", "Cultural food preference")
	fs.StringSliceVar(&f.healthConditions, "health-condition", nil, "Health condition to factor into diet scoring (repeatable)")
	fs.StringSliceVar(&f.allergies, "allergy", nil, "Food allergy (repeatable)")
	fs.IntVar(&f.targetCalories, "target-calories", 0, "Daily calorie target; 0 estimates it from the profile")
}

// registerWorkoutFlags adds training preference flags.
func (f *profileFlags) registerWorkoutFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.location, "location", "gym", "Training location: home, gym or both")
	fs.StringSliceVar(&f.equipment, "equipment", nil, "Equipment available at home (repeatable)")
	fs.StringSliceVar(&f.avoidEquipment, "avoid-equipment", nil, "Equipment to steer away from (repeatable)")
	fs.IntVar(&f.workoutDays, "workout-days", 3, "Training days per week")
	fs.IntVar(&f.timePerSession, "time-per-session", 60, "Minutes available per session")
	fs.StringSliceVar(&f.injuries, "injury", nil, "Injury to note (repeatable)")
	fs.StringSliceVar(&f.avoidExercises, "avoid-exercise", nil, "Exercise name fragment to exclude (repeatable)")
}

// dietProfile converts the flags into a diet profile.
func (f *profileFlags) dietProfile() diet.Profile {
	return diet.Profile{
		Age:                f.age,
		Gender:             f.gender,
		WeightKg:           f.weightKg,
		HeightCm:           f.heightCm,
		FitnessLevel:       f.fitnessLevel,
		PrimaryGoal:        f.primaryGoal,
		DietaryStyle:       f.dietaryStyle,
		CulturalPreference: f.culturalPref,
		HealthConditions:   f.healthConditions,
		Allergies:          f.allergies,
		TargetCalories:     f.targetCalories,
	}
}

// workoutProfile converts the flags into a workout profile.
func (f *profileFlags) workoutProfile() workout.Profile {
	return workout.Profile{
		FitnessLevel:          f.fitnessLevel,
		PrimaryGoal:           f.primaryGoal,
		Location:              f.location,
		AvailableEquipment:    toEquipment(f.equipment),
		AvoidEquipment:        toEquipment(f.avoidEquipment),
		WorkoutDays:           f.workoutDays,
		TimePerSessionMinutes: f.timePerSession,
		Injuries:              f.injuries,
		AvoidExercises:        f.avoidExercises,
	}
}

func toEquipment(names []string) []catalog.Equipment {
	if len(names) == 0 {
		return nil
	}
	equipment := make([]catalog.Equipment, len(names))
	for i, name := range names {
		equipment[i] = catalog.Equipment(name)
	}
	return equipment
}
