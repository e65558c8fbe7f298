package workout

// weekSchedule pairs a weekly split with the calendar days it occupies.
// Entries in schedule are either a weekday name or restMarker.
type weekSchedule struct {
	splits   []splitDay
	schedule []string
}

const restMarker = "Rest"

var daysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// splitForDays returns the weekly split template for a training frequency.
// Frequencies without a dedicated template fall back to a generic three-day
// full-body week.
func splitForDays(workoutDays int) weekSchedule {
	switch workoutDays {
	case 3:
		return weekSchedule{
			splits: []splitDay{
				{typ: "Full Body A", muscles: []string{"Quadriceps", "Chest", "Back", "Core"}},
				{typ: "Full Body B", muscles: []string{"Glutes", "Hamstrings", "Shoulders", "Arms", "Core"}},
				{typ: "Full Body C", muscles: []string{"Quadriceps", "Glutes", "Back", "Chest", "Core"}},
			},
			schedule: []string{"Monday", restMarker, "Wednesday", restMarker, "Friday", restMarker, restMarker},
		}
	case 4:
		return weekSchedule{
			splits: []splitDay{
				{typ: "Upper Body", muscles: []string{"Chest", "Back", "Shoulders", "Arms"}},
				{typ: "Lower Body", muscles: []string{"Quadriceps", "Glutes", "Hamstrings", "Calves"}},
				{typ: "Upper Body", muscles: []string{"Chest", "Back", "Shoulders", "Arms"}},
				{typ: "Lower Body + Core", muscles: []string{"Quadriceps", "Glutes", "Core"}},
			},
			schedule: []string{"Monday", "Tuesday", restMarker, "Thursday", "Friday", restMarker, restMarker},
		}
	case 5:
		return weekSchedule{
			splits: []splitDay{
				{typ: "Chest + Triceps", muscles: []string{"Chest", "Triceps"}},
				{typ: "Back + Biceps", muscles: []string{"Back", "Biceps"}},
				{typ: "Legs", muscles: []string{"Quadriceps", "Glutes", "Hamstrings", "Calves"}},
				{typ: "Shoulders + Core", muscles: []string{"Shoulders", "Core"}},
				{typ: "Full Body", muscles: []string{"Chest", "Back", "Quadriceps", "Core"}},
			},
			schedule: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", restMarker, restMarker},
		}
	case 6:
		return weekSchedule{
			splits: []splitDay{
				{typ: "Push (Chest, Shoulders, Triceps)", muscles: []string{"Chest", "Shoulders", "Triceps"}},
				{typ: "Pull (Back, Biceps)", muscles: []string{"Back", "Biceps"}},
				{typ: "Legs", muscles: []string{"Quadriceps", "Glutes", "Hamstrings"}},
				{typ: "Push", muscles: []string{"Chest", "Shoulders", "Triceps"}},
				{typ: "Pull", muscles: []string{"Back", "Biceps"}},
				{typ: "Legs + Core", muscles: []string{"Quadriceps", "Glutes", "Core"}},
			},
			schedule: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", restMarker},
		}
	default:
		return weekSchedule{
			splits: []splitDay{
				{typ: "Full Body", muscles: []string{"Quadriceps", "Chest", "Back", "Core"}},
				{typ: "Full Body", muscles: []string{"Glutes", "Shoulders", "Arms", "Core"}},
				{typ: "Full Body", muscles: []string{"Quadriceps", "Back", "Chest", "Core"}},
			},
			schedule: []string{"Monday", restMarker, "Wednesday", restMarker, "Friday", restMarker, restMarker},
		}
	}
}
