package catalog

// exercises is the curated exercise catalog. Muscle tags line up with the
// split templates in the workout engine (Chest, Back, Shoulders, Biceps,
// Triceps, Quadriceps, Glutes, Hamstrings, Calves, Core).
var exercises = []Exercise{
	// Cardio
	{
		ID: "jumping-jacks", Name: "Jumping Jacks",
		Difficulty: ExerciseBeginner, Category: CategoryCardio, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Calves", "Shoulders"}, SecondaryMuscles: []string{"Core"},
		DefaultSets: 3, DefaultDurationSeconds: 45, RestSeconds: 30,
	},
	{
		ID: "high-knees", Name: "High Knees",
		Difficulty: ExerciseBeginner, Category: CategoryCardio, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Quadriceps", "Calves"}, SecondaryMuscles: []string{"Core"},
		DefaultSets: 3, DefaultDurationSeconds: 40, RestSeconds: 30,
	},
	{
		ID: "mountain-climbers", Name: "Mountain Climbers",
		Difficulty: ExerciseIntermediate, Category: CategoryCardio, Equipment: EquipmentMat,
		PrimaryMuscles: []string{"Core", "Quadriceps"}, SecondaryMuscles: []string{"Shoulders"},
		DefaultSets: 3, DefaultDurationSeconds: 40, RestSeconds: 45,
	},
	{
		ID: "burpees", Name: "Burpees",
		Difficulty: ExerciseIntermediate, Category: CategoryCardio, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Chest", "Quadriceps"}, SecondaryMuscles: []string{"Core", "Shoulders"},
		DefaultSets: 3, DefaultReps: 12, RestSeconds: 60,
	},
	{
		ID: "jump-rope", Name: "Jump Rope",
		Difficulty: ExerciseIntermediate, Category: CategoryCardio, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Calves"}, SecondaryMuscles: []string{"Shoulders", "Core"},
		DefaultSets: 3, DefaultDurationSeconds: 60, RestSeconds: 45,
	},
	{
		ID: "kettlebell-swing", Name: "Kettlebell Swing",
		Difficulty: ExerciseAdvanced, Category: CategoryCardio, Equipment: EquipmentKettlebell,
		PrimaryMuscles: []string{"Glutes", "Hamstrings"}, SecondaryMuscles: []string{"Back", "Core"},
		DefaultSets: 4, DefaultReps: 15, RestSeconds: 60,
	},

	// Upper body
	{
		ID: "push-ups", Name: "Push-ups",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Chest", "Triceps"}, SecondaryMuscles: []string{"Shoulders", "Core"},
		DefaultSets: 3, DefaultReps: 12, RestSeconds: 60,
	},
	{
		ID: "incline-push-ups", Name: "Incline Push-ups",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Chest"}, SecondaryMuscles: []string{"Triceps", "Shoulders"},
		DefaultSets: 3, DefaultReps: 12, RestSeconds: 45,
	},
	{
		ID: "bench-press", Name: "Barbell Bench Press",
		Difficulty: ExerciseIntermediate, Category: CategoryUpperBody, Equipment: EquipmentBarbell,
		PrimaryMuscles: []string{"Chest", "Triceps"}, SecondaryMuscles: []string{"Shoulders"},
		DefaultSets: 4, DefaultReps: 8, RestSeconds: 90,
	},
	{
		ID: "dumbbell-chest-press", Name: "Dumbbell Chest Press",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Chest"}, SecondaryMuscles: []string{"Triceps", "Shoulders"},
		DefaultSets: 3, DefaultReps: 10, RestSeconds: 75,
	},
	{
		ID: "overhead-press", Name: "Overhead Press",
		Difficulty: ExerciseIntermediate, Category: CategoryUpperBody, Equipment: EquipmentBarbell,
		PrimaryMuscles: []string{"Shoulders"}, SecondaryMuscles: []string{"Triceps", "Core"},
		DefaultSets: 4, DefaultReps: 8, RestSeconds: 90,
	},
	{
		ID: "dumbbell-shoulder-press", Name: "Dumbbell Shoulder Press",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Shoulders"}, SecondaryMuscles: []string{"Triceps"},
		DefaultSets: 3, DefaultReps: 10, RestSeconds: 60,
	},
	{
		ID: "lateral-raises", Name: "Lateral Raises",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Shoulders"},
		DefaultSets:    3, DefaultReps: 12, RestSeconds: 45,
	},
	{
		ID: "pull-ups", Name: "Pull-ups",
		Difficulty: ExerciseAdvanced, Category: CategoryUpperBody, Equipment: EquipmentPullUpBar,
		PrimaryMuscles: []string{"Back", "Biceps"}, SecondaryMuscles: []string{"Shoulders", "Core"},
		DefaultSets: 4, DefaultReps: 8, RestSeconds: 90,
	},
	{
		ID: "bent-over-row", Name: "Barbell Bent-over Row",
		Difficulty: ExerciseIntermediate, Category: CategoryUpperBody, Equipment: EquipmentBarbell,
		PrimaryMuscles: []string{"Back"}, SecondaryMuscles: []string{"Biceps", "Core"},
		DefaultSets: 4, DefaultReps: 10, RestSeconds: 90,
	},
	{
		ID: "dumbbell-row", Name: "Single-arm Dumbbell Row",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Back"}, SecondaryMuscles: []string{"Biceps"},
		DefaultSets: 3, DefaultReps: 12, RestSeconds: 60,
	},
	{
		ID: "band-pull-apart", Name: "Band Pull-apart",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentResistanceBands,
		PrimaryMuscles: []string{"Back", "Shoulders"},
		DefaultSets:    3, DefaultReps: 15, RestSeconds: 45,
	},
	{
		ID: "bicep-curls", Name: "Dumbbell Bicep Curls",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Biceps"},
		DefaultSets:    3, DefaultReps: 12, RestSeconds: 45,
	},
	{
		ID: "tricep-dips", Name: "Tricep Dips",
		Difficulty: ExerciseIntermediate, Category: CategoryUpperBody, Equipment: EquipmentBench,
		PrimaryMuscles: []string{"Triceps"}, SecondaryMuscles: []string{"Chest", "Shoulders"},
		DefaultSets: 3, DefaultReps: 10, RestSeconds: 60,
	},
	{
		ID: "overhead-tricep-extension", Name: "Overhead Tricep Extension",
		Difficulty: ExerciseBeginner, Category: CategoryUpperBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Triceps"},
		DefaultSets:    3, DefaultReps: 12, RestSeconds: 45,
	},

	// Lower body
	{
		ID: "bodyweight-squats", Name: "Bodyweight Squats",
		Difficulty: ExerciseBeginner, Category: CategoryLowerBody, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Quadriceps", "Glutes"}, SecondaryMuscles: []string{"Hamstrings", "Core"},
		DefaultSets: 3, DefaultReps: 15, RestSeconds: 45,
	},
	{
		ID: "barbell-squat", Name: "Barbell Back Squat",
		Difficulty: ExerciseAdvanced, Category: CategoryLowerBody, Equipment: EquipmentBarbell,
		PrimaryMuscles: []string{"Quadriceps", "Glutes"}, SecondaryMuscles: []string{"Hamstrings", "Core"},
		DefaultSets: 4, DefaultReps: 8, RestSeconds: 120,
	},
	{
		ID: "goblet-squat", Name: "Goblet Squat",
		Difficulty: ExerciseIntermediate, Category: CategoryLowerBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Quadriceps", "Glutes"}, SecondaryMuscles: []string{"Core"},
		DefaultSets: 3, DefaultReps: 12, RestSeconds: 60,
	},
	{
		ID: "lunges", Name: "Walking Lunges",
		Difficulty: ExerciseBeginner, Category: CategoryLowerBody, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Quadriceps", "Glutes"}, SecondaryMuscles: []string{"Hamstrings", "Calves"},
		DefaultSets: 3, DefaultReps: 12, RestSeconds: 60,
	},
	{
		ID: "deadlift", Name: "Barbell Deadlift",
		Difficulty: ExerciseAdvanced, Category: CategoryLowerBody, Equipment: EquipmentBarbell,
		PrimaryMuscles: []string{"Hamstrings", "Glutes", "Back"}, SecondaryMuscles: []string{"Core"},
		DefaultSets: 4, DefaultReps: 6, RestSeconds: 120,
	},
	{
		ID: "romanian-deadlift", Name: "Dumbbell Romanian Deadlift",
		Difficulty: ExerciseIntermediate, Category: CategoryLowerBody, Equipment: EquipmentDumbbells,
		PrimaryMuscles: []string{"Hamstrings", "Glutes"}, SecondaryMuscles: []string{"Back"},
		DefaultSets: 3, DefaultReps: 10, RestSeconds: 75,
	},
	{
		ID: "glute-bridge", Name: "Glute Bridge",
		Difficulty: ExerciseBeginner, Category: CategoryLowerBody, Equipment: EquipmentMat,
		PrimaryMuscles: []string{"Glutes"}, SecondaryMuscles: []string{"Hamstrings", "Core"},
		DefaultSets: 3, DefaultReps: 15, RestSeconds: 45,
	},
	{
		ID: "hip-thrust", Name: "Barbell Hip Thrust",
		Difficulty: ExerciseIntermediate, Category: CategoryLowerBody, Equipment: EquipmentBarbell,
		PrimaryMuscles: []string{"Glutes"}, SecondaryMuscles: []string{"Hamstrings"},
		DefaultSets: 4, DefaultReps: 10, RestSeconds: 90,
	},
	{
		ID: "step-ups", Name: "Step-ups",
		Difficulty: ExerciseBeginner, Category: CategoryLowerBody, Equipment: EquipmentBench,
		PrimaryMuscles: []string{"Quadriceps", "Glutes"}, SecondaryMuscles: []string{"Calves"},
		DefaultSets: 3, DefaultReps: 12, RestSeconds: 60,
	},
	{
		ID: "calf-raises", Name: "Standing Calf Raises",
		Difficulty: ExerciseBeginner, Category: CategoryLowerBody, Equipment: EquipmentNone,
		PrimaryMuscles: []string{"Calves"},
		DefaultSets:    3, DefaultReps: 20, RestSeconds: 30,
	},

	// Core
	{
		ID: "plank", Name: "Plank",
		Difficulty: ExerciseBeginner, Category: CategoryCore, Equipment: EquipmentMat,
		PrimaryMuscles: []string{"Core"}, SecondaryMuscles: []string{"Shoulders"},
		DefaultSets: 3, DefaultDurationSeconds: 45, RestSeconds: 45,
	},
	{
		ID: "crunches", Name: "Crunches",
		Difficulty: ExerciseBeginner, Category: CategoryCore, Equipment: EquipmentMat,
		PrimaryMuscles: []string{"Core"},
		DefaultSets:    3, DefaultReps: 15, RestSeconds: 30,
	},
	{
		ID: "russian-twists", Name: "Russian Twists",
		Difficulty: ExerciseIntermediate, Category: CategoryCore, Equipment: EquipmentMat,
		PrimaryMuscles: []string{"Core"},
		DefaultSets:    3, DefaultReps: 20, RestSeconds: 45,
	},
	{
		ID: "leg-raises", Name: "Hanging Leg Raises",
		Difficulty: ExerciseAdvanced, Category: CategoryCore, Equipment: EquipmentPullUpBar,
		PrimaryMuscles: []string{"Core"}, SecondaryMuscles: []string{"Quadriceps"},
		DefaultSets: 3, DefaultReps: 10, RestSeconds: 60,
	},
	{
		ID: "bicycle-crunches", Name: "Bicycle Crunches",
		Difficulty: ExerciseBeginner, Category: CategoryCore, Equipment: EquipmentMat,
		PrimaryMuscles: []string{"Core"},
		DefaultSets:    3, DefaultReps: 20, RestSeconds: 30,
	},
	{
		ID: "dead-bug", Name: "Dead Bug",
		Difficulty: ExerciseBeginner, Category: CategoryCore, Equipment: EquipmentMat,
		PrimaryMuscles: []string{"Core"},
		DefaultSets:    3, DefaultDurationSeconds: 30, RestSeconds: 30,
	},
}
