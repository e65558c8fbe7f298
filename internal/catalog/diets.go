package catalog

// macro builds an optional macro range for the catalog literals below.
func macro(min, max int) *Range {
	return &Range{Min: min, Max: max}
}

// diets is the curated diet catalog: the twelve most common clinically
// described eating patterns with their meal option pools.
var diets = []Diet{
	{
		ID:         "mediterranean",
		Name:       "Mediterranean",
		Difficulty: DietEasy,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"General adults", "Hypertension", "Type-2 diabetes (non-insulin)"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Oatmeal + Fruit + Nuts", Calories: Range{Min: 300, Max: 380}, Protein: macro(8, 12), Carbs: macro(40, 55), Fat: macro(10, 16)},
			{Name: "Greek Yogurt + Berries + Honey", Calories: Range{Min: 280, Max: 350}, Protein: macro(12, 18), Carbs: macro(35, 45), Fat: macro(6, 12)},
			{Name: "Whole Grain Toast + Avocado + Tomato", Calories: Range{Min: 320, Max: 400}, Protein: macro(8, 12), Carbs: macro(38, 50), Fat: macro(14, 20)},
			{Name: "Vegetable Omelet + Whole Grain Bread", Calories: Range{Min: 310, Max: 390}, Protein: macro(16, 22), Carbs: macro(30, 40), Fat: macro(12, 18)},
			{Name: "Smoothie Bowl (Fruit + Nuts + Seeds)", Calories: Range{Min: 290, Max: 360}, Protein: macro(9, 14), Carbs: macro(42, 55), Fat: macro(10, 15)},
			{Name: "Cottage Cheese + Fresh Fruit", Calories: Range{Min: 270, Max: 340}, Protein: macro(14, 20), Carbs: macro(32, 42), Fat: macro(5, 10)},
			{Name: "Muesli + Milk + Dried Fruits", Calories: Range{Min: 310, Max: 380}, Protein: macro(10, 15), Carbs: macro(45, 58), Fat: macro(8, 14)},
		},
		LunchOptions: []MealOption{
			{Name: "Grilled Fish + Salad + Whole Grain", Calories: Range{Min: 420, Max: 520}, Protein: macro(25, 35), Carbs: macro(35, 50), Fat: macro(12, 20)},
			{Name: "Chicken Souvlaki + Greek Salad + Pita", Calories: Range{Min: 440, Max: 530}, Protein: macro(28, 38), Carbs: macro(38, 52), Fat: macro(14, 22)},
			{Name: "Lentil Soup + Whole Grain Bread + Salad", Calories: Range{Min: 400, Max: 490}, Protein: macro(18, 26), Carbs: macro(52, 68), Fat: macro(8, 14)},
			{Name: "Tuna Salad + Olive Oil + Vegetables", Calories: Range{Min: 410, Max: 500}, Protein: macro(26, 34), Carbs: macro(28, 40), Fat: macro(16, 24)},
			{Name: "Grilled Vegetables + Quinoa + Feta", Calories: Range{Min: 390, Max: 480}, Protein: macro(16, 24), Carbs: macro(42, 56), Fat: macro(14, 20)},
			{Name: "Salmon + Brown Rice + Steamed Broccoli", Calories: Range{Min: 430, Max: 520}, Protein: macro(30, 40), Carbs: macro(40, 52), Fat: macro(14, 22)},
			{Name: "Chickpea Stew + Whole Grain + Yogurt", Calories: Range{Min: 400, Max: 490}, Protein: macro(20, 28), Carbs: macro(50, 65), Fat: macro(10, 16)},
		},
		DinnerOptions: []MealOption{
			{Name: "Vegetable Stew + Legumes", Calories: Range{Min: 380, Max: 480}, Protein: macro(15, 24), Carbs: macro(40, 60), Fat: macro(10, 18)},
			{Name: "Baked Fish + Roasted Vegetables", Calories: Range{Min: 360, Max: 450}, Protein: macro(28, 36), Carbs: macro(25, 38), Fat: macro(12, 20)},
			{Name: "Grilled Chicken + Greek Salad", Calories: Range{Min: 370, Max: 460}, Protein: macro(30, 38), Carbs: macro(20, 32), Fat: macro(14, 22)},
			{Name: "Pasta Primavera (Whole Grain + Veggies)", Calories: Range{Min: 390, Max: 480}, Protein: macro(14, 22), Carbs: macro(50, 65), Fat: macro(12, 18)},
			{Name: "Stuffed Bell Peppers + Side Salad", Calories: Range{Min: 350, Max: 440}, Protein: macro(18, 26), Carbs: macro(35, 50), Fat: macro(10, 16)},
			{Name: "Grilled Shrimp + Couscous + Vegetables", Calories: Range{Min: 380, Max: 470}, Protein: macro(26, 34), Carbs: macro(38, 52), Fat: macro(10, 16)},
			{Name: "Turkey Meatballs + Tomato Sauce + Zucchini", Calories: Range{Min: 370, Max: 460}, Protein: macro(28, 36), Carbs: macro(22, 36), Fat: macro(14, 22)},
		},
		SnackOptions: []MealOption{
			{Name: "Fresh fruit", Calories: Range{Min: 80, Max: 150}},
			{Name: "Handful of nuts", Calories: Range{Min: 120, Max: 180}},
			{Name: "Greek yogurt", Calories: Range{Min: 100, Max: 160}},
			{Name: "Hummus + veggie sticks", Calories: Range{Min: 110, Max: 170}},
		},
	},
	{
		ID:         "low-carb",
		Name:       "Low-Carb",
		Difficulty: DietModerate,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"Adults", "Type-2 diabetes (non-insulin)"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Eggs + Avocado", Calories: Range{Min: 300, Max: 380}, Protein: macro(14, 22), Carbs: macro(6, 12), Fat: macro(20, 30)},
			{Name: "Greek Yogurt + Berries + Almonds", Calories: Range{Min: 280, Max: 360}, Protein: macro(16, 24), Carbs: macro(8, 14), Fat: macro(18, 26)},
			{Name: "Scrambled Eggs + Spinach + Cheese", Calories: Range{Min: 310, Max: 390}, Protein: macro(18, 26), Carbs: macro(5, 10), Fat: macro(22, 32)},
			{Name: "Omelet + Mushrooms + Bell Peppers", Calories: Range{Min: 290, Max: 370}, Protein: macro(16, 24), Carbs: macro(7, 13), Fat: macro(20, 28)},
			{Name: "Smoked Salmon + Cream Cheese + Cucumber", Calories: Range{Min: 300, Max: 380}, Protein: macro(20, 28), Carbs: macro(6, 11), Fat: macro(20, 28)},
			{Name: "Protein Smoothie + Nut Butter", Calories: Range{Min: 310, Max: 390}, Protein: macro(22, 30), Carbs: macro(8, 14), Fat: macro(18, 26)},
			{Name: "Breakfast Bowl (Eggs + Bacon + Avocado)", Calories: Range{Min: 320, Max: 400}, Protein: macro(20, 28), Carbs: macro(6, 12), Fat: macro(24, 34)},
		},
		LunchOptions: []MealOption{
			{Name: "Grilled Chicken + Veggies", Calories: Range{Min: 350, Max: 450}, Protein: macro(28, 40), Carbs: macro(10, 25), Fat: macro(12, 22)},
			{Name: "Beef Stir-fry + Cauliflower Rice", Calories: Range{Min: 370, Max: 460}, Protein: macro(30, 42), Carbs: macro(12, 22), Fat: macro(16, 26)},
			{Name: "Salmon Salad + Olive Oil Dressing", Calories: Range{Min: 360, Max: 450}, Protein: macro(32, 44), Carbs: macro(8, 18), Fat: macro(18, 28)},
			{Name: "Turkey Burger (No Bun) + Side Salad", Calories: Range{Min: 340, Max: 430}, Protein: macro(28, 38), Carbs: macro(10, 20), Fat: macro(14, 24)},
			{Name: "Grilled Shrimp + Zucchini Noodles", Calories: Range{Min: 330, Max: 420}, Protein: macro(30, 40), Carbs: macro(12, 22), Fat: macro(12, 20)},
			{Name: "Chicken Caesar Salad (No Croutons)", Calories: Range{Min: 360, Max: 450}, Protein: macro(32, 42), Carbs: macro(9, 18), Fat: macro(16, 26)},
			{Name: "Pork Chops + Green Beans + Butter", Calories: Range{Min: 380, Max: 470}, Protein: macro(34, 44), Carbs: macro(10, 20), Fat: macro(18, 28)},
		},
		DinnerOptions: []MealOption{
			{Name: "Fish + Leafy Greens", Calories: Range{Min: 300, Max: 420}, Protein: macro(22, 32), Carbs: macro(8, 18), Fat: macro(10, 18)},
			{Name: "Steak + Asparagus + Butter", Calories: Range{Min: 380, Max: 480}, Protein: macro(36, 46), Carbs: macro(6, 14), Fat: macro(20, 30)},
			{Name: "Baked Chicken Thighs + Broccoli", Calories: Range{Min: 350, Max: 440}, Protein: macro(32, 42), Carbs: macro(10, 18), Fat: macro(16, 26)},
			{Name: "Grilled Salmon + Brussels Sprouts", Calories: Range{Min: 340, Max: 430}, Protein: macro(30, 40), Carbs: macro(12, 20), Fat: macro(16, 24)},
			{Name: "Lamb Chops + Roasted Vegetables", Calories: Range{Min: 390, Max: 480}, Protein: macro(34, 44), Carbs: macro(10, 18), Fat: macro(22, 32)},
			{Name: "Turkey Meatballs + Marinara + Zucchini", Calories: Range{Min: 330, Max: 420}, Protein: macro(30, 40), Carbs: macro(12, 22), Fat: macro(14, 22)},
			{Name: "Cod + Cauliflower Mash + Green Salad", Calories: Range{Min: 320, Max: 410}, Protein: macro(28, 38), Carbs: macro(14, 24), Fat: macro(12, 20)},
		},
		SnackOptions: []MealOption{
			{Name: "Nuts (small)", Calories: Range{Min: 100, Max: 180}},
			{Name: "Cheese cubes", Calories: Range{Min: 90, Max: 150}},
			{Name: "Hard-boiled eggs", Calories: Range{Min: 70, Max: 140}},
			{Name: "Celery + almond butter", Calories: Range{Min: 110, Max: 170}},
		},
	},
	{
		ID:         "low-fat",
		Name:       "Low-Fat",
		Difficulty: DietEasy,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"General adults"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Fruit + Low-fat Yogurt", Calories: Range{Min: 220, Max: 300}, Protein: macro(8, 12), Carbs: macro(35, 50), Fat: macro(2, 6)},
		},
		LunchOptions: []MealOption{
			{Name: "Grilled Turkey + Salad", Calories: Range{Min: 320, Max: 420}, Protein: macro(25, 34), Carbs: macro(20, 35), Fat: macro(6, 12)},
		},
		DinnerOptions: []MealOption{
			{Name: "Steamed Fish + Veggies", Calories: Range{Min: 300, Max: 380}, Protein: macro(22, 30), Carbs: macro(20, 30), Fat: macro(6, 10)},
		},
		SnackOptions: []MealOption{
			{Name: "Fresh fruit", Calories: Range{Min: 60, Max: 120}},
		},
	},
	{
		ID:         "dash",
		Name:       "DASH",
		Difficulty: DietEasy,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"Hypertension", "General adults"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Oatmeal + Fruit", Calories: Range{Min: 280, Max: 340}, Protein: macro(6, 10), Carbs: macro(40, 55), Fat: macro(6, 10)},
		},
		LunchOptions: []MealOption{
			{Name: "Lentil Soup + Salad", Calories: Range{Min: 350, Max: 420}, Protein: macro(18, 26), Carbs: macro(40, 55), Fat: macro(6, 12)},
		},
		DinnerOptions: []MealOption{
			{Name: "Grilled Chicken + Veggies", Calories: Range{Min: 360, Max: 440}, Protein: macro(28, 36), Carbs: macro(20, 30), Fat: macro(8, 14)},
		},
		SnackOptions: []MealOption{
			{Name: "Raw Veggies", Calories: Range{Min: 30, Max: 80}},
		},
	},
	{
		ID:         "keto",
		Name:       "Ketogenic",
		Difficulty: DietAdvanced,
		ClinicalInfo: ClinicalInfo{
			SafeFor:    []string{"Selected adults"},
			CautionFor: []string{"Pregnancy", "Type-1 diabetes"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Eggs + Buttered Spinach", Calories: Range{Min: 350, Max: 450}, Protein: macro(15, 25), Carbs: macro(3, 8), Fat: macro(28, 38)},
			{Name: "Bacon + Eggs + Avocado", Calories: Range{Min: 380, Max: 480}, Protein: macro(18, 28), Carbs: macro(4, 9), Fat: macro(30, 42)},
			{Name: "Keto Coffee + Scrambled Eggs", Calories: Range{Min: 360, Max: 460}, Protein: macro(16, 24), Carbs: macro(3, 7), Fat: macro(32, 42)},
			{Name: "Cheese Omelet + Sausage", Calories: Range{Min: 370, Max: 470}, Protein: macro(20, 30), Carbs: macro(4, 8), Fat: macro(28, 38)},
			{Name: "Smoked Salmon + Full-fat Cream Cheese", Calories: Range{Min: 340, Max: 440}, Protein: macro(22, 32), Carbs: macro(3, 6), Fat: macro(26, 36)},
			{Name: "Keto Pancakes (Almond Flour) + Butter", Calories: Range{Min: 350, Max: 450}, Protein: macro(14, 22), Carbs: macro(5, 10), Fat: macro(30, 40)},
			{Name: "Greek Yogurt (Full Fat) + Nuts", Calories: Range{Min: 360, Max: 460}, Protein: macro(16, 24), Carbs: macro(6, 12), Fat: macro(28, 38)},
		},
		LunchOptions: []MealOption{
			{Name: "Salad + Olive Oil + Protein", Calories: Range{Min: 400, Max: 520}, Protein: macro(20, 35), Carbs: macro(6, 12), Fat: macro(30, 40)},
			{Name: "Bunless Burger + Cheese + Avocado", Calories: Range{Min: 420, Max: 530}, Protein: macro(28, 38), Carbs: macro(5, 10), Fat: macro(32, 44)},
			{Name: "Chicken Wings + Ranch Dressing", Calories: Range{Min: 410, Max: 520}, Protein: macro(26, 36), Carbs: macro(4, 8), Fat: macro(32, 42)},
			{Name: "Tuna Salad + Mayonnaise + Celery", Calories: Range{Min: 390, Max: 490}, Protein: macro(28, 38), Carbs: macro(5, 9), Fat: macro(28, 38)},
			{Name: "Steak Salad + Blue Cheese Dressing", Calories: Range{Min: 430, Max: 540}, Protein: macro(32, 42), Carbs: macro(6, 11), Fat: macro(32, 44)},
			{Name: "Pork Belly + Cauliflower Rice", Calories: Range{Min: 440, Max: 550}, Protein: macro(24, 34), Carbs: macro(7, 13), Fat: macro(36, 48)},
			{Name: "Salmon + Butter + Asparagus", Calories: Range{Min: 410, Max: 510}, Protein: macro(30, 40), Carbs: macro(5, 10), Fat: macro(30, 40)},
		},
		DinnerOptions: []MealOption{
			{Name: "Grilled Fish + Veggies + Butter", Calories: Range{Min: 380, Max: 520}, Protein: macro(22, 34), Carbs: macro(6, 12), Fat: macro(26, 40)},
			{Name: "Ribeye Steak + Garlic Butter + Greens", Calories: Range{Min: 450, Max: 560}, Protein: macro(38, 48), Carbs: macro(4, 9), Fat: macro(32, 44)},
			{Name: "Roasted Chicken Thighs + Brussels Sprouts", Calories: Range{Min: 400, Max: 500}, Protein: macro(32, 42), Carbs: macro(8, 14), Fat: macro(28, 38)},
			{Name: "Baked Salmon + Cream Sauce + Broccoli", Calories: Range{Min: 410, Max: 510}, Protein: macro(34, 44), Carbs: macro(6, 11), Fat: macro(30, 40)},
			{Name: "Lamb Chops + Mint Butter + Spinach", Calories: Range{Min: 430, Max: 530}, Protein: macro(36, 46), Carbs: macro(5, 10), Fat: macro(32, 42)},
			{Name: "Duck Breast + Green Beans + Ghee", Calories: Range{Min: 420, Max: 520}, Protein: macro(34, 44), Carbs: macro(7, 12), Fat: macro(30, 40)},
			{Name: "Beef Short Ribs + Cauliflower Mash", Calories: Range{Min: 440, Max: 540}, Protein: macro(36, 46), Carbs: macro(8, 14), Fat: macro(32, 42)},
		},
		SnackOptions: []MealOption{
			{Name: "Cheese + Nuts", Calories: Range{Min: 150, Max: 250}},
			{Name: "Pork rinds", Calories: Range{Min: 80, Max: 160}},
			{Name: "Avocado halves", Calories: Range{Min: 120, Max: 200}},
			{Name: "Fat bombs", Calories: Range{Min: 100, Max: 180}},
		},
	},
	{
		ID:         "paleo",
		Name:       "Paleo",
		Difficulty: DietModerate,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"General adults"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Fruit + Nuts + Eggs", Calories: Range{Min: 320, Max: 420}, Protein: macro(12, 20), Carbs: macro(25, 40), Fat: macro(14, 28)},
		},
		LunchOptions: []MealOption{
			{Name: "Grilled Meat + Salad", Calories: Range{Min: 420, Max: 540}, Protein: macro(30, 45), Carbs: macro(15, 30), Fat: macro(18, 32)},
		},
		DinnerOptions: []MealOption{
			{Name: "Roast + Veggies", Calories: Range{Min: 400, Max: 520}, Protein: macro(28, 40), Carbs: macro(20, 34), Fat: macro(16, 30)},
		},
		SnackOptions: []MealOption{
			{Name: "Fresh fruit", Calories: Range{Min: 60, Max: 120}},
		},
	},
	{
		ID:         "vegetarian",
		Name:       "Vegetarian",
		Difficulty: DietEasy,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"General adults", "Pregnancy (with planning)"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Oatmeal + Milk + Fruit", Calories: Range{Min: 300, Max: 380}, Protein: macro(8, 14), Carbs: macro(40, 55), Fat: macro(6, 12)},
		},
		LunchOptions: []MealOption{
			{Name: "Bean Stew + Rice", Calories: Range{Min: 420, Max: 540}, Protein: macro(18, 28), Carbs: macro(50, 70), Fat: macro(10, 18)},
		},
		DinnerOptions: []MealOption{
			{Name: "Tofu Stir-Fry + Veggies", Calories: Range{Min: 360, Max: 480}, Protein: macro(18, 26), Carbs: macro(30, 50), Fat: macro(12, 20)},
		},
		SnackOptions: []MealOption{
			{Name: "Yogurt", Calories: Range{Min: 100, Max: 160}},
		},
	},
	{
		ID:         "vegan",
		Name:       "Vegan",
		Difficulty: DietModerate,
		ClinicalInfo: ClinicalInfo{
			SafeFor:    []string{"Adults"},
			CautionFor: []string{"Pregnancy (requires planning)"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Smoothie + Plant Protein", Calories: Range{Min: 300, Max: 380}, Protein: macro(10, 20), Carbs: macro(35, 55), Fat: macro(8, 18)},
		},
		LunchOptions: []MealOption{
			{Name: "Chickpea Salad + Quinoa", Calories: Range{Min: 380, Max: 520}, Protein: macro(14, 24), Carbs: macro(40, 60), Fat: macro(10, 18)},
		},
		DinnerOptions: []MealOption{
			{Name: "Lentil Curry + Rice", Calories: Range{Min: 420, Max: 560}, Protein: macro(18, 28), Carbs: macro(50, 70), Fat: macro(10, 18)},
		},
		SnackOptions: []MealOption{
			{Name: "Roasted chickpeas", Calories: Range{Min: 120, Max: 180}},
		},
	},
	{
		ID:         "intermittent-fasting",
		Name:       "Intermittent Fasting",
		Difficulty: DietModerate,
		ClinicalInfo: ClinicalInfo{
			SafeFor:    []string{"Adults"},
			CautionFor: []string{"Pregnancy", "Diabetes on medications"},
		},
		BreakfastOptions: []MealOption{
			{Name: "(If eating) Protein-rich meal", Calories: Range{Min: 350, Max: 500}, Protein: macro(20, 35), Carbs: macro(20, 60), Fat: macro(10, 30)},
		},
		LunchOptions: []MealOption{
			{Name: "Balanced plate", Calories: Range{Min: 400, Max: 600}, Protein: macro(25, 40), Carbs: macro(30, 70), Fat: macro(12, 30)},
		},
		DinnerOptions: []MealOption{
			{Name: "Balanced plate", Calories: Range{Min: 400, Max: 600}, Protein: macro(25, 40), Carbs: macro(30, 70), Fat: macro(12, 30)},
		},
		SnackOptions: []MealOption{
			{Name: "Nuts or Yogurt", Calories: Range{Min: 100, Max: 200}},
		},
	},
	{
		ID:         "flexitarian",
		Name:       "Flexitarian",
		Difficulty: DietEasy,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"General adults"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Oat + Fruit", Calories: Range{Min: 300, Max: 380}, Protein: macro(8, 14), Carbs: macro(40, 55), Fat: macro(6, 12)},
		},
		LunchOptions: []MealOption{
			{Name: "Veg + Small Fish Portion", Calories: Range{Min: 360, Max: 480}, Protein: macro(20, 34), Carbs: macro(30, 50), Fat: macro(10, 18)},
		},
		DinnerOptions: []MealOption{
			{Name: "Plant-forward plate", Calories: Range{Min: 350, Max: 500}, Protein: macro(18, 32), Carbs: macro(30, 60), Fat: macro(10, 22)},
		},
		SnackOptions: []MealOption{
			{Name: "Fruit", Calories: Range{Min: 60, Max: 120}},
		},
	},
	{
		ID:         "gluten-free",
		Name:       "Gluten-Free",
		Difficulty: DietModerate,
		ClinicalInfo: ClinicalInfo{
			SafeFor: []string{"Celiac disease", "Gluten sensitivity"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Gluten-free porridge", Calories: Range{Min: 280, Max: 360}, Protein: macro(6, 12), Carbs: macro(35, 50), Fat: macro(6, 12)},
		},
		LunchOptions: []MealOption{
			{Name: "Grilled Protein + Veg", Calories: Range{Min: 360, Max: 480}, Protein: macro(24, 36), Carbs: macro(20, 40), Fat: macro(10, 20)},
		},
		DinnerOptions: []MealOption{
			{Name: "Rice-based plate + Veg", Calories: Range{Min: 380, Max: 520}, Protein: macro(20, 34), Carbs: macro(40, 70), Fat: macro(10, 18)},
		},
		SnackOptions: []MealOption{
			{Name: "Fruit or Nuts", Calories: Range{Min: 80, Max: 180}},
		},
	},
	{
		ID:         "high-protein",
		Name:       "High-Protein",
		Difficulty: DietModerate,
		ClinicalInfo: ClinicalInfo{
			SafeFor:    []string{"Active adults"},
			CautionFor: []string{"Renal disease"},
		},
		BreakfastOptions: []MealOption{
			{Name: "Eggs + Yogurt", Calories: Range{Min: 320, Max: 420}, Protein: macro(25, 40), Carbs: macro(10, 30), Fat: macro(12, 22)},
			{Name: "Protein Pancakes + Berries", Calories: Range{Min: 340, Max: 430}, Protein: macro(28, 38), Carbs: macro(35, 48), Fat: macro(8, 16)},
			{Name: "Greek Yogurt + Protein Powder + Granola", Calories: Range{Min: 350, Max: 440}, Protein: macro(32, 42), Carbs: macro(30, 45), Fat: macro(8, 14)},
			{Name: "Egg White Omelet + Turkey Sausage", Calories: Range{Min: 330, Max: 420}, Protein: macro(30, 40), Carbs: macro(15, 28), Fat: macro(10, 18)},
			{Name: "Cottage Cheese + Almonds + Fruit", Calories: Range{Min: 310, Max: 400}, Protein: macro(26, 36), Carbs: macro(25, 38), Fat: macro(10, 18)},
			{Name: "Protein Smoothie + Oats", Calories: Range{Min: 340, Max: 430}, Protein: macro(30, 40), Carbs: macro(35, 50), Fat: macro(8, 14)},
			{Name: "Scrambled Eggs + Chicken Breast + Toast", Calories: Range{Min: 360, Max: 450}, Protein: macro(35, 45), Carbs: macro(28, 40), Fat: macro(10, 18)},
		},
		LunchOptions: []MealOption{
			{Name: "Grilled Chicken + Quinoa", Calories: Range{Min: 420, Max: 560}, Protein: macro(30, 45), Carbs: macro(40, 60), Fat: macro(10, 22)},
			{Name: "Tuna Steak + Brown Rice + Vegetables", Calories: Range{Min: 440, Max: 550}, Protein: macro(38, 50), Carbs: macro(45, 62), Fat: macro(10, 18)},
			{Name: "Beef Stir-fry + Rice Noodles", Calories: Range{Min: 450, Max: 560}, Protein: macro(36, 48), Carbs: macro(42, 58), Fat: macro(12, 22)},
			{Name: "Turkey Breast + Sweet Potato + Greens", Calories: Range{Min: 410, Max: 520}, Protein: macro(34, 46), Carbs: macro(38, 54), Fat: macro(8, 16)},
			{Name: "Salmon + Lentils + Roasted Vegetables", Calories: Range{Min: 430, Max: 540}, Protein: macro(36, 48), Carbs: macro(40, 56), Fat: macro(14, 24)},
			{Name: "Chicken Breast + Couscous + Chickpeas", Calories: Range{Min: 440, Max: 550}, Protein: macro(38, 50), Carbs: macro(48, 65), Fat: macro(10, 18)},
			{Name: "Shrimp + Pasta (Whole Grain) + Marinara", Calories: Range{Min: 420, Max: 530}, Protein: macro(32, 44), Carbs: macro(50, 68), Fat: macro(8, 16)},
		},
		DinnerOptions: []MealOption{
			{Name: "Fish + Veg + Legumes", Calories: Range{Min: 400, Max: 540}, Protein: macro(28, 44), Carbs: macro(30, 50), Fat: macro(12, 24)},
			{Name: "Grilled Steak + Baked Potato + Broccoli", Calories: Range{Min: 450, Max: 560}, Protein: macro(40, 52), Carbs: macro(35, 50), Fat: macro(14, 24)},
			{Name: "Baked Chicken + Quinoa + Asparagus", Calories: Range{Min: 420, Max: 520}, Protein: macro(36, 48), Carbs: macro(32, 46), Fat: macro(12, 20)},
			{Name: "Pork Tenderloin + Wild Rice + Green Beans", Calories: Range{Min: 430, Max: 530}, Protein: macro(38, 50), Carbs: macro(38, 52), Fat: macro(12, 22)},
			{Name: "Turkey Meatballs + Zoodles + Marinara", Calories: Range{Min: 390, Max: 490}, Protein: macro(34, 46), Carbs: macro(25, 38), Fat: macro(14, 24)},
			{Name: "Bison Burger (With Bun) + Side Salad", Calories: Range{Min: 440, Max: 540}, Protein: macro(38, 50), Carbs: macro(32, 46), Fat: macro(16, 26)},
			{Name: "Cod + Barley + Roasted Carrots", Calories: Range{Min: 410, Max: 510}, Protein: macro(32, 44), Carbs: macro(42, 58), Fat: macro(10, 18)},
		},
		SnackOptions: []MealOption{
			{Name: "Cottage Cheese or Nuts", Calories: Range{Min: 100, Max: 200}},
			{Name: "Protein bar", Calories: Range{Min: 150, Max: 220}},
			{Name: "Hard-boiled eggs", Calories: Range{Min: 70, Max: 140}},
			{Name: "Tuna pouch", Calories: Range{Min: 80, Max: 150}},
		},
	},
}
