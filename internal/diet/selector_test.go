package diet

import (
	"errors"
	"testing"

	"github.com/myrjola/planfit/internal/catalog"
)

func TestSelectDiet(t *testing.T) {
	tests := []struct {
		name       string
		profile    Profile
		wantDietID string
	}{
		{
			name: "keto style preference wins",
			profile: Profile{
				FitnessLevel: "advanced",
				PrimaryGoal:  "fat_loss",
				DietaryStyle: "keto",
			},
			wantDietID: "keto",
		},
		{
			name: "vegan style preference wins",
			profile: Profile{
				FitnessLevel: "beginner",
				PrimaryGoal:  "fat_loss",
				DietaryStyle: "vegan",
			},
			wantDietID: "vegan",
		},
		{
			name: "mediterranean for mixed style health goal",
			profile: Profile{
				FitnessLevel: "beginner",
				PrimaryGoal:  "health",
				DietaryStyle: "mixed",
			},
			wantDietID: "mediterranean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SelectDiet(catalog.Diets(), tt.profile)
			if err != nil {
				t.Fatalf("SelectDiet() error = %v", err)
			}
			if result.Diet.ID != tt.wantDietID {
				t.Errorf("SelectDiet() diet = %s, want %s", result.Diet.ID, tt.wantDietID)
			}
			if result.Score < 0 || result.Score > 100 {
				t.Errorf("SelectDiet() score = %v, want within [0, 100]", result.Score)
			}
			if result.Reasoning == "" {
				t.Errorf("SelectDiet() reasoning is empty")
			}
		})
	}
}

func TestSelectDietEmptyCatalog(t *testing.T) {
	_, err := SelectDiet(nil, Profile{DietaryStyle: "mixed"})
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("SelectDiet() error = %v, want %v", err, ErrEmptyCatalog)
	}
}

func TestSelectDietDeterministic(t *testing.T) {
	profile := Profile{
		FitnessLevel: "intermediate",
		PrimaryGoal:  "muscle_gain",
		DietaryStyle: "flexible",
	}

	first, err := SelectDiet(catalog.Diets(), profile)
	if err != nil {
		t.Fatalf("SelectDiet() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := SelectDiet(catalog.Diets(), profile)
		if err != nil {
			t.Fatalf("SelectDiet() error = %v", err)
		}
		if again.Diet.ID != first.Diet.ID || again.Score != first.Score {
			t.Fatalf("SelectDiet() not deterministic: got %s (%v), want %s (%v)",
				again.Diet.ID, again.Score, first.Diet.ID, first.Score)
		}
	}
}

func TestStyleScoreComponent(t *testing.T) {
	keto, err := catalog.DietByID("keto")
	if err != nil {
		t.Fatalf("DietByID() error = %v", err)
	}
	flexitarian, err := catalog.DietByID("flexitarian")
	if err != nil {
		t.Fatalf("DietByID() error = %v", err)
	}

	if got := styleScore(keto, "keto"); got != styleMatchPoints {
		t.Errorf("styleScore(keto, keto) = %v, want %v", got, styleMatchPoints)
	}
	if got := styleScore(flexitarian, "keto"); got != styleFlexiblePoints {
		t.Errorf("styleScore(flexitarian, keto) = %v, want %v", got, styleFlexiblePoints)
	}
	if got := styleScore(keto, "vegan"); got != 0 {
		t.Errorf("styleScore(keto, vegan) = %v, want 0", got)
	}
}

func TestScoreDietHealthConditions(t *testing.T) {
	keto, err := catalog.DietByID("keto")
	if err != nil {
		t.Fatalf("DietByID() error = %v", err)
	}

	base := Profile{FitnessLevel: "advanced", PrimaryGoal: "fat_loss", DietaryStyle: "keto"}
	safe := scoreDiet(keto, base)

	cautioned := base
	cautioned.HealthConditions = []string{"pregnancy"}
	penalized := scoreDiet(keto, cautioned)

	if penalized >= safe {
		t.Errorf("cautioned score %v should be below uncautioned %v", penalized, safe)
	}
}
