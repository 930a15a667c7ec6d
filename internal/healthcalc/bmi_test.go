package healthcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taafi-health-tools/internal/models"
)

func TestCalculateBMI_NormalAdult(t *testing.T) {
	r := CalculateBMI(70, 175)

	assert.Equal(t, 22.9, r.BMI)
	assert.Equal(t, BMICategoryNormal, r.Category)
	assert.InDelta(t, 56.7, r.IdealWeight.Min, 0.05)
	assert.InDelta(t, 76.2, r.IdealWeight.Max, 0.15)
	assert.NotEmpty(t, r.Recommendations)
}

func TestCalculateBMI_CategoryBoundaries(t *testing.T) {
	// At 100 cm the BMI equals the weight.
	tests := []struct {
		weight float64
		want   string
	}{
		{18.49, BMICategoryUnderweight},
		{18.5, BMICategoryNormal},
		{24.99, BMICategoryNormal},
		{25.0, BMICategoryOverweight},
		{29.99, BMICategoryOverweight},
		{30.0, BMICategoryObese},
		{45, BMICategoryObese},
	}
	for _, tt := range tests {
		r := CalculateBMI(tt.weight, 100)
		assert.Equal(t, tt.want, r.Category, "weight %.2f", tt.weight)
	}
}

func TestCalculateBMI_MonotonicInWeight(t *testing.T) {
	prev := 0.0
	for w := 40.0; w <= 150; w++ {
		r := CalculateBMI(w, 170)
		require.Greater(t, r.BMI, prev, "weight %.0f", w)
		prev = r.BMI
	}
}

func TestCalculateCalories_MaleMaintain(t *testing.T) {
	r := CalculateCalories(70, 175, 30, models.GenderMale, models.ActivityModerate, models.GoalMaintain)

	assert.Equal(t, 1649, r.BMR)
	assert.Equal(t, 2556, r.TDEE)
	assert.Equal(t, 2556, r.TargetCalories)
	assert.Equal(t, models.Macros{Protein: 192, Carbs: 256, Fats: 85}, r.Macros)
	assert.NotEmpty(t, r.MealPlan)
}

func TestCalculateCalories_FemaleLose(t *testing.T) {
	r := CalculateCalories(60, 165, 25, models.GenderFemale, models.ActivitySedentary, models.GoalLose)

	assert.Equal(t, 1345, r.BMR)
	assert.Equal(t, 1614, r.TDEE)
	assert.Equal(t, 1372, r.TargetCalories)
}

func TestCalculateCalories_UnknownActivityIsSedentary(t *testing.T) {
	known := CalculateCalories(80, 180, 40, models.GenderMale, models.ActivitySedentary, models.GoalGain)
	unknown := CalculateCalories(80, 180, 40, models.GenderMale, "couch", models.GoalGain)

	assert.Equal(t, known, unknown)
}

func TestCalculateCalories_MacrosRebuildTarget(t *testing.T) {
	levels := []models.ActivityLevel{
		models.ActivitySedentary, models.ActivityLight, models.ActivityModerate,
		models.ActivityActive, models.ActivityVeryActive,
	}
	goals := []models.Goal{models.GoalLose, models.GoalMaintain, models.GoalGain}

	for w := 45.0; w <= 120; w += 7.5 {
		for _, level := range levels {
			for _, goal := range goals {
				r := CalculateCalories(w, 170, 35, models.GenderFemale, level, goal)
				kcal := r.Macros.Protein*4 + r.Macros.Carbs*4 + r.Macros.Fats*9
				assert.InDelta(t, r.TargetCalories, kcal, 3, "w=%.1f %s %s", w, level, goal)
			}
		}
	}
}
