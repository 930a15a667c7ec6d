package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(tools []Tool) []string {
	var n []string
	for _, t := range tools {
		n = append(n, t.Name)
	}
	return n
}

func TestRecommend_ArabicKeywords(t *testing.T) {
	got := Recommend("ابني عنده حرارة كم جرعة البنادول المناسبة؟", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "calculate_dosage", got[0].Name)
}

func TestRecommend_RanksByHits(t *testing.T) {
	got := Recommend("أريد معرفة الوزن المثالي ومؤشر كتلة الجسم وكم أشرب ماء", 0)
	assert.Equal(t, []string{"calculate_bmi", "calculate_water"}, names(got))
}

func TestRecommend_LimitAndCase(t *testing.T) {
	got := Recommend("BMI and Calories and WATER", 2)
	assert.Equal(t, []string{"calculate_bmi", "calculate_calories"}, names(got))
}

func TestRecommend_NoMatch(t *testing.T) {
	assert.Empty(t, Recommend("مرحبا", 5))
	assert.Empty(t, Recommend("   ", 5))
}

func TestLookup(t *testing.T) {
	tool, ok := Lookup("vaccination_schedule")
	require.True(t, ok)
	assert.NotEmpty(t, tool.Title)

	_, ok = Lookup("missing")
	assert.False(t, ok)
	assert.Len(t, Tools(), 16)
}
