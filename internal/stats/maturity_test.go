package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func maturityMetrics(skill, confidence, hours, minutes, pctLLM, pctTraining float64) MetricList {
	return MetricList{
		{Key: KeyAvgPromptSkill, Value: skill},
		{Key: KeyAvgConfidence, Value: confidence},
		{Key: KeyAvgHoursIAWeek, Value: hours},
		{Key: KeyAvgMinutesSaved, Value: minutes},
		{Key: KeyPctKnowLLM, Value: pctLLM},
		{Key: KeyPctFormalTraining, Value: pctTraining},
	}
}

func TestScoreMaturity(t *testing.T) {
	cases := []struct {
		name    string
		metrics MetricList
		score   int
		level   MaturityLevel
	}{
		{name: "no metrics", metrics: nil, score: 0, level: LevelBeginner},
		{name: "all at maximum", metrics: maturityMetrics(5, 5, 10, 120, 100, 100), score: 100, level: LevelAdvanced},
		{name: "usage and impact are capped", metrics: maturityMetrics(5, 5, 40, 600, 100, 100), score: 100, level: LevelAdvanced},
		{name: "exactly 75 is advanced", metrics: maturityMetrics(5, 5, 10, 40, 100, 0), score: 75, level: LevelAdvanced},
		{name: "74 is intermediate", metrics: maturityMetrics(5, 5, 10, 32, 100, 0), score: 74, level: LevelIntermediate},
		{name: "exactly 50 is intermediate", metrics: maturityMetrics(5, 5, 7.5, 0, 0, 0), score: 50, level: LevelIntermediate},
		{name: "exactly 25 is basic", metrics: maturityMetrics(0, 0, 10, 40, 0, 0), score: 25, level: LevelBasic},
		{name: "24 is beginner", metrics: maturityMetrics(0, 0, 10, 32, 0, 0), score: 24, level: LevelBeginner},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ScoreMaturity(tc.metrics)

			assert.Equal(t, tc.score, result.Score)
			assert.Equal(t, tc.level, result.Level)
			assert.NotEmpty(t, result.Color)
			assert.NotEmpty(t, result.Description)
			assert.Len(t, result.Components, 6)
		})
	}
}

func TestScoreMaturity_Bounds(t *testing.T) {
	t.Run("out of range answers cannot exceed 100", func(t *testing.T) {
		result := ScoreMaturity(maturityMetrics(50, 50, 100, 1000, 500, 500))
		assert.Equal(t, 100, result.Score)
	})

	t.Run("negative averages cannot go below 0", func(t *testing.T) {
		result := ScoreMaturity(maturityMetrics(-5, -5, -10, -60, 0, 0))
		assert.Equal(t, 0, result.Score)
	})
}

func TestScoreMaturity_Monotonic(t *testing.T) {
	base := []float64{2.5, 2.5, 5, 60, 50, 50}
	steps := []float64{0.25, 0.25, 1, 10, 5, 5}

	for field := range base {
		prev := -1
		for i := 0; i < 30; i++ {
			values := append([]float64(nil), base...)
			values[field] = float64(i) * steps[field]

			score := ScoreMaturity(maturityMetrics(values[0], values[1], values[2], values[3], values[4], values[5])).Score

			assert.GreaterOrEqual(t, score, prev, "field %d step %d", field, i)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
			prev = score
		}
	}
}

func TestScoreMaturity_Deterministic(t *testing.T) {
	metrics := maturityMetrics(3.2, 2.8, 4.5, 25, 60, 10)
	assert.Equal(t, ScoreMaturity(metrics), ScoreMaturity(metrics))
}
