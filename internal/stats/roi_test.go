package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectROI(t *testing.T) {
	t.Run("one hour saved per day", func(t *testing.T) {
		roi := ProjectROI(1, 10, 60)

		assert.Equal(t, 45000.0, roi.Current)
		assert.Equal(t, 45000.0, roi.Opportunity)
		assert.Equal(t, 90000.0, roi.Potential)
		assert.Equal(t, 1, roi.EmployeeCount)
		assert.Equal(t, 10.0, roi.CurrentHoursPerWeek)
		assert.Equal(t, 2.0, roi.CurrentHoursPerDay)
		assert.Equal(t, 60.0, roi.CurrentMinutesSavedPerDay)
	})

	t.Run("no savings yet", func(t *testing.T) {
		roi := ProjectROI(10, 0, 0)

		assert.Equal(t, 0.0, roi.Current)
		assert.Equal(t, 900000.0, roi.Opportunity)
		assert.Equal(t, 900000.0, roi.Potential)
	})

	t.Run("savings at the cap leave no opportunity", func(t *testing.T) {
		roi := ProjectROI(3, 0, 150)

		assert.Equal(t, 0.0, roi.Opportunity)
		assert.Equal(t, roi.Current, roi.Potential)
		assert.Equal(t, 337500.0, roi.Current)
	})

	t.Run("hours per week are reported only", func(t *testing.T) {
		a := ProjectROI(5, 1, 30)
		b := ProjectROI(5, 40, 30)

		assert.Equal(t, a.Current, b.Current)
		assert.Equal(t, a.Opportunity, b.Opportunity)
		assert.NotEqual(t, a.CurrentHoursPerWeek, b.CurrentHoursPerWeek)
	})

	t.Run("negative inputs count as zero", func(t *testing.T) {
		roi := ProjectROI(-2, -3, -30)

		assert.Equal(t, ProjectROI(0, 0, 0), roi)
	})
}

func TestProjectROI_Properties(t *testing.T) {
	for employees := 0; employees <= 50; employees += 7 {
		for minutes := 0.0; minutes <= 300; minutes += 7.5 {
			roi := ProjectROI(employees, 3, minutes)

			assert.GreaterOrEqual(t, roi.Potential, roi.Current)
			assert.Equal(t, roi.Potential-roi.Current, roi.Opportunity)
			assert.GreaterOrEqual(t, roi.Opportunity, 0.0)
			if minutes >= 120 {
				assert.Equal(t, 0.0, roi.Opportunity, "minutes=%v", minutes)
			}
		}
	}
}

func TestROIFromMetrics(t *testing.T) {
	metrics := MetricList{
		{Key: KeyEmployeeCount, Value: 4},
		{Key: KeyAvgHoursIAWeek, Value: 6},
		{Key: KeyAvgMinutesSaved, Value: 30},
	}

	assert.Equal(t, ProjectROI(4, 6, 30), ROIFromMetrics(metrics))
	assert.Equal(t, ProjectROI(0, 0, 0), ROIFromMetrics(nil))
}
