package stats

import "math"

// Business assumptions behind the ROI projection.
const (
	MonthlySalary         = 30000.0
	WorkHoursPerDay       = 8.0
	WorkDaysPerMonth      = 20.0
	WorkDaysPerWeek       = 5.0
	MaxSavingsHoursPerDay = 2.0
	monthsPerYear         = 12.0
)

// ROIResult is the yearly value already captured by AI use (Current), the
// value reachable at the savings cap (Potential) and the gap (Opportunity).
type ROIResult struct {
	Current                   float64 `json:"current"`
	Potential                 float64 `json:"potential"`
	Opportunity               float64 `json:"opportunity"`
	EmployeeCount             int     `json:"employeeCount"`
	CurrentHoursPerWeek       float64 `json:"currentHoursPerWeek"`
	CurrentHoursPerDay        float64 `json:"currentHoursPerDay"`
	CurrentMinutesSavedPerDay float64 `json:"currentMinutesSavedPerDay"`
}

// ProjectROI converts average daily time savings into yearly currency value.
//
// avgHoursPerWeek is reported back for display only and does not enter the
// currency figures. Negative inputs are treated as 0.
func ProjectROI(employeeCount int, avgHoursPerWeek, avgMinutesSavedPerDay float64) ROIResult {
	employees := float64(max(employeeCount, 0))
	hoursPerWeek := math.Max(avgHoursPerWeek, 0)
	minutesSaved := math.Max(avgMinutesSavedPerDay, 0)

	hourlyRate := MonthlySalary / (WorkHoursPerDay * WorkDaysPerMonth)
	currentSavingsHoursPerDay := minutesSaved / 60
	additionalSavingsHoursPerDay := math.Max(0, MaxSavingsHoursPerDay-currentSavingsHoursPerDay)

	yearly := func(hoursPerDay float64) float64 {
		return hoursPerDay * hourlyRate * WorkDaysPerMonth * monthsPerYear
	}

	current := roundTo(yearly(currentSavingsHoursPerDay)*employees, 0)
	opportunity := roundTo(yearly(additionalSavingsHoursPerDay)*employees, 0)

	return ROIResult{
		Current:                   current,
		Potential:                 current + opportunity,
		Opportunity:               opportunity,
		EmployeeCount:             int(employees),
		CurrentHoursPerWeek:       hoursPerWeek,
		CurrentHoursPerDay:        hoursPerWeek / WorkDaysPerWeek,
		CurrentMinutesSavedPerDay: minutesSaved,
	}
}

// ROIFromMetrics re-derives the projection from an aggregated metric list,
// the way report renderers do.
func ROIFromMetrics(metrics MetricList) ROIResult {
	return ProjectROI(
		int(metrics.Value(KeyEmployeeCount)),
		metrics.Value(KeyAvgHoursIAWeek),
		metrics.Value(KeyAvgMinutesSaved),
	)
}
