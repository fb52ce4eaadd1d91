// Package stats turns a company's survey rows into the flat metric list the
// dashboard and reports consume, and derives the maturity score and ROI
// projection from that list.
package stats

import "strings"

// Scalar metric keys. Grouped keys are built as "<prefix>.<label>".
const (
	KeyAvgYearsExperience   = "avgYearsExperience"
	KeyAvgHoursIAWeek       = "avgHoursIAWeek"
	KeyPctKnowLLM           = "pctKnowLLM"
	KeyPctKnowPretrainingFT = "pctKnowPretrainingFT"
	KeyPctKnowPromptParts   = "pctKnowPromptParts"
	KeyAvgPromptSkill       = "avgPromptSkill"
	KeyPctIAinSales         = "pctIAinSales"
	KeyPctIAinMarketing     = "pctIAinMarketing"
	KeyPctIAinFinance       = "pctIAinFinance"
	KeyAvgMinutesSaved      = "avgMinutesSaved"
	KeyPctFormalTraining    = "pctFormalTraining"
	KeyAvgConfidence        = "avgConfidence"
	KeyAvgCuriosity         = "avgCuriosity"
	KeyEmployeeCount        = "employeeCount"

	KeyROICurrent                   = "roi.current"
	KeyROIPotential                 = "roi.potential"
	KeyROIOpportunity               = "roi.opportunity"
	KeyROICurrentHoursPerWeek       = "roi.currentHoursPerWeek"
	KeyROICurrentMinutesSavedPerDay = "roi.currentMinutesSavedPerDay"
)

// Grouped key prefixes.
const (
	PrefixArea         = "area"
	PrefixOffice       = "office"
	PrefixDevice       = "device"
	PrefixObjective    = "objective"
	PrefixAdvFn        = "advFn"
	PrefixCopilot      = "copilot"
	PrefixTopChallenge = "topChallenge"
	PrefixTopTopic     = "topTopic"
)

// MetricEntry is a single aggregated value.
type MetricEntry struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// MetricList is the aggregator output. Order groups related metrics together;
// readers should look values up by key.
type MetricList []MetricEntry

// Lookup returns the value stored under key.
func (m MetricList) Lookup(key string) (float64, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return 0, false
}

// Value returns the value stored under key, or 0 when absent.
func (m MetricList) Value(key string) float64 {
	v, _ := m.Lookup(key)
	return v
}

// Group returns the entries under prefix with the "<prefix>." part stripped
// from each key, leaving the display label.
func (m MetricList) Group(prefix string) []MetricEntry {
	p := prefix + "."
	var out []MetricEntry
	for _, e := range m {
		if label, ok := strings.CutPrefix(e.Key, p); ok {
			out = append(out, MetricEntry{Key: label, Value: e.Value})
		}
	}
	return out
}

func groupKey(prefix, label string) string {
	return prefix + "." + label
}
