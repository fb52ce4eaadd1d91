package stats

import (
	"sort"
	"strings"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// Aggregate computes the metric list for one company's rows. Zero rows yield
// an empty list, which callers must read as "no data" rather than as a
// company whose metrics are all zero.
//
// Numeric answers that cannot be read count as 0 and are reported in the
// returned failures; they never abort the aggregation.
func Aggregate(rows []models.SurveyRow) (MetricList, []ParseFailure) {
	total := len(rows)
	if total == 0 {
		return MetricList{}, nil
	}

	agg := &aggregation{rows: rows, total: total}
	for _, f := range surveyFields {
		switch f.kind {
		case kindCategorical:
			agg.categorical(f)
		case kindBoolean:
			agg.boolean(f)
		case kindNumeric:
			agg.numeric(f)
		case kindTopN:
			agg.topN(f)
		}
	}

	agg.add(KeyEmployeeCount, float64(total))

	roi := ProjectROI(total, agg.out.Value(KeyAvgHoursIAWeek), agg.out.Value(KeyAvgMinutesSaved))
	agg.add(KeyROICurrent, roi.Current)
	agg.add(KeyROIPotential, roi.Potential)
	agg.add(KeyROIOpportunity, roi.Opportunity)
	agg.add(KeyROICurrentHoursPerWeek, roi.CurrentHoursPerWeek)
	agg.add(KeyROICurrentMinutesSavedPerDay, roi.CurrentMinutesSavedPerDay)

	return agg.out, agg.failures
}

type aggregation struct {
	rows     []models.SurveyRow
	total    int
	out      MetricList
	failures []ParseFailure
}

func (a *aggregation) add(key string, value float64) {
	a.out = append(a.out, MetricEntry{Key: key, Value: value})
}

func (a *aggregation) categorical(f surveyField) {
	t := newTally()
	for i := range a.rows {
		label := f.value(&a.rows[i])
		if label == "" && f.emptyLabel != "" {
			label = f.emptyLabel
		}
		t.add(label)
	}
	for _, label := range t.labels {
		a.add(groupKey(f.key, label), percentage(t.counts[label], a.total))
	}
}

func (a *aggregation) boolean(f surveyField) {
	yes := 0
	for i := range a.rows {
		if IsTruthy(f.value(&a.rows[i])) {
			yes++
		}
	}
	a.add(f.key, percentage(yes, a.total))
}

func (a *aggregation) numeric(f surveyField) {
	var sum float64
	for i := range a.rows {
		raw := f.value(&a.rows[i])
		v, outcome := ParseNumber(raw)
		if outcome != ParseOK {
			a.failures = append(a.failures, ParseFailure{Field: f.key, Row: i, Raw: raw, Outcome: outcome})
		}
		sum += v
	}
	a.add(f.key, roundTo(sum/float64(a.total), f.decimals))
}

func (a *aggregation) topN(f surveyField) {
	t := newTally()
	for i := range a.rows {
		label := strings.TrimSpace(f.value(&a.rows[i]))
		if label == "" {
			continue
		}
		t.add(label)
	}

	ranked := make([]string, len(t.labels))
	copy(ranked, t.labels)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.counts[ranked[i]] > t.counts[ranked[j]]
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	for _, label := range ranked {
		a.add(groupKey(f.key, label), percentage(t.counts[label], a.total))
	}
}

// tally counts labels and remembers first-occurrence order.
type tally struct {
	labels []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(label string) {
	if _, seen := t.counts[label]; !seen {
		t.labels = append(t.labels, label)
	}
	t.counts[label]++
}
