package stats

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParseOutcome tags how a numeric answer was read.
type ParseOutcome int

const (
	// ParseOK means the answer held a number.
	ParseOK ParseOutcome = iota
	// ParseEmpty means nothing numeric was left after cleaning; the value defaults to 0.
	ParseEmpty
	// ParseDefaulted means the cleaned text was not a number; the value defaults to 0.
	ParseDefaulted
	// ParseOutOfRange means the number was larger than any survey answer can be;
	// the value defaults to 0.
	ParseOutOfRange
)

// MaxAnswerMagnitude bounds a numeric answer. Larger values are typos or junk,
// and averaging them would overflow.
const MaxAnswerMagnitude = 1e6

func (o ParseOutcome) String() string {
	switch o {
	case ParseOK:
		return "ok"
	case ParseEmpty:
		return "empty"
	case ParseDefaulted:
		return "defaulted"
	case ParseOutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// ParseFailure records a numeric answer that was counted as 0.
type ParseFailure struct {
	Field   string
	Row     int
	Raw     string
	Outcome ParseOutcome
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParseNumber reads free-text numeric answers such as "10 horas" or "~1.5".
// Every character that is not a digit, '-' or '.' is dropped first.
func ParseNumber(raw string) (float64, ParseOutcome) {
	cleaned := nonNumeric.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, ParseEmpty
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ParseDefaulted
	}
	if math.Abs(v) > MaxAnswerMagnitude {
		return 0, ParseOutOfRange
	}
	return v, ParseOK
}

var truthyAnswers = map[string]struct{}{
	"si":   {},
	"true": {},
	"t":    {},
	"1":    {},
	"yes":  {},
	"y":    {},
}

// IsTruthy reports whether a yes/no answer means yes. Case and accents are
// ignored, so "Sí", "SI" and "si" all count.
func IsTruthy(raw string) bool {
	_, ok := truthyAnswers[foldAnswer(raw)]
	return ok
}

func foldAnswer(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// roundTo rounds half up, matching the dashboard's Math.round.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Floor(v*scale+0.5) / scale
}

func percentage(count, total int) float64 {
	return math.Floor(float64(count)*1000/float64(total)+0.5) / 10
}
