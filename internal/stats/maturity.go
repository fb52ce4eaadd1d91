package stats

import "math"

// MaturityLevel is the qualitative tier of a maturity score.
type MaturityLevel string

const (
	LevelBeginner     MaturityLevel = "Principiante"
	LevelBasic        MaturityLevel = "Básico"
	LevelIntermediate MaturityLevel = "Intermedio"
	LevelAdvanced     MaturityLevel = "Avanzado"
)

// MaturityComponent is one weighted part of the composite score.
type MaturityComponent struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
	Max    float64 `json:"max"`
}

// MaturityResult is the composite AI-maturity rating of a company.
type MaturityResult struct {
	Score       int                 `json:"score"`
	Level       MaturityLevel       `json:"level"`
	Color       string              `json:"color"`
	Description string              `json:"description"`
	Components  []MaturityComponent `json:"components"`
}

type maturityTier struct {
	minScore    int
	level       MaturityLevel
	color       string
	description string
}

// Evaluated top-down; the first tier whose minimum is reached wins.
var maturityTiers = []maturityTier{
	{75, LevelAdvanced, "#16a34a", "La organización integra la IA de forma sistemática en sus procesos y cuenta con equipos capacitados."},
	{50, LevelIntermediate, "#2563eb", "La IA se usa con regularidad en varias áreas, aunque todavía hay brechas de conocimiento y adopción."},
	{25, LevelBasic, "#f59e0b", "Existe uso ocasional de herramientas de IA, con poca formación y resultados aún limitados."},
	{0, LevelBeginner, "#dc2626", "La adopción de IA es incipiente; el equipo necesita formación básica y casos de uso concretos."},
}

type maturityWeight struct {
	name  string
	key   string
	scale float64
	max   float64
}

// maturityWeights maps a metric to points: value/scale*max, capped at max.
var maturityWeights = []maturityWeight{
	{name: "skill", key: KeyAvgPromptSkill, scale: 5, max: 20},
	{name: "confidence", key: KeyAvgConfidence, scale: 5, max: 15},
	{name: "usage", key: KeyAvgHoursIAWeek, scale: 10, max: 20},
	{name: "impact", key: KeyAvgMinutesSaved, scale: 120, max: 15},
	{name: "knowledge", key: KeyPctKnowLLM, scale: 100, max: 15},
	{name: "training", key: KeyPctFormalTraining, scale: 100, max: 15},
}

// ScoreMaturity computes the 0–100 composite score from an aggregated metric
// list. Missing metrics count as 0.
func ScoreMaturity(metrics MetricList) MaturityResult {
	components := make([]MaturityComponent, 0, len(maturityWeights))
	var sum float64
	for _, w := range maturityWeights {
		points := math.Min(math.Max(metrics.Value(w.key)/w.scale*w.max, 0), w.max)
		sum += points
		components = append(components, MaturityComponent{Name: w.name, Points: roundTo(points, 2), Max: w.max})
	}

	score := int(roundTo(sum, 0))
	tier := tierFor(score)
	return MaturityResult{
		Score:       score,
		Level:       tier.level,
		Color:       tier.color,
		Description: tier.description,
		Components:  components,
	}
}

func tierFor(score int) maturityTier {
	for _, t := range maturityTiers {
		if score >= t.minScore {
			return t
		}
	}
	return maturityTiers[len(maturityTiers)-1]
}
