package stats

import "github.com/godilite/maturity-server/internal/repository/models"

type fieldKind int

const (
	kindCategorical fieldKind = iota
	kindBoolean
	kindNumeric
	kindTopN
)

const topN = 3

// surveyField describes how one survey column becomes metric entries. key is
// the scalar key for boolean and numeric fields and the prefix otherwise.
type surveyField struct {
	kind       fieldKind
	key        string
	value      func(*models.SurveyRow) string
	emptyLabel string
	decimals   int
}

// surveyFields lists every aggregated column in emission order.
var surveyFields = []surveyField{
	{kind: kindCategorical, key: PrefixArea, value: func(r *models.SurveyRow) string { return r.Area }},
	{kind: kindCategorical, key: PrefixOffice, value: func(r *models.SurveyRow) string { return r.OfficeLevel }},
	{kind: kindNumeric, key: KeyAvgYearsExperience, decimals: 1, value: func(r *models.SurveyRow) string { return r.YearsExperience }},
	{kind: kindNumeric, key: KeyAvgHoursIAWeek, decimals: 1, value: func(r *models.SurveyRow) string { return r.HoursIAWeek }},
	{kind: kindCategorical, key: PrefixDevice, value: func(r *models.SurveyRow) string { return r.Devices }},
	{kind: kindCategorical, key: PrefixObjective, value: func(r *models.SurveyRow) string { return r.Objective }},
	{kind: kindBoolean, key: KeyPctKnowLLM, value: func(r *models.SurveyRow) string { return r.KnowsLLM }},
	{kind: kindBoolean, key: KeyPctKnowPretrainingFT, value: func(r *models.SurveyRow) string { return r.KnowsPretrainingFT }},
	{kind: kindBoolean, key: KeyPctKnowPromptParts, value: func(r *models.SurveyRow) string { return r.KnowsPromptParts }},
	{kind: kindNumeric, key: KeyAvgPromptSkill, decimals: 2, value: func(r *models.SurveyRow) string { return r.PromptSkill }},
	{kind: kindBoolean, key: KeyPctIAinSales, value: func(r *models.SurveyRow) string { return r.UsesIAInSales }},
	{kind: kindBoolean, key: KeyPctIAinMarketing, value: func(r *models.SurveyRow) string { return r.UsesIAInMarketing }},
	{kind: kindBoolean, key: KeyPctIAinFinance, value: func(r *models.SurveyRow) string { return r.UsesIAInFinance }},
	{kind: kindNumeric, key: KeyAvgMinutesSaved, decimals: 1, value: func(r *models.SurveyRow) string { return r.MinutesSaved }},
	{kind: kindCategorical, key: PrefixAdvFn, emptyLabel: "ninguna", value: func(r *models.SurveyRow) string { return r.AdvancedFunctions }},
	{kind: kindBoolean, key: PrefixCopilot + ".web", value: func(r *models.SurveyRow) string { return r.CopilotWeb }},
	{kind: kindBoolean, key: PrefixCopilot + ".excel", value: func(r *models.SurveyRow) string { return r.CopilotExcel }},
	{kind: kindBoolean, key: PrefixCopilot + ".word", value: func(r *models.SurveyRow) string { return r.CopilotWord }},
	{kind: kindBoolean, key: PrefixCopilot + ".outlook", value: func(r *models.SurveyRow) string { return r.CopilotOutlook }},
	{kind: kindBoolean, key: PrefixCopilot + ".powerPlat", value: func(r *models.SurveyRow) string { return r.CopilotPowerPlatform }},
	{kind: kindBoolean, key: KeyPctFormalTraining, value: func(r *models.SurveyRow) string { return r.FormalTraining }},
	{kind: kindNumeric, key: KeyAvgConfidence, decimals: 2, value: func(r *models.SurveyRow) string { return r.Confidence }},
	{kind: kindNumeric, key: KeyAvgCuriosity, decimals: 2, value: func(r *models.SurveyRow) string { return r.Curiosity }},
	{kind: kindTopN, key: PrefixTopChallenge, value: func(r *models.SurveyRow) string { return r.CurrentChallenge }},
	{kind: kindTopN, key: PrefixTopTopic, value: func(r *models.SurveyRow) string { return r.TopicToDeepen }},
}
