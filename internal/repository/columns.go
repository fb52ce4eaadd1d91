package repository

import (
	"strconv"
	"strings"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// surveyColumns is the column order shared by every query on survey rows.
var surveyColumns = []string{
	"id", "empresa", "nombre", "area", "nivel_office", "dispositivos", "objetivo", "funciones_avanzadas",
	"anos_experiencia", "horas_ia_semana", "sabe_que_es_llm", "conoce_preentrenamiento_ft",
	"conoce_partes_prompt", "habilidad_prompts", "usa_ia_ventas", "usa_ia_marketing", "usa_ia_finanzas",
	"tiempo_ahorrado", "capacitacion_formal", "confianza", "curiosidad", "copilot_web", "copilot_excel",
	"copilot_word", "copilot_outlook", "copilot_power_platform", "desafio_actual", "tema_profundizar",
	"created_at",
}

var surveyColumnList = strings.Join(surveyColumns, ", ")

// surveyFields returns pointers to r's fields in surveyColumns order.
func surveyFields(r *models.SurveyRow) []any {
	return []any{
		&r.ID, &r.Company, &r.RespondentName, &r.Area, &r.OfficeLevel, &r.Devices, &r.Objective,
		&r.AdvancedFunctions, &r.YearsExperience, &r.HoursIAWeek, &r.KnowsLLM, &r.KnowsPretrainingFT,
		&r.KnowsPromptParts, &r.PromptSkill, &r.UsesIAInSales, &r.UsesIAInMarketing, &r.UsesIAInFinance,
		&r.MinutesSaved, &r.FormalTraining, &r.Confidence, &r.Curiosity, &r.CopilotWeb, &r.CopilotExcel,
		&r.CopilotWord, &r.CopilotOutlook, &r.CopilotPowerPlatform, &r.CurrentChallenge, &r.TopicToDeepen,
		&r.CreatedAt,
	}
}

// insertArgs returns r's values in surveyColumns order.
func insertArgs(r models.SurveyRow) []any {
	return []any{
		r.ID, r.Company, r.RespondentName, r.Area, r.OfficeLevel, r.Devices, r.Objective,
		r.AdvancedFunctions, r.YearsExperience, r.HoursIAWeek, r.KnowsLLM, r.KnowsPretrainingFT,
		r.KnowsPromptParts, r.PromptSkill, r.UsesIAInSales, r.UsesIAInMarketing, r.UsesIAInFinance,
		r.MinutesSaved, r.FormalTraining, r.Confidence, r.Curiosity, r.CopilotWeb, r.CopilotExcel,
		r.CopilotWord, r.CopilotOutlook, r.CopilotPowerPlatform, r.CurrentChallenge, r.TopicToDeepen,
		r.CreatedAt,
	}
}

func placeholders(n int, numbered bool) string {
	parts := make([]string, n)
	for i := range parts {
		if numbered {
			parts[i] = "$" + strconv.Itoa(i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}
