package models

import "time"

// SurveyRow is one respondent's stored answers. Answer fields keep the text
// produced by the evaluation extractor; parsing happens at aggregation time.
type SurveyRow struct {
	ID                   string    `json:"id"`
	Company              string    `json:"empresa"`
	RespondentName       string    `json:"nombre"`
	Area                 string    `json:"area"`
	OfficeLevel          string    `json:"nivel_office"`
	Devices              string    `json:"dispositivos"`
	Objective            string    `json:"objetivo"`
	AdvancedFunctions    string    `json:"funciones_avanzadas"`
	YearsExperience      string    `json:"anos_experiencia"`
	HoursIAWeek          string    `json:"horas_ia_semana"`
	KnowsLLM             string    `json:"sabe_que_es_llm"`
	KnowsPretrainingFT   string    `json:"conoce_preentrenamiento_ft"`
	KnowsPromptParts     string    `json:"conoce_partes_prompt"`
	PromptSkill          string    `json:"habilidad_prompts"`
	UsesIAInSales        string    `json:"usa_ia_ventas"`
	UsesIAInMarketing    string    `json:"usa_ia_marketing"`
	UsesIAInFinance      string    `json:"usa_ia_finanzas"`
	MinutesSaved         string    `json:"tiempo_ahorrado"`
	FormalTraining       string    `json:"capacitacion_formal"`
	Confidence           string    `json:"confianza"`
	Curiosity            string    `json:"curiosidad"`
	CopilotWeb           string    `json:"copilot_web"`
	CopilotExcel         string    `json:"copilot_excel"`
	CopilotWord          string    `json:"copilot_word"`
	CopilotOutlook       string    `json:"copilot_outlook"`
	CopilotPowerPlatform string    `json:"copilot_power_platform"`
	CurrentChallenge     string    `json:"desafio_actual"`
	TopicToDeepen        string    `json:"tema_profundizar"`
	CreatedAt            time.Time `json:"created_at"`
}
