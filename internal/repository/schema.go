package repository

// SQLiteSchema creates the survey table for the embedded SQLite store.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS evaluaciones (
	id                         TEXT PRIMARY KEY,
	empresa                    TEXT NOT NULL,
	nombre                     TEXT NOT NULL DEFAULT '',
	area                       TEXT NOT NULL DEFAULT '',
	nivel_office               TEXT NOT NULL DEFAULT '',
	dispositivos               TEXT NOT NULL DEFAULT '',
	objetivo                   TEXT NOT NULL DEFAULT '',
	funciones_avanzadas        TEXT NOT NULL DEFAULT '',
	anos_experiencia           TEXT NOT NULL DEFAULT '',
	horas_ia_semana            TEXT NOT NULL DEFAULT '',
	sabe_que_es_llm            TEXT NOT NULL DEFAULT '',
	conoce_preentrenamiento_ft TEXT NOT NULL DEFAULT '',
	conoce_partes_prompt       TEXT NOT NULL DEFAULT '',
	habilidad_prompts          TEXT NOT NULL DEFAULT '',
	usa_ia_ventas              TEXT NOT NULL DEFAULT '',
	usa_ia_marketing           TEXT NOT NULL DEFAULT '',
	usa_ia_finanzas            TEXT NOT NULL DEFAULT '',
	tiempo_ahorrado            TEXT NOT NULL DEFAULT '',
	capacitacion_formal        TEXT NOT NULL DEFAULT '',
	confianza                  TEXT NOT NULL DEFAULT '',
	curiosidad                 TEXT NOT NULL DEFAULT '',
	copilot_web                TEXT NOT NULL DEFAULT '',
	copilot_excel              TEXT NOT NULL DEFAULT '',
	copilot_word               TEXT NOT NULL DEFAULT '',
	copilot_outlook            TEXT NOT NULL DEFAULT '',
	copilot_power_platform     TEXT NOT NULL DEFAULT '',
	desafio_actual             TEXT NOT NULL DEFAULT '',
	tema_profundizar           TEXT NOT NULL DEFAULT '',
	created_at                 DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_evaluaciones_empresa ON evaluaciones(empresa);
`

// PostgresSchema creates the survey table on a hosted Postgres database.
const PostgresSchema = `
CREATE TABLE IF NOT EXISTS evaluaciones (
	id                         TEXT PRIMARY KEY DEFAULT gen_random_uuid()::text,
	empresa                    TEXT NOT NULL,
	nombre                     TEXT NOT NULL DEFAULT '',
	area                       TEXT NOT NULL DEFAULT '',
	nivel_office               TEXT NOT NULL DEFAULT '',
	dispositivos               TEXT NOT NULL DEFAULT '',
	objetivo                   TEXT NOT NULL DEFAULT '',
	funciones_avanzadas        TEXT NOT NULL DEFAULT '',
	anos_experiencia           TEXT NOT NULL DEFAULT '',
	horas_ia_semana            TEXT NOT NULL DEFAULT '',
	sabe_que_es_llm            TEXT NOT NULL DEFAULT '',
	conoce_preentrenamiento_ft TEXT NOT NULL DEFAULT '',
	conoce_partes_prompt       TEXT NOT NULL DEFAULT '',
	habilidad_prompts          TEXT NOT NULL DEFAULT '',
	usa_ia_ventas              TEXT NOT NULL DEFAULT '',
	usa_ia_marketing           TEXT NOT NULL DEFAULT '',
	usa_ia_finanzas            TEXT NOT NULL DEFAULT '',
	tiempo_ahorrado            TEXT NOT NULL DEFAULT '',
	capacitacion_formal        TEXT NOT NULL DEFAULT '',
	confianza                  TEXT NOT NULL DEFAULT '',
	curiosidad                 TEXT NOT NULL DEFAULT '',
	copilot_web                TEXT NOT NULL DEFAULT '',
	copilot_excel              TEXT NOT NULL DEFAULT '',
	copilot_word               TEXT NOT NULL DEFAULT '',
	copilot_outlook            TEXT NOT NULL DEFAULT '',
	copilot_power_platform     TEXT NOT NULL DEFAULT '',
	desafio_actual             TEXT NOT NULL DEFAULT '',
	tema_profundizar           TEXT NOT NULL DEFAULT '',
	created_at                 TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_evaluaciones_empresa ON evaluaciones(empresa);
`
