// Package export renders company reports as spreadsheets.
package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/godilite/maturity-server/internal/service"
)

const (
	SummarySheet = "Resumen"
	MetricsSheet = "Métricas"
)

// WriteXLSX writes a two-sheet workbook: a summary of maturity and ROI, and
// the full metric list in aggregation order.
func WriteXLSX(w io.Writer, report service.Report) error {
	f := xlsx.NewFile()

	summary, err := f.AddSheet(SummarySheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add summary sheet")
	}
	writeSummary(summary, report)

	metrics, err := f.AddSheet(MetricsSheet)
	if err != nil {
		return eris.Wrap(err, "xlsx: add metrics sheet")
	}
	addStringRow(metrics, "Clave", "Valor")
	for _, m := range report.Metrics {
		addValueRow(metrics, m.Key, m.Value)
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "xlsx: write workbook")
	}
	return nil
}

func writeSummary(sheet *xlsx.Sheet, report service.Report) {
	addStringRow(sheet, "Empresa", report.Company)
	addValueRow(sheet, "Empleados evaluados", float64(report.ROI.EmployeeCount))
	addValueRow(sheet, "Puntaje de madurez", float64(report.Maturity.Score))
	addStringRow(sheet, "Nivel", string(report.Maturity.Level))
	addStringRow(sheet, "Descripción", report.Maturity.Description)
	addValueRow(sheet, "ROI actual (anual)", report.ROI.Current)
	addValueRow(sheet, "ROI potencial (anual)", report.ROI.Potential)
	addValueRow(sheet, "Oportunidad anual", report.ROI.Opportunity)
	addValueRow(sheet, "Horas IA por semana", report.ROI.CurrentHoursPerWeek)
	addValueRow(sheet, "Minutos ahorrados por día", report.ROI.CurrentMinutesSavedPerDay)

	sheet.AddRow()
	addStringRow(sheet, "Componente", "Puntos", "Máximo")
	for _, c := range report.Maturity.Components {
		row := sheet.AddRow()
		row.AddCell().SetString(c.Name)
		row.AddCell().SetFloat(c.Points)
		row.AddCell().SetFloat(c.Max)
	}
}

func addStringRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func addValueRow(sheet *xlsx.Sheet, label string, value float64) {
	row := sheet.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetFloat(value)
}
