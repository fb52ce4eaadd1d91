// Package mcptools exposes company reports as MCP tools so assistants can
// query maturity results directly.
package mcptools

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
)

// Version is set at build time via ldflags.
var Version = "dev"

type ReportService interface {
	ComputeStatsByCompany(ctx context.Context, company string) (stats.MetricList, error)
	GetCompanyReport(ctx context.Context, company string) (service.Report, error)
	ListCompanies(ctx context.Context) ([]string, error)
}

// NewServer registers every report tool on a fresh MCP server.
func NewServer(reports ReportService) *server.MCPServer {
	s := server.NewMCPServer(
		"maturity",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Herramientas para consultar la madurez en IA de las empresas evaluadas. "+
			"Usa list_companies para descubrir nombres exactos; las búsquedas distinguen mayúsculas."),
	)

	statsTool := NewStatsTool(reports)
	s.AddTool(statsTool.Definition(), statsTool.Handle)

	reportTool := NewReportTool(reports)
	s.AddTool(reportTool.Definition(), reportTool.Handle)

	companiesTool := NewCompaniesTool(reports)
	s.AddTool(companiesTool.Definition(), companiesTool.Handle)

	return s
}

// StatsTool handles the company_stats MCP tool.
type StatsTool struct {
	reports ReportService
}

func NewStatsTool(reports ReportService) *StatsTool {
	return &StatsTool{reports: reports}
}

func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("company_stats",
		mcp.WithDescription("Aggregated survey metrics for one company, in aggregation order."),
		mcp.WithString("company",
			mcp.Required(),
			mcp.Description("Exact company name (case-sensitive)"),
		),
	)
}

func (t *StatsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	company := req.GetString("company", "")
	if strings.TrimSpace(company) == "" {
		return mcp.NewToolResultError("'company' is required"), nil
	}

	metrics, err := t.reports.ComputeStatsByCompany(ctx, company)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute stats: %v", err)), nil
	}
	if len(metrics) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No surveys found for %q.", company)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Métricas: %s\n\n", company)
	for _, m := range metrics {
		fmt.Fprintf(&sb, "- `%s`: %s\n", m.Key, formatValue(m.Value))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// ReportTool handles the company_report MCP tool.
type ReportTool struct {
	reports ReportService
}

func NewReportTool(reports ReportService) *ReportTool {
	return &ReportTool{reports: reports}
}

func (t *ReportTool) Definition() mcp.Tool {
	return mcp.NewTool("company_report",
		mcp.WithDescription("Maturity score, level and ROI projection for one company."),
		mcp.WithString("company",
			mcp.Required(),
			mcp.Description("Exact company name (case-sensitive)"),
		),
	)
}

func (t *ReportTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	company := req.GetString("company", "")
	if strings.TrimSpace(company) == "" {
		return mcp.NewToolResultError("'company' is required"), nil
	}

	report, err := t.reports.GetCompanyReport(ctx, company)
	if errors.Is(err, service.ErrNoSurveys) {
		return mcp.NewToolResultText(fmt.Sprintf("No surveys found for %q.", company)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build report: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Madurez en IA: %s\n\n", report.Company)
	fmt.Fprintf(&sb, "- **Puntaje**: %d/100 (%s)\n", report.Maturity.Score, report.Maturity.Level)
	fmt.Fprintf(&sb, "- **Empleados evaluados**: %d\n", report.ROI.EmployeeCount)
	fmt.Fprintf(&sb, "- %s\n\n", report.Maturity.Description)

	sb.WriteString("### Componentes\n\n")
	for _, c := range report.Maturity.Components {
		fmt.Fprintf(&sb, "- %s: %s/%s\n", c.Name, formatValue(c.Points), formatValue(c.Max))
	}

	sb.WriteString("\n### ROI\n\n")
	fmt.Fprintf(&sb, "- **Actual (anual)**: $%s\n", formatValue(report.ROI.Current))
	fmt.Fprintf(&sb, "- **Potencial (anual)**: $%s\n", formatValue(report.ROI.Potential))
	fmt.Fprintf(&sb, "- **Oportunidad anual**: $%s\n", formatValue(report.ROI.Opportunity))

	return mcp.NewToolResultText(sb.String()), nil
}

// CompaniesTool handles the list_companies MCP tool.
type CompaniesTool struct {
	reports ReportService
}

func NewCompaniesTool(reports ReportService) *CompaniesTool {
	return &CompaniesTool{reports: reports}
}

func (t *CompaniesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_companies",
		mcp.WithDescription("Companies with at least one stored survey."),
	)
}

func (t *CompaniesTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companies, err := t.reports.ListCompanies(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list companies: %v", err)), nil
	}
	if len(companies) == 0 {
		return mcp.NewToolResultText("No companies yet."), nil
	}

	sorted := append([]string(nil), companies...)
	sort.Strings(sorted)
	return mcp.NewToolResultText(fmt.Sprintf("Companies (%d): %s", len(sorted), strings.Join(sorted, ", "))), nil
}

func formatValue(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
