package mcptools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
)

type fakeReports struct {
	metrics   map[string]stats.MetricList
	companies []string
	err       error
}

func (f *fakeReports) ComputeStatsByCompany(_ context.Context, company string) (stats.MetricList, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.metrics[company], nil
}

func (f *fakeReports) GetCompanyReport(ctx context.Context, company string) (service.Report, error) {
	metrics, err := f.ComputeStatsByCompany(ctx, company)
	if err != nil {
		return service.Report{}, err
	}
	if len(metrics) == 0 {
		return service.Report{}, service.ErrNoSurveys
	}
	return service.Report{
		Company:  company,
		Metrics:  metrics,
		Maturity: stats.ScoreMaturity(metrics),
		ROI:      stats.ROIFromMetrics(metrics),
	}, nil
}

func (f *fakeReports) ListCompanies(context.Context) ([]string, error) {
	return f.companies, f.err
}

func newFake() *fakeReports {
	return &fakeReports{
		metrics: map[string]stats.MetricList{
			"Acme": {
				{Key: "area.ventas", Value: 10},
				{Key: stats.KeyAvgPromptSkill, Value: 3.5},
				{Key: stats.KeyAvgHoursIAWeek, Value: 5},
				{Key: stats.KeyAvgMinutesSaved, Value: 30},
				{Key: stats.KeyEmployeeCount, Value: 10},
			},
		},
		companies: []string{"Globex", "Acme"},
	}
}

// makeReq builds a CallToolRequest with the given arguments.
func makeReq(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// resultText extracts the text content from a tool result.
func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestStatsTool_Definition(t *testing.T) {
	def := NewStatsTool(newFake()).Definition()
	if def.Name != "company_stats" {
		t.Errorf("name = %q, want company_stats", def.Name)
	}
	if len(def.InputSchema.Required) != 1 || def.InputSchema.Required[0] != "company" {
		t.Errorf("required = %v, want [company]", def.InputSchema.Required)
	}
}

func TestStatsTool_Handle(t *testing.T) {
	tool := NewStatsTool(newFake())

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"company": "Acme"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(result))
	}
	text := resultText(result)
	for _, want := range []string{"Métricas: Acme", "`area.ventas`: 10", "`avgPromptSkill`: 3.5"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "area.ventas") > strings.Index(text, "avgPromptSkill") {
		t.Error("metrics should keep aggregation order")
	}
}

func TestStatsTool_Handle_UnknownCompany(t *testing.T) {
	tool := NewStatsTool(newFake())

	result, _ := tool.Handle(context.Background(), makeReq(map[string]interface{}{"company": "acme"}))
	if result.IsError {
		t.Fatal("unknown company should not be a tool error")
	}
	if !strings.Contains(resultText(result), "No surveys found") {
		t.Errorf("unexpected output: %s", resultText(result))
	}
}

func TestStatsTool_Handle_MissingCompany(t *testing.T) {
	tool := NewStatsTool(newFake())

	result, _ := tool.Handle(context.Background(), makeReq(map[string]interface{}{}))
	if !result.IsError {
		t.Error("expected tool error for missing company")
	}
}

func TestStatsTool_Handle_StorageError(t *testing.T) {
	fake := newFake()
	fake.err = errors.New("storage failure: disk full")
	tool := NewStatsTool(fake)

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"company": "Acme"}))
	if err != nil {
		t.Fatalf("handler errors are reported in the result, got %v", err)
	}
	if !result.IsError || !strings.Contains(resultText(result), "disk full") {
		t.Errorf("expected tool error carrying the message, got %q", resultText(result))
	}
}

func TestReportTool_Handle(t *testing.T) {
	tool := NewReportTool(newFake())

	result, err := tool.Handle(context.Background(), makeReq(map[string]interface{}{"company": "Acme"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(result)
	for _, want := range []string{"Madurez en IA: Acme", "/100", "Empleados evaluados**: 10",
		"Actual (anual)**: $225000\n", "Potencial (anual)**: $900000\n", "Oportunidad anual**: $675000\n"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestReportTool_Handle_NoSurveys(t *testing.T) {
	tool := NewReportTool(newFake())

	result, _ := tool.Handle(context.Background(), makeReq(map[string]interface{}{"company": "Initech"}))
	if result.IsError {
		t.Fatal("no surveys should not be a tool error")
	}
	if !strings.Contains(resultText(result), "No surveys found") {
		t.Errorf("unexpected output: %s", resultText(result))
	}
}

func TestCompaniesTool_Handle(t *testing.T) {
	tool := NewCompaniesTool(newFake())

	result, _ := tool.Handle(context.Background(), makeReq(nil))
	if got := resultText(result); got != "Companies (2): Acme, Globex" {
		t.Errorf("got %q", got)
	}

	empty := NewCompaniesTool(&fakeReports{})
	result, _ = empty.Handle(context.Background(), makeReq(nil))
	if got := resultText(result); got != "No companies yet." {
		t.Errorf("got %q", got)
	}
}

func TestNewServer(t *testing.T) {
	if s := NewServer(newFake()); s == nil {
		t.Fatal("expected server")
	}
}

func TestFormatValue(t *testing.T) {
	cases := map[float64]string{0: "0", 100: "100", 3.5: "3.5", 45000: "45000", 2.25: "2.25"}
	for in, want := range cases {
		if got := formatValue(in); got != want {
			t.Errorf("formatValue(%v) = %q, want %q", in, got, want)
		}
	}
}
