// Package extraction turns interview transcripts into survey rows with a
// single LLM call.
package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/godilite/maturity-server/internal/repository/models"
	"github.com/godilite/maturity-server/pkg/anthropic"
)

const (
	DefaultModel     = "claude-haiku-4-5-20251001"
	defaultMaxTokens = 1024
)

var ErrNoJSON = errors.New("model answer contains no JSON object")

// Fields the model must never set; the service owns them.
var reservedKeys = []string{"id", "empresa", "created_at"}

type Options struct {
	Model         string
	MaxTokens     int64
	RatePerSecond float64
	Logger        *zap.Logger
}

type Option func(*Options)

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}

// WithRatePerSecond caps outgoing model calls. Zero or less disables the cap.
func WithRatePerSecond(r float64) Option {
	return func(o *Options) { o.RatePerSecond = r }
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Extractor asks the model for a JSON object of survey answers.
type Extractor struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	limiter   *rate.Limiter
	logger    *zap.Logger
}

func New(client anthropic.Client, opts ...Option) *Extractor {
	if client == nil {
		panic("nil anthropic client provided to extraction.New")
	}

	options := &Options{
		Model:         DefaultModel,
		MaxTokens:     defaultMaxTokens,
		RatePerSecond: 2,
		Logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if options.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(options.RatePerSecond), 1)
	}

	return &Extractor{
		client:    client,
		model:     options.Model,
		maxTokens: options.MaxTokens,
		limiter:   limiter,
		logger:    options.Logger.Named("extraction"),
	}
}

// Extract implements service.EvaluationExtractor.
func (e *Extractor) Extract(ctx context.Context, company, transcript string) (models.SurveyRow, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return models.SurveyRow{}, fmt.Errorf("rate limit wait: %w", err)
	}

	temperature := 0.0
	resp, err := e.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       e.model,
		MaxTokens:   e.maxTokens,
		System:      systemPrompt,
		Temperature: &temperature,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(userPromptTemplate, company, transcript)},
		},
	})
	if err != nil {
		return models.SurveyRow{}, err
	}
	resp.Usage.LogCost(e.logger, e.model, "extraction")

	row, err := DecodeAnswers(resp.Text())
	if err != nil {
		e.logger.Warn("could not decode model answer",
			zap.String("company", company),
			zap.String("stop_reason", resp.StopReason),
			zap.Error(err))
		return models.SurveyRow{}, err
	}
	return row, nil
}

// DecodeAnswers reads the JSON object in a model answer into a SurveyRow.
// Numbers and booleans are kept as their JSON text, string lists are joined
// with ", " and nulls are left empty.
func DecodeAnswers(answer string) (models.SurveyRow, error) {
	body, ok := jsonObject(answer)
	if !ok {
		return models.SurveyRow{}, ErrNoJSON
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return models.SurveyRow{}, fmt.Errorf("decode model answer: %w", err)
	}
	for _, k := range reservedKeys {
		delete(raw, k)
	}

	flat := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := flatten(v); ok {
			flat[k] = s
		}
	}

	encoded, err := json.Marshal(flat)
	if err != nil {
		return models.SurveyRow{}, fmt.Errorf("re-encode answers: %w", err)
	}

	var row models.SurveyRow
	if err := json.Unmarshal(encoded, &row); err != nil {
		return models.SurveyRow{}, fmt.Errorf("map answers: %w", err)
	}
	return row, nil
}

func flatten(v json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return strings.TrimSpace(s), true
	}

	var list []string
	if err := json.Unmarshal(v, &list); err == nil {
		return strings.Join(list, ", "), true
	}

	text := strings.TrimSpace(string(v))
	if text == "null" {
		return "", false
	}
	return text, true
}

// jsonObject returns the outermost {...} span, which also strips markdown
// code fences around it.
func jsonObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

var ErrNotConfigured = errors.New("evaluation extraction is not configured")

// Disabled rejects every transcript. It stands in when no model API key is
// configured so that read paths keep working.
type Disabled struct{}

func (Disabled) Extract(context.Context, string, string) (models.SurveyRow, error) {
	return models.SurveyRow{}, ErrNotConfigured
}
