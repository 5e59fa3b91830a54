package advisory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/leadflow-api/pkg/metrics"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// ContentGenerator is the part of the genai client used here. *genai.Models
// satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig configures the Gemini advisor
type GeminiConfig struct {
	APIKey        string
	ChatModel     string
	StrategyModel string
	Timeout       time.Duration
}

// GeminiAdvisor implements Advisor on the Gemini API
type GeminiAdvisor struct {
	models        ContentGenerator
	chatModel     string
	strategyModel string
	timeout       time.Duration
	log           *zap.Logger
}

// NewGeminiClient connects to the Gemini API with an API key
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// NewGeminiAdvisor creates an advisor that sends requests through models
func NewGeminiAdvisor(models ContentGenerator, cfg GeminiConfig, log *zap.Logger) *GeminiAdvisor {
	return &GeminiAdvisor{
		models:        models,
		chatModel:     cfg.ChatModel,
		strategyModel: cfg.StrategyModel,
		timeout:       cfg.Timeout,
		log:           log,
	}
}

// AnalyzeChatScreenshot sends the screenshot with a structured report prompt
func (a *GeminiAdvisor) AnalyzeChatScreenshot(ctx context.Context, img Image, lead LeadContext) string {
	prompt, err := render(chatAnalysisTemplate, lead)
	if err != nil {
		return a.fail(OpChatAnalysis, lead, err, FallbackChatAnalysis)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, img.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.4),
	}
	return a.generate(ctx, OpChatAnalysis, a.chatModel, contents, config, lead, FallbackChatAnalysis, EmptyChatAnalysis)
}

// GenerateLeadStrategy asks for a closing strategy built from the lead profile
func (a *GeminiAdvisor) GenerateLeadStrategy(ctx context.Context, lead LeadContext) string {
	prompt, err := render(strategyTemplate, lead)
	if err != nil {
		return a.fail(OpStrategy, lead, err, FallbackStrategy)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
		TopP:        genai.Ptr[float32](0.95),
	}
	return a.generate(ctx, OpStrategy, a.strategyModel, genai.Text(prompt), config, lead, FallbackStrategy, EmptyStrategy)
}

// SummarizeLead asks for a one sentence assessment of the lead
func (a *GeminiAdvisor) SummarizeLead(ctx context.Context, lead LeadContext) string {
	prompt, err := render(summaryTemplate, lead)
	if err != nil {
		return a.fail(OpSummary, lead, err, FallbackSummary)
	}

	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		MaxOutputTokens: 100,
	}
	return a.generate(ctx, OpSummary, a.chatModel, genai.Text(prompt), config, lead, FallbackSummary, FallbackSummary)
}

func (a *GeminiAdvisor) generate(
	ctx context.Context,
	op, model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
	lead LeadContext,
	fallback, empty string,
) string {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := a.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return a.fail(op, lead, err, fallback)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		a.log.Warn("Advisory returned no text", zap.String("operation", op), zap.String("model", model))
		metrics.RecordAdvisoryRequest(op, metrics.ResultFallback)
		return empty
	}

	a.log.Debug("Advisory request completed",
		zap.String("operation", op),
		zap.String("model", model),
		zap.Duration("duration", time.Since(start)),
	)
	metrics.RecordAdvisoryRequest(op, metrics.ResultSuccess)
	return text
}

func (a *GeminiAdvisor) fail(op string, lead LeadContext, err error, fallback string) string {
	a.log.Error("Advisory request failed",
		zap.String("operation", op),
		zap.String("lead", lead.Name),
		zap.Error(err),
	)
	metrics.RecordAdvisoryRequest(op, metrics.ResultError)
	return fallback
}
