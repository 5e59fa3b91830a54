package advisory

import (
	"context"

	"github.com/sangkips/leadflow-api/pkg/metrics"
	"go.uber.org/zap"
)

// UnavailableAdvisor answers every request with the fallback texts. It is
// used when no API key is configured.
type UnavailableAdvisor struct {
	log *zap.Logger
}

// NewUnavailableAdvisor creates an advisor with no backing model
func NewUnavailableAdvisor(log *zap.Logger) *UnavailableAdvisor {
	return &UnavailableAdvisor{log: log}
}

func (a *UnavailableAdvisor) AnalyzeChatScreenshot(_ context.Context, _ Image, _ LeadContext) string {
	return a.unavailable(OpChatAnalysis, FallbackChatAnalysis)
}

func (a *UnavailableAdvisor) GenerateLeadStrategy(_ context.Context, _ LeadContext) string {
	return a.unavailable(OpStrategy, FallbackStrategy)
}

func (a *UnavailableAdvisor) SummarizeLead(_ context.Context, _ LeadContext) string {
	return a.unavailable(OpSummary, FallbackSummary)
}

func (a *UnavailableAdvisor) unavailable(op, fallback string) string {
	a.log.Warn("Advisory requested but no AI provider is configured", zap.String("operation", op))
	metrics.RecordAdvisoryRequest(op, metrics.ResultFallback)
	return fallback
}
