package advisory

import (
	"context"
)

// Operation names for logs and metrics
const (
	OpChatAnalysis = "chat_analysis"
	OpStrategy     = "strategy"
	OpSummary      = "summary"
)

// Texts returned in place of model output when a request cannot be served
const (
	FallbackChatAnalysis = "Could not process the chat screenshot."
	FallbackStrategy     = "Could not reach the AI service to generate a strategy."
	FallbackSummary      = "Analysis unavailable."
	EmptyChatAnalysis    = "The image could not be analyzed."
	EmptyStrategy        = "No strategy could be generated."
)

// Advisor produces free-text sales advice about a lead. Implementations never
// fail: any error is logged and replaced by a fallback text.
type Advisor interface {
	AnalyzeChatScreenshot(ctx context.Context, img Image, lead LeadContext) string
	GenerateLeadStrategy(ctx context.Context, lead LeadContext) string
	SummarizeLead(ctx context.Context, lead LeadContext) string
}

// LeadContext is the snapshot of a lead sent along with a prompt
type LeadContext struct {
	Name           string
	Status         string
	Qualification  string
	Value          string
	MonthlyRevenue string
	AdSpend        string
	MainProblem    string
	Notes          string
}

// IsFallback reports whether text is one of the fixed fallback texts
func IsFallback(text string) bool {
	switch text {
	case FallbackChatAnalysis, FallbackStrategy, FallbackSummary, EmptyChatAnalysis, EmptyStrategy:
		return true
	}
	return false
}
