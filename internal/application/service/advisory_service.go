package service

import (
	"context"

	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/pkg/advisory"
	"go.uber.org/zap"
)

// AdvisoryService runs AI advice requests for leads held by the lead service
type AdvisoryService struct {
	leads   *LeadService
	advisor advisory.Advisor
	log     *zap.Logger
}

// NewAdvisoryService creates a new advisory service
func NewAdvisoryService(leads *LeadService, advisor advisory.Advisor, log *zap.Logger) *AdvisoryService {
	return &AdvisoryService{
		leads:   leads,
		advisor: advisor,
		log:     log,
	}
}

// AnalyzeChat analyzes a chat screenshot and stores the result on the lead's
// chat_analysis through a regular update
func (s *AdvisoryService) AnalyzeChat(ctx context.Context, leadID string, img advisory.Image) (*entity.Lead, *Pending, error) {
	lead, err := s.leads.Get(leadID)
	if err != nil {
		return nil, nil, err
	}

	lead.ChatAnalysis = s.advisor.AnalyzeChatScreenshot(ctx, img, leadContext(lead))
	s.log.Info("Chat analysis generated",
		zap.String("lead_id", leadID),
		zap.Bool("fallback", advisory.IsFallback(lead.ChatAnalysis)),
	)
	return s.leads.Update(ctx, lead)
}

// Strategy returns a closing strategy for the lead. It is not stored.
func (s *AdvisoryService) Strategy(ctx context.Context, leadID string) (string, error) {
	lead, err := s.leads.Get(leadID)
	if err != nil {
		return "", err
	}
	return s.advisor.GenerateLeadStrategy(ctx, leadContext(lead)), nil
}

// Summary returns a one sentence assessment of the lead. It is not stored.
func (s *AdvisoryService) Summary(ctx context.Context, leadID string) (string, error) {
	lead, err := s.leads.Get(leadID)
	if err != nil {
		return "", err
	}
	return s.advisor.SummarizeLead(ctx, leadContext(lead)), nil
}

func leadContext(l *entity.Lead) advisory.LeadContext {
	lc := advisory.LeadContext{
		Name:           l.Name,
		Status:         l.Status.String(),
		Value:          l.Value.String(),
		MonthlyRevenue: l.MonthlyRevenue,
		AdSpend:        l.AdSpend,
		MainProblem:    l.MainProblem,
		Notes:          l.Notes,
	}
	if l.Qualification != nil {
		lc.Qualification = l.Qualification.String()
	}
	return lc
}
