package service

import (
	"context"
	"testing"
	"time"

	"github.com/sangkips/leadflow-api/internal/domain/entity"
	"github.com/sangkips/leadflow-api/pkg/advisory"
	"github.com/sangkips/leadflow-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdvisoryFixture(t *testing.T) (*AdvisoryService, *MockLeadRepository, *MockAdvisor, *LeadService) {
	t.Helper()
	repo := new(MockLeadRepository)
	repo.On("ListAll", mock.Anything).Return([]entity.Lead{{
		ID:        "L-a",
		Name:      "Ana Gomez",
		Notes:     "Runs an agency",
		Value:     decimal.NewFromInt(1500),
		CreatedAt: time.Now(),
	}}, nil).Once()
	leads := newTestLeadService(repo, nil, true)
	require.NoError(t, leads.FetchAll(context.Background()))

	advisor := new(MockAdvisor)
	return NewAdvisoryService(leads, advisor, zap.NewNop()), repo, advisor, leads
}

func TestAdvisoryService_AnalyzeChatPersistsResult(t *testing.T) {
	svc, repo, advisor, leads := newAdvisoryFixture(t)
	img := advisory.Image{Data: []byte{1}, MIMEType: "image/png"}
	advisor.On("AnalyzeChatScreenshot", mock.Anything, img, mock.MatchedBy(func(lc advisory.LeadContext) bool {
		return lc.Name == "Ana Gomez" && lc.Value == "1500" && lc.Status == "New"
	})).Return("📌 QUICK SUMMARY").Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.ChatAnalysis == "📌 QUICK SUMMARY"
	})).Return(nil).Once()

	lead, pending, err := svc.AnalyzeChat(context.Background(), "L-a", img)
	require.NoError(t, err)
	require.NoError(t, pending.Wait(waitCtx(t)))

	assert.Equal(t, "📌 QUICK SUMMARY", lead.ChatAnalysis)
	stored, err := leads.Get("L-a")
	require.NoError(t, err)
	assert.Equal(t, "📌 QUICK SUMMARY", stored.ChatAnalysis)
	advisor.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestAdvisoryService_StrategyIsNotPersisted(t *testing.T) {
	svc, repo, advisor, _ := newAdvisoryFixture(t)
	advisor.On("GenerateLeadStrategy", mock.Anything, mock.Anything).Return(advisory.FallbackStrategy).Once()
	advisor.On("SummarizeLead", mock.Anything, mock.Anything).Return("Promising lead.").Once()

	strategy, err := svc.Strategy(context.Background(), "L-a")
	require.NoError(t, err)
	summary, err := svc.Summary(context.Background(), "L-a")
	require.NoError(t, err)

	assert.Equal(t, advisory.FallbackStrategy, strategy)
	assert.Equal(t, "Promising lead.", summary)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdvisoryService_UnknownLead(t *testing.T) {
	svc, _, advisor, _ := newAdvisoryFixture(t)

	_, _, err := svc.AnalyzeChat(context.Background(), "L-missing", advisory.Image{})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.Strategy(context.Background(), "L-missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	advisor.AssertNotCalled(t, "GenerateLeadStrategy", mock.Anything, mock.Anything)
}
