package advisory

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// pngHeader is enough for content sniffing to report image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	args := m.Called(ctx, model, contents, config)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.GenerateContentResponse), args.Error(1)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func newTestAdvisor(gen *MockGenerator) *GeminiAdvisor {
	return NewGeminiAdvisor(gen, GeminiConfig{ChatModel: "chat-model", StrategyModel: "strategy-model"}, zap.NewNop())
}

var ana = LeadContext{Name: "Ana Gomez", Status: "New", Value: "1500", Notes: "Wants to scale ads"}

func TestDecodeImage(t *testing.T) {
	raw := base64.StdEncoding.EncodeToString(pngHeader)

	t.Run("data url keeps declared type", func(t *testing.T) {
		img, err := DecodeImage("data:image/jpeg;base64," + raw)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", img.MIMEType)
		assert.Equal(t, pngHeader, img.Data)
	})

	t.Run("raw base64 is sniffed", func(t *testing.T) {
		img, err := DecodeImage(raw)
		require.NoError(t, err)
		assert.Equal(t, "image/png", img.MIMEType)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := DecodeImage("")
		assert.ErrorIs(t, err, ErrEmptyImage)

		_, err = DecodeImage("%%%not base64%%%")
		assert.ErrorIs(t, err, ErrInvalidBase64)

		_, err = DecodeImage(base64.StdEncoding.EncodeToString([]byte("just some text")))
		assert.ErrorIs(t, err, ErrNotAnImage)

		_, err = DecodeImage("data:image/png," + raw)
		assert.ErrorIs(t, err, ErrInvalidBase64)
	})
}

func TestGeminiAdvisor_AnalyzeChatScreenshot(t *testing.T) {
	gen := new(MockGenerator)
	img := Image{Data: pngHeader, MIMEType: "image/png"}

	gen.On("GenerateContent", mock.Anything, "chat-model", mock.MatchedBy(func(contents []*genai.Content) bool {
		if len(contents) != 1 || len(contents[0].Parts) != 2 {
			return false
		}
		inline := contents[0].Parts[0].InlineData
		return inline != nil && inline.MIMEType == "image/png" &&
			assert.Contains(t, contents[0].Parts[1].Text, "Ana Gomez")
	}), mock.Anything).Return(textResponse("📌 QUICK SUMMARY\n• Interested"), nil)

	text := newTestAdvisor(gen).AnalyzeChatScreenshot(context.Background(), img, ana)

	assert.Equal(t, "📌 QUICK SUMMARY\n• Interested", text)
	gen.AssertExpectations(t)
}

func TestGeminiAdvisor_FallsBackOnError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("service unavailable"))
	advisor := newTestAdvisor(gen)

	assert.Equal(t, FallbackChatAnalysis, advisor.AnalyzeChatScreenshot(context.Background(), Image{Data: pngHeader, MIMEType: "image/png"}, ana))
	assert.Equal(t, FallbackStrategy, advisor.GenerateLeadStrategy(context.Background(), ana))
	assert.Equal(t, FallbackSummary, advisor.SummarizeLead(context.Background(), ana))
}

func TestGeminiAdvisor_EmptyResponse(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, "strategy-model", mock.Anything, mock.Anything).
		Return(textResponse("   "), nil)

	text := newTestAdvisor(gen).GenerateLeadStrategy(context.Background(), ana)

	assert.Equal(t, EmptyStrategy, text)
	assert.True(t, IsFallback(text))
}

func TestGeminiAdvisor_StrategyPrompt(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, "strategy-model", mock.MatchedBy(func(contents []*genai.Content) bool {
		prompt := contents[0].Parts[0].Text
		return assert.Contains(t, prompt, "Ana Gomez ($1500)") && assert.Contains(t, prompt, "NEXT STEPS")
	}), mock.Anything).Return(textResponse("strategy"), nil)

	assert.Equal(t, "strategy", newTestAdvisor(gen).GenerateLeadStrategy(context.Background(), ana))
}

func TestUnavailableAdvisor(t *testing.T) {
	advisor := NewUnavailableAdvisor(zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, FallbackChatAnalysis, advisor.AnalyzeChatScreenshot(ctx, Image{}, ana))
	assert.Equal(t, FallbackStrategy, advisor.GenerateLeadStrategy(ctx, ana))
	assert.Equal(t, FallbackSummary, advisor.SummarizeLead(ctx, ana))
}

func TestRenderSummaryWithoutNotes(t *testing.T) {
	prompt, err := render(summaryTemplate, LeadContext{Name: "Bruno", Status: "Contacted", Value: "0"})

	require.NoError(t, err)
	assert.Contains(t, prompt, "Notes: No notes")
	assert.Contains(t, prompt, "Estimated value: $0")
}
