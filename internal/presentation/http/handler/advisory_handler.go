package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/application/service"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/request"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/response"
	"github.com/sangkips/leadflow-api/pkg/advisory"
)

// AdvisoryHandler handles AI advice requests for a lead
type AdvisoryHandler struct {
	advisoryService *service.AdvisoryService
}

// NewAdvisoryHandler creates a new advisory handler
func NewAdvisoryHandler(advisoryService *service.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{advisoryService: advisoryService}
}

// AdviceResponse carries generated advice text
type AdviceResponse struct {
	LeadID   string `json:"lead_id"`
	Text     string `json:"text"`
	Fallback bool   `json:"fallback"`
}

// AnalyzeChat handles a chat screenshot upload, either as multipart field
// "image" or as a JSON body with a base64 image
func (h *AdvisoryHandler) AnalyzeChat(c *gin.Context) {
	img, err := readImage(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	lead, pending, err := h.advisoryService.AnalyzeChat(c.Request.Context(), c.Param("id"), img)
	if err != nil {
		response.Error(c, err)
		return
	}

	respondWrite(c, pending, http.StatusOK, "Chat analysis completed", lead)
}

// Strategy handles generating a closing strategy
func (h *AdvisoryHandler) Strategy(c *gin.Context) {
	text, err := h.advisoryService.Strategy(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Strategy generated", AdviceResponse{
		LeadID:   c.Param("id"),
		Text:     text,
		Fallback: advisory.IsFallback(text),
	})
}

// Summary handles generating a one sentence lead assessment
func (h *AdvisoryHandler) Summary(c *gin.Context) {
	text, err := h.advisoryService.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary generated", AdviceResponse{
		LeadID:   c.Param("id"),
		Text:     text,
		Fallback: advisory.IsFallback(text),
	})
}

func readImage(c *gin.Context) (advisory.Image, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return advisory.Image{}, advisory.ErrEmptyImage
		}
		if fileHeader.Size > advisory.MaxImageBytes {
			return advisory.Image{}, advisory.ErrImageTooLarge
		}

		file, err := fileHeader.Open()
		if err != nil {
			return advisory.Image{}, err
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, advisory.MaxImageBytes+1))
		if err != nil {
			return advisory.Image{}, err
		}
		return advisory.NewImage(data, fileHeader.Header.Get("Content-Type"))
	}

	var req request.ChatAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return advisory.Image{}, advisory.ErrEmptyImage
	}
	return advisory.DecodeImage(req.Image)
}
