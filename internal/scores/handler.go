package scores

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/ats"
	"resumeiq-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the scores service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scoring routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/score", h.computeScore)
	rg.POST("/keywords", h.extractKeywords)
	rg.GET("/scores", h.listScores)
	rg.GET("/scores/:id", h.getScore)
}

type scoreRequest struct {
	ResumeText string          `json:"resumeText"`
	ResumeData *ats.ResumeData `json:"resumeData"`
}

func (h *Handler) computeScore(c *gin.Context) {
	var req scoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	// An empty resume is not a request error: scoring yields the fixed
	// zero-score result with guidance.
	record, err := h.Svc.Score(c.Request.Context(), req.ResumeText, req.ResumeData)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute score", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"scoreId": record.ID,
		"result":  record.Result,
	})
}

type keywordsRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

func (h *Handler) extractKeywords(c *gin.Context) {
	var req keywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", []map[string]string{
			{"field": "text", "issue": "required"},
		})
		return
	}

	candidates := h.Svc.Keywords(req.Text, req.Limit)
	respond.JSON(c, http.StatusOK, gin.H{"keywords": candidates})
}

func (h *Handler) getScore(c *gin.Context) {
	scoreID := c.Param("id")
	if scoreID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "score id is required", nil)
		return
	}

	record, err := h.Svc.Get(c.Request.Context(), scoreID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "score not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch score", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, record)
}

func (h *Handler) listScores(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	records, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list scores", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"scores": records,
		"limit":  limit,
		"offset": offset,
	})
}
