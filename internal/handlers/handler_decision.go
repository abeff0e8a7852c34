package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/remittance_advisor/internal/core/ports/services"
	"github.com/SscSPs/remittance_advisor/internal/dto"
	"github.com/SscSPs/remittance_advisor/internal/middleware"
	"github.com/gin-gonic/gin"
)

type decisionHandler struct {
	decisionService portssvc.DecisionSvc
	now             func() time.Time
}

func newDecisionHandler(ds portssvc.DecisionSvc) *decisionHandler {
	return &decisionHandler{
		decisionService: ds,
		now:             time.Now,
	}
}

// registerDecisionRoutes registers the send-or-wait route.
func registerDecisionRoutes(rg *gin.RouterGroup, decisionService portssvc.DecisionSvc) {
	h := newDecisionHandler(decisionService)

	rg.POST("/decisions", h.createDecision)
}

// createDecision godoc
// @Summary Decide whether to send money now
// @Description Compares the current rate with the average of the previous six months and recommends sending when it is at least 2% higher
// @Tags decisions
// @Accept  json
// @Produce  json
// @Param   request body dto.DecisionRequest true "Currency pair"
// @Success 200 {object} dto.DecisionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 422 {object} dto.ErrorResponse "Rate data could not be evaluated"
// @Failure 502 {object} dto.ErrorResponse "Upstream rate lookup failed"
// @Security BearerAuth
// @Router /decisions [post]
func (h *decisionHandler) createDecision(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for decision", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("from", req.FromCurrency), slog.String("to", req.ToCurrency))
	logger.Info("Received request for a send decision")

	verdict, err := h.decisionService.Decide(c.Request.Context(), req.FromCurrency, req.ToCurrency, h.now())
	if err != nil {
		respondError(c, logger, err, "Failed to compute decision")
		return
	}

	logger.Info("Decision computed", slog.Bool("should_send", verdict.ShouldSend))
	c.JSON(http.StatusOK, dto.ToDecisionResponse(verdict))
}
