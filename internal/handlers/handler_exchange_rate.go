package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_advisor/internal/core/ports/services"
	"github.com/SscSPs/remittance_advisor/internal/dto"
	"github.com/SscSPs/remittance_advisor/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.queryExchangeRate)
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
}

// queryExchangeRate godoc
// @Summary Look up an exchange rate
// @Description Fetches the rate for a currency pair from the upstream provider, optionally on a past date
// @Tags exchange rates
// @Produce  json
// @Param   from query string true "From Currency Code (3 letters)"
// @Param   to   query string true "To Currency Code (3 letters)"
// @Param   date query string false "Date (YYYY-MM-DD); latest when omitted"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid parameters"
// @Failure 502 {object} dto.ErrorResponse "Upstream rate lookup failed"
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) queryExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if c.Query("from") == "" || c.Query("to") == "" {
		logger.Warn("Exchange rate query without from/to")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	var query dto.ExchangeRateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for exchange rate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	var date *time.Time
	if query.Date != "" {
		// already validated by the datetime binding tag
		parsed, _ := time.Parse(domain.DateLayout, query.Date)
		date = &parsed
	}

	logger = logger.With(slog.String("from_code", query.From), slog.String("to_code", query.To), slog.String("date", query.Date))
	logger.Info("Received request to look up exchange rate")

	h.respondWithRate(c, logger, query.From, query.To, date)
}

// getExchangeRate godoc
// @Summary Get the latest exchange rate
// @Description Retrieves the latest exchange rate for a given currency pair
// @Tags exchange rates
// @Produce  json
// @Param   from path string true "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to   path string true "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code"
// @Failure 502 {object} dto.ErrorResponse "Upstream rate lookup failed"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))
	logger.Info("Received request to get exchange rate")

	h.respondWithRate(c, logger, fromCode, toCode, nil)
}

func (h *exchangeRateHandler) respondWithRate(c *gin.Context, logger *slog.Logger, fromCode, toCode string, date *time.Time) {
	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode, date)
	if err != nil {
		respondError(c, logger, err, "Failed to fetch exchange rate")
		return
	}

	logger.Info("Exchange rate retrieved successfully", slog.Float64("rate", rate.Rate))
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}
