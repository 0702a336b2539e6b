package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"FinSight/internal/analysis"
	models "FinSight/internal/domain/models"
	domrepo "FinSight/internal/domain/repository"
	svcmetrics "FinSight/internal/service/metrics"
	"FinSight/internal/usecase"
	"FinSight/pkg/cache"
	xhttp "FinSight/pkg/http"
	xlogger "FinSight/pkg/logger"
)

const benchmarkCacheTTL = 10 * time.Minute

// AssessmentsEchoHandler exposes the assessment pipeline over HTTP.
type AssessmentsEchoHandler struct {
	logger   *xlogger.Logger
	assessor *usecase.Assessor
	cache    cache.Service
}

func NewAssessmentsEchoHandler(logger *xlogger.Logger, assessor *usecase.Assessor, cacheSvc cache.Service) *AssessmentsEchoHandler {
	svcmetrics.Register()
	return &AssessmentsEchoHandler{logger: logger, assessor: assessor, cache: cacheSvc}
}

func (h *AssessmentsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/companies/:id/assess", h.Assess)
	g.GET("/companies/:id/dashboard", h.Dashboard)
	g.GET("/companies/:id/forecast", h.Forecast)
	g.GET("/industries/:industry/benchmarks", h.Benchmarks)
	g.GET("/health", h.Health)
}

func (h *AssessmentsEchoHandler) Assess(c echo.Context) error {
	start := time.Now()
	defer func() { svcmetrics.AssessmentLatency.WithLabelValues("assess").Observe(time.Since(start).Seconds()) }()

	companyID := c.Param("id")
	if companyID == "" {
		return xhttp.BadRequestResponse(c, "company id is required")
	}
	req := &models.AssessRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.assessor.Assess(c.Request().Context(), companyID, req.Snapshot())
	if err != nil {
		svcmetrics.AssessmentErrors.WithLabelValues("assess").Inc()
		h.logger.Error("assess usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.CreatedResponse(c, res)
}

func (h *AssessmentsEchoHandler) Dashboard(c echo.Context) error {
	companyID := c.Param("id")
	if companyID == "" {
		return xhttp.BadRequestResponse(c, "company id is required")
	}
	res, err := h.assessor.Dashboard(c.Request().Context(), companyID)
	if err != nil {
		if errors.Is(err, domrepo.ErrNotFound) {
			return xhttp.NotFoundResponse(c, "no assessment for company")
		}
		h.logger.Error("dashboard usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AssessmentsEchoHandler) Forecast(c echo.Context) error {
	companyID := c.Param("id")
	if companyID == "" {
		return xhttp.BadRequestResponse(c, "company id is required")
	}
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	start := time.Now()
	res, err := h.assessor.Forecast(c.Request().Context(), companyID, req.Months)
	svcmetrics.AssessmentLatency.WithLabelValues("forecast").Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, domrepo.ErrNotFound):
			return xhttp.NotFoundResponse(c, "no assessment history for company")
		case errors.Is(err, analysis.ErrInsufficientData):
			return xhttp.BadRequestResponse(c, "at least 3 historical assessments are required")
		}
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AssessmentsEchoHandler) Benchmarks(c echo.Context) error {
	industry := c.Param("industry")

	cacheKey := "benchmarks:" + industry
	if h.cache != nil {
		if raw, err := h.cache.Get(c.Request().Context(), cacheKey); err == nil {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, raw)
		}
	}

	table, ok := h.assessor.IndustryBenchmarks(industry)
	if !ok {
		return xhttp.NotFoundResponse(c, "unknown industry")
	}
	body := map[string]interface{}{
		"industry":                   industry,
		"benchmarks":                 table,
		"key_performance_indicators": analysis.IndustryKPIs(industry),
		"insights":                   analysis.IndustryInsights(industry),
	}

	if h.cache != nil {
		if raw, err := json.Marshal(xhttp.APIResponse{Status: http.StatusOK, Message: http.StatusText(http.StatusOK), Data: body}); err == nil {
			if err := h.cache.Set(c.Request().Context(), cacheKey, raw, benchmarkCacheTTL); err != nil {
				h.logger.Warn("benchmark cache set failed", xlogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, body)
}

func (h *AssessmentsEchoHandler) Health(c echo.Context) error {
	if err := h.assessor.Health(c.Request().Context()); err != nil {
		return xhttp.DataResponse(c, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
	}
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}
