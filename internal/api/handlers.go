package api

import (
	_ "embed"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gigfeed/internal/config"
	"github.com/jonesrussell/gigfeed/internal/domain"
	"github.com/jonesrussell/gigfeed/internal/logger"
	"github.com/jonesrussell/gigfeed/internal/service"
)

//go:embed static/index.html
var dashboardHTML []byte

// csvFilename is the download name offered for exports.
const csvFilename = "gigfeed_results.csv"

// Handler holds HTTP request handlers.
type Handler struct {
	searchService *service.SearchService
	pinger        service.Pinger
	config        *config.Config
	logger        logger.Logger
}

// NewHandler creates a new handler instance.
func NewHandler(searchService *service.SearchService, pinger service.Pinger, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		searchService: searchService,
		pinger:        pinger,
		config:        cfg,
		logger:        log,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error     string    `json:"error"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
}

// Search handles search requests (both GET and POST).
func (h *Handler) Search(c *gin.Context) {
	req, ok := h.bindSearchRequest(c)
	if !ok {
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		// The pipeline absorbs everything below the query boundary, so a
		// service error is always request validation.
		h.validationError(c, err)
		return
	}
	if result.UsedFallback {
		CountFallback()
	}

	c.JSON(http.StatusOK, result)
}

// ExportCSV handles CSV download requests. Same parameters as Search; the
// filtered row set is streamed as a delimited-text attachment.
func (h *Handler) ExportCSV(c *gin.Context) {
	req, ok := h.bindSearchRequest(c)
	if !ok {
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		h.validationError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+csvFilename+`"`)
	c.Header("X-Used-Fallback", strconv.FormatBool(result.UsedFallback))

	if writeErr := service.WriteCSV(c.Writer, result.Records); writeErr != nil {
		h.logger.Error("CSV export failed",
			logger.Error(writeErr),
			logger.String("query", result.Query),
		)
	}
}

// locationsResponse is the chart payload.
type locationsResponse struct {
	Query        string                 `json:"query"`
	UsedFallback bool                   `json:"used_fallback"`
	MatchCount   int                    `json:"match_count"`
	Locations    []domain.LocationCount `json:"locations"`
}

// Locations handles the per-location aggregation used by the dashboard chart.
func (h *Handler) Locations(c *gin.Context) {
	req, ok := h.bindSearchRequest(c)
	if !ok {
		return
	}

	top := h.config.Service.ChartTopLocations
	if raw := c.Query("top"); raw != "" {
		if t, err := strconv.Atoi(raw); err == nil && t > 0 {
			top = t
		}
	}

	result, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		h.validationError(c, err)
		return
	}

	c.JSON(http.StatusOK, locationsResponse{
		Query:        result.Query,
		UsedFallback: result.UsedFallback,
		MatchCount:   result.MatchCount,
		Locations:    service.LocationCounts(result.Records, top),
	})
}

// Dashboard serves the embedded single-page dashboard.
func (h *Handler) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardHTML)
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, h.searchService.HealthCheck(c.Request.Context(), h.pinger))
}

// ReadinessCheck handles readiness check requests. Same as health: the
// service is ready as soon as it can serve, with or without the scraper.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	h.HealthCheck(c)
}

// bindSearchRequest extracts a SearchRequest from the query string (GET) or
// JSON body (POST). Returns false after writing the error response.
func (h *Handler) bindSearchRequest(c *gin.Context) (*domain.SearchRequest, bool) {
	var req domain.SearchRequest

	if c.Request.Method == http.MethodGet {
		req = domain.SearchRequest{
			Keywords: c.Query("q"),
			Locale:   c.Query("lang"),
			Region:   c.Query("region"),
		}
		if raw := c.Query("max"); raw != "" {
			if m, err := strconv.Atoi(raw); err == nil {
				req.MaxResults = m
			}
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warn("Invalid search request body",
				logger.Error(err),
			)
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:     "Invalid request body: " + err.Error(),
				Code:      "INVALID_REQUEST",
				Timestamp: time.Now(),
			})
			return nil, false
		}
	}

	return &req, true
}

// validationError writes the single user-visible error of the pipeline.
func (h *Handler) validationError(c *gin.Context, err error) {
	h.logger.Warn("Search request rejected",
		logger.Error(err),
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		Code:      "VALIDATION_ERROR",
		Timestamp: time.Now(),
	})
}
