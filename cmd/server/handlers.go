package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orgkompass/orgkompass/internal/assessment"
	"github.com/orgkompass/orgkompass/internal/errors"
	"github.com/orgkompass/orgkompass/internal/monitoring"
)

// analyzeRequest is the payload every analysis endpoint accepts. Ratings
// keys outside the indicator vocabulary are ignored by the engine; missing
// indicators count as 0.
type analyzeRequest struct {
	Ratings assessment.Ratings `json:"ratings" binding:"required"`
}

// fullAnalysisResponse bundles the consolidated result with the derived
// recommendations for the frontend's summary view.
type fullAnalysisResponse struct {
	Result          assessment.Result           `json:"result"`
	Recommendations []assessment.Recommendation `json:"recommendations"`
}

type handlers struct {
	analyzer *assessment.Analyzer
	metrics  *monitoring.Metrics
	logger   *monitoring.Logger
}

func newHandlers(analyzer *assessment.Analyzer, metrics *monitoring.Metrics, logger *monitoring.Logger) *handlers {
	return &handlers{analyzer: analyzer, metrics: metrics, logger: logger}
}

func (h *handlers) bind(c *gin.Context) (analyzeRequest, bool) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.NewValidationError("invalid request payload", err.Error()))
		c.Abort()
		return req, false
	}
	return req, true
}

func (h *handlers) recordAnalysis(analysisType string, indicatorCount int, start time.Time) {
	h.metrics.IncrementAnalysis()
	h.logger.AnalysisLogger(analysisType, indicatorCount, time.Since(start), false)
}

// health godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fullAnalysis godoc
// @Summary Run the full St. Gallen analysis
// @Description Aggregates all four rating families into the consolidated result plus recommendations.
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "indicator ratings (1-7)"
// @Success 200 {object} fullAnalysisResponse
// @Failure 400 {object} errors.AppError
// @Router /analyze [post]
func (h *handlers) fullAnalysis(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	start := time.Now()

	result, err := h.analyzer.RunFullAnalysis(req.Ratings)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	h.recordAnalysis("full", len(req.Ratings), start)
	c.JSON(http.StatusOK, fullAnalysisResponse{
		Result:          result,
		Recommendations: assessment.Recommendations(result),
	})
}

// perspectives godoc
// @Summary Analyze the three management perspectives
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "indicator ratings (1-7)"
// @Success 200 {object} assessment.PerspectivesResult
// @Failure 400 {object} errors.AppError
// @Router /analyze/perspectives [post]
func (h *handlers) perspectives(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	start := time.Now()

	result, err := h.analyzer.AnalyzeManagementPerspectives(req.Ratings)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	h.recordAnalysis("perspectives", len(req.Ratings), start)
	c.JSON(http.StatusOK, result)
}

// orderElements godoc
// @Summary Analyze the four structural order elements
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "indicator ratings (1-7)"
// @Success 200 {object} assessment.OrderElementsResult
// @Failure 400 {object} errors.AppError
// @Router /analyze/order-elements [post]
func (h *handlers) orderElements(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	start := time.Now()

	result, err := h.analyzer.AnalyzeOrderElements(req.Ratings)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	h.recordAnalysis("order_elements", len(req.Ratings), start)
	c.JSON(http.StatusOK, result)
}

// development godoc
// @Summary Analyze the development perspectives and profile
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "indicator ratings (1-7)"
// @Success 200 {object} assessment.DevelopmentResult
// @Failure 400 {object} errors.AppError
// @Router /analyze/development [post]
func (h *handlers) development(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	start := time.Now()

	result, err := h.analyzer.AnalyzeDevelopmentPerspectives(req.Ratings)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	h.recordAnalysis("development", len(req.Ratings), start)
	c.JSON(http.StatusOK, result)
}

// systemic godoc
// @Summary Analyze the systemic organization properties
// @Accept json
// @Produce json
// @Param request body analyzeRequest true "indicator ratings (1-7)"
// @Success 200 {object} assessment.SystemicResult
// @Failure 400 {object} errors.AppError
// @Router /analyze/systemic [post]
func (h *handlers) systemic(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	start := time.Now()

	result, err := h.analyzer.AnalyzeSystemicProperties(req.Ratings)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	h.recordAnalysis("systemic", len(req.Ratings), start)
	c.JSON(http.StatusOK, result)
}

// indicators godoc
// @Summary Default indicator vocabulary
// @Description Returns all 42 indicator keys with the neutral default rating of 4; frontends seed their sliders from it.
// @Produce json
// @Success 200 {object} assessment.Ratings
// @Router /indicators [get]
func (h *handlers) indicators(c *gin.Context) {
	c.JSON(http.StatusOK, assessment.DefaultRatings())
}

// benchmarks godoc
// @Summary Empirical benchmark table
// @Produce json
// @Success 200 {object} map[string]assessment.Benchmark
// @Router /benchmarks [get]
func (h *handlers) benchmarks(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.Benchmarks())
}

// theory godoc
// @Summary Theoretical foundations of the model
// @Produce json
// @Success 200 {object} assessment.Theory
// @Router /theory [get]
func (h *handlers) theory(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.Theory())
}
