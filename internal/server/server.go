package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/maydkoch/levlresources/internal/core"
)

type Server struct {
	Pipeline *core.Pipeline
	Logger   *zap.Logger
}

func NewServer(pipeline *core.Pipeline, logger *zap.Logger) *Server {
	return &Server{
		Pipeline: pipeline,
		Logger:   logger,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.Health)
	r.POST("/ingest", s.Ingest)
	r.GET("/resolution/nodes", s.SimilarNodes)
	r.GET("/resolution/edges", s.SimilarEdges)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ingest accepts a raw literature blob: first line citation, remaining
// lines the body. The response is the run report.
func (s *Server) Ingest(c *gin.Context) {
	blob, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	citation, body := core.SplitLiterature(string(blob))
	if citation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing citation line"})
		return
	}

	report, err := s.Pipeline.Ingest(c.Request.Context(), citation, body)
	if err != nil {
		s.Logger.Error("ingest failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ingest failed", "report": report})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) SimilarNodes(c *gin.Context) {
	report, err := s.Pipeline.SimilarNodes(c.Request.Context(), thresholdParam(c))
	if err != nil {
		s.Logger.Error("node resolution failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resolution failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) SimilarEdges(c *gin.Context) {
	report, err := s.Pipeline.SimilarEdges(c.Request.Context(), thresholdParam(c))
	if err != nil {
		s.Logger.Error("edge resolution failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resolution failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// thresholdParam reads an optional ?threshold= override; 0 keeps the
// configured default.
func thresholdParam(c *gin.Context) int {
	v := c.Query("threshold")
	if v == "" {
		return 0
	}
	threshold, err := strconv.Atoi(v)
	if err != nil || threshold < 0 || threshold > 100 {
		return 0
	}
	return threshold
}
