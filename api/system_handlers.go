package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stickfight/encoder"
)

// handleGetFormats 获取支持的视频格式
func (s *Server) handleGetFormats(c *gin.Context) {
	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: FormatsResponse{
			Formats: encoder.SupportedFormats(),
			Current: s.format,
		},
	})
}

// handleGetSystemStatus 获取系统状态
func (s *Server) handleGetSystemStatus(c *gin.Context) {
	generated, failed := s.generator.Stats()

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: SystemStatusResponse{
			Generated: generated,
			Failed:    failed,
			Format:    s.format,
			FPS:       s.fps,
			Uptime:    time.Since(s.startTime),
			Version:   s.version,
		},
	})
}

// handleHealthCheck 健康检查
func (s *Server) handleHealthCheck(c *gin.Context) {
	status := "healthy"
	if s.generator == nil || s.generator.Library().Len() == 0 {
		status = "unhealthy"
	}

	httpStatus := http.StatusOK
	if status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, ApiResponse{
		Status: "success",
		Data: HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   s.version,
		},
	})
}
