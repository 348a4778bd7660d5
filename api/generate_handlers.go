package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stickfight/choreo"
	"stickfight/define"
)

// handleGenerate 根据打斗描述生成动画视频
func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, define.GenerateResponse{
			Success: false,
			Message: "无效的生成请求：" + err.Error(),
		})
		return
	}

	res := s.generator.Generate(c.Request.Context(), *req.FightDescription)
	if !res.Success {
		_ = c.Error(res.Err)
		c.JSON(http.StatusOK, define.GenerateResponse{
			Success: false,
			Message: res.Message,
		})
		return
	}

	c.JSON(http.StatusOK, define.GenerateResponse{
		Success:  true,
		VideoURL: res.VideoURL,
	})
}

// handleInterpret 预览描述文本对应的编排序列，不做渲染
func (s *Server) handleInterpret(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ApiResponse{
			Status: "error",
			Error:  "无效的解析请求：" + err.Error(),
		})
		return
	}

	seq := choreo.Interpret(*req.FightDescription)
	track, err := s.generator.Assembler().Poses(seq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ApiResponse{
			Status: "error",
			Error:  err.Error(),
		})
		return
	}
	total := len(track)

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: InterpretResponse{
			Sequence:        seq,
			TotalFrames:     total,
			DurationSeconds: float64(total) / float64(s.fps),
			FPS:             s.fps,
			Track:           track,
		},
	})
}
