package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stickfight/pose"
)

// handleGetPoses 获取姿势库中的所有姿势
func (s *Server) handleGetPoses(c *gin.Context) {
	lib := s.generator.Library()

	poses := make([]PoseInfo, 0, lib.Len())
	for _, name := range lib.Names() {
		p, err := lib.Get(name)
		if err != nil {
			continue
		}
		poses = append(poses, PoseInfo{
			Name:        name,
			Description: lib.Description(name),
			Points:      p.Points(),
		})
	}

	c.JSON(http.StatusOK, ApiResponse{
		Status: "success",
		Data: PoseListResponse{
			Poses:    poses,
			Skeleton: pose.Edges(),
			Total:    len(poses),
		},
	})
}
