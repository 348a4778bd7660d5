package api

import (
	"time"

	"stickfight/choreo"
	"stickfight/define"
	"stickfight/pose"
)

// ===== 通用响应模型 =====

// ApiResponse 统一 API 响应格式
type ApiResponse = define.ApiResponse

// ===== 动画生成相关模型 =====

// GenerateRequest 动画生成请求，支持表单和 JSON
type GenerateRequest struct {
	FightDescription *string `form:"fight_description" json:"fight_description" binding:"required,max=2000"`
}

// InterpretResponse 编排预览响应
type InterpretResponse struct {
	Sequence        choreo.Sequence `json:"sequence"`
	TotalFrames     int             `json:"totalFrames"`
	DurationSeconds float64         `json:"durationSeconds"`
	FPS             int             `json:"fps"`
	Track           []pose.Pose     `json:"track"` // 每一帧的关节坐标
}

// ===== 姿势相关模型 =====

// PoseInfo 单个姿势信息
type PoseInfo struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Points      []pose.Point `json:"points"`
}

// PoseListResponse 姿势列表响应
type PoseListResponse struct {
	Poses    []PoseInfo  `json:"poses"`
	Skeleton []pose.Edge `json:"skeleton"`
	Total    int         `json:"total"`
}

// ===== 系统管理相关模型 =====

// FormatsResponse 支持的视频格式响应
type FormatsResponse struct {
	Formats []string `json:"formats"`
	Current string   `json:"current"`
}

// SystemStatusResponse 系统状态响应
type SystemStatusResponse struct {
	Generated int64         `json:"generated"`
	Failed    int64         `json:"failed"`
	Format    string        `json:"format"`
	FPS       int           `json:"fps"`
	Uptime    time.Duration `json:"uptime"`
	Version   string        `json:"version"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}
