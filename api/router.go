package api

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stickfight/api/middleware"
	"stickfight/define"
	"stickfight/generator"
)

// Version 服务版本
const Version = "1.0.0"

// Server API 服务器结构体
type Server struct {
	generator *generator.Generator
	limiter   *middleware.RateLimiter
	staticDir string
	outputDir string
	urlPrefix string
	format    string
	fps       int
	log       logrus.FieldLogger
	startTime time.Time
	version   string
}

// NewServer 创建新的 API 服务器实例
func NewServer(gen *generator.Generator, cfg *define.Config, logger logrus.FieldLogger) *Server {
	return &Server{
		generator: gen,
		limiter:   middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, logger),
		staticDir: cfg.StaticDir,
		outputDir: cfg.OutputDir,
		urlPrefix: cfg.URLPrefix,
		format:    cfg.Format,
		fps:       cfg.FPS,
		log:       logger,
		startTime: time.Now(),
		version:   Version,
	}
}

// SetupRoutes 设置路由
func (s *Server) SetupRoutes(r *gin.Engine) {
	r.Use(middleware.RequestID(), middleware.Logger(s.log))

	r.StaticFile("/", filepath.Join(s.staticDir, "index.html"))
	r.Static("/static", s.staticDir)
	// 视频目录不在 /static 下时单独挂载
	if !strings.HasPrefix(s.urlPrefix, "/static/") {
		r.Static(s.urlPrefix, s.outputDir)
	}

	// 动画生成
	r.POST("/generate", s.limiter.Handler(), s.handleGenerate)

	api := r.Group("/api")
	{
		api.GET("/poses", s.handleGetPoses)         // 获取姿势库
		api.POST("/interpret", s.handleInterpret)   // 预览编排序列
		api.GET("/formats", s.handleGetFormats)     // 获取支持的视频格式
		api.GET("/status", s.handleGetSystemStatus) // 获取系统状态
		api.GET("/health", s.handleHealthCheck)     // 健康检查
	}
}
