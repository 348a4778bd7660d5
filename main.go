package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stickfight/api"
	"stickfight/cli"
	"stickfight/config"
	"stickfight/encoder"
	"stickfight/generator"
	pkglog "stickfight/pkg/log"
	"stickfight/pose"
)

func printUsage() {
	fmt.Println("Stickman Fight Animation Service")
	fmt.Println("Usage:")
	fmt.Println("  -config string      JSON 配置文件路径")
	fmt.Println("  -port string        Web 服务的端口 (default: 5000)")
	fmt.Println("  -static-dir string  静态文件目录 (default: ./static)")
	fmt.Println("  -output-dir string  生成视频的保存目录 (default: static/generated_videos)")
	fmt.Println("  -url-prefix string  生成视频的访问路径前缀 (default: /static/generated_videos)")
	fmt.Println("  -fps int            视频帧率 (default: 15)")
	fmt.Println("  -format string      视频格式 mp4 或 gif (default: mp4)")
	fmt.Println("  -ffmpeg string      ffmpeg 可执行文件路径 (default: ffmpeg)")
	fmt.Println("  -log-level string   日志级别 (default: info)")
	fmt.Println("  -log-dir string     日志文件目录")
	fmt.Println("  -rate-limit float   每个客户端每秒允许的生成请求数 (default: 1)")
	fmt.Println("  -rate-burst int     生成请求的突发上限 (default: 5)")
	fmt.Println("  -cors               是否启用 CORS (default: true)")
	fmt.Println("")
	fmt.Println("Environment Variables:")
	fmt.Println("  WEB_PORT            Web 服务的端口")
	fmt.Println("  STATIC_DIR          静态文件目录")
	fmt.Println("  OUTPUT_DIR          生成视频的保存目录")
	fmt.Println("  VIDEO_URL_PREFIX    生成视频的访问路径前缀")
	fmt.Println("  VIDEO_FPS           视频帧率")
	fmt.Println("  VIDEO_FORMAT        视频格式")
	fmt.Println("  FFMPEG_PATH         ffmpeg 可执行文件路径")
	fmt.Println("  LOG_LEVEL           日志级别")
	fmt.Println("  LOG_DIR             日志文件目录")
	fmt.Println("  RATE_LIMIT          每个客户端每秒允许的生成请求数")
	fmt.Println("  RATE_BURST          生成请求的突发上限")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  ./stickfight -port 8080")
	fmt.Println("  ./stickfight -format gif -fps 20")
	fmt.Println("  VIDEO_FORMAT=gif OUTPUT_DIR=/tmp/videos ./stickfight")
}

func main() {
	// 检查是否请求帮助
	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		return
	}

	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ 未找到 .env 文件，使用默认配置和环境变量")
	}

	// 解析配置
	cfg, err := cli.ParseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置解析失败: %v\n", err)
		os.Exit(1)
	}

	logger := pkglog.NewLogger(pkglog.Options{Level: cfg.LogLevel, Dir: cfg.LogDir})

	logger.Infof("🔧 服务配置：")
	logger.Infof("   - Web 端口: %s", cfg.WebPort)
	logger.Infof("   - 静态目录: %s", cfg.StaticDir)
	logger.Infof("   - 输出目录: %s (%s)", cfg.OutputDir, cfg.URLPrefix)
	logger.Infof("   - 视频格式: %s @ %d fps", cfg.Format, cfg.FPS)

	if err := config.PrepareOutputDir(cfg); err != nil {
		logger.Fatalf("❌ %v", err)
	}

	enc, err := encoder.Create(cfg.Format, encoder.Options{
		FFmpegPath: cfg.FFmpegPath,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatalf("❌ 创建视频编码器失败: %v", err)
	}

	gen := generator.New(pose.Default(), enc, cfg.OutputDir,
		generator.WithFPS(cfg.FPS),
		generator.WithURLPrefix(cfg.URLPrefix),
		generator.WithLogger(logger),
	)
	logger.Println("✅ 动画生成服务初始化完成")

	// 设置 Gin 模式
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	if cfg.EnableCORS {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{"*"}, // 允许的域，*表示允许所有
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type", "X-Request-ID"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	// 设置 API 路由
	api.NewServer(gen, cfg, logger).SetupRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.WebPort,
		Handler: r,
	}

	go func() {
		logger.Infof("🌐 火柴人打斗动画服务运行在 http://localhost:%s", cfg.WebPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("❌ 服务启动失败: %v", err)
		}
	}()

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Println("🛑 正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("❌ 服务关闭失败: %v", err)
	}

	generated, failed := gen.Stats()
	logger.Infof("📊 本次运行共生成 %d 个视频，失败 %d 次", generated, failed)
}
