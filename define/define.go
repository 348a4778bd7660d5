package define

// 配置结构体
type Config struct {
	WebPort    string  `json:"web_port" validate:"required,numeric"`
	StaticDir  string  `json:"static_dir" validate:"required"`
	OutputDir  string  `json:"output_dir" validate:"required"`
	URLPrefix  string  `json:"url_prefix" validate:"required,startswith=/"`
	FPS        int     `json:"fps" validate:"min=1,max=120"`
	Format     string  `json:"format" validate:"required"`
	FFmpegPath string  `json:"ffmpeg_path"`
	LogLevel   string  `json:"log_level" validate:"oneof=debug info warn error"`
	LogDir     string  `json:"log_dir"`
	RateLimit  float64 `json:"rate_limit" validate:"gte=0"` // 每秒允许的生成请求数，0 表示不限制
	RateBurst  int     `json:"rate_burst" validate:"gte=0"`
	EnableCORS bool    `json:"enable_cors"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		WebPort:    "5000",
		StaticDir:  "./static",
		OutputDir:  "static/generated_videos",
		URLPrefix:  "/static/generated_videos",
		FPS:        15,
		Format:     "mp4",
		FFmpegPath: "ffmpeg",
		LogLevel:   "info",
		LogDir:     "",
		RateLimit:  1,
		RateBurst:  5,
		EnableCORS: true,
	}
}

// API 响应结构体
type ApiResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// GenerateResponse 生成动画的响应
type GenerateResponse struct {
	Success  bool   `json:"success"`
	VideoURL string `json:"video_url,omitempty"`
	Message  string `json:"message,omitempty"`
}
