package encoder

import (
	"fmt"
	"sort"
)

// Constructor 编码器构造函数
type Constructor func(opts Options) (Encoder, error)

// Factory 编码器工厂
type Factory struct {
	constructors map[string]Constructor
}

var defaultFactory = &Factory{
	constructors: make(map[string]Constructor),
}

func init() {
	Register(FormatMP4, NewFFmpegEncoder)
	Register(FormatGIF, NewGIFEncoder)
}

// Register 注册输出格式
func Register(format string, constructor Constructor) {
	defaultFactory.constructors[format] = constructor
}

// Create 创建指定格式的编码器
func Create(format string, opts Options) (Encoder, error) {
	constructor, ok := defaultFactory.constructors[format]
	if !ok {
		return nil, fmt.Errorf("未知的视频格式: %s", format)
	}
	return constructor(opts)
}

// SupportedFormats 获取支持的输出格式列表
func SupportedFormats() []string {
	formats := make([]string, 0, len(defaultFactory.constructors))
	for format := range defaultFactory.constructors {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}
