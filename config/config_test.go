package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickfight/define"
)

func TestValidateDefaults(t *testing.T) {
	assert.NoError(t, Validate(define.DefaultConfig()))
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := map[string]func(*define.Config){
		"port":       func(c *define.Config) { c.WebPort = "http" },
		"fps":        func(c *define.Config) { c.FPS = 0 },
		"format":     func(c *define.Config) { c.Format = "avi" },
		"url prefix": func(c *define.Config) { c.URLPrefix = "static" },
		"log level":  func(c *define.Config) { c.LogLevel = "verbose" },
		"rate":       func(c *define.Config) { c.RateLimit = -1 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := define.DefaultConfig()
			mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestPrepareOutputDir(t *testing.T) {
	cfg := define.DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "static", "generated_videos")

	require.NoError(t, PrepareOutputDir(cfg))
	info, err := os.Stat(cfg.OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// 重复调用没有副作用
	assert.NoError(t, PrepareOutputDir(cfg))
}

func TestPrepareOutputDirOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	cfg := define.DefaultConfig()
	cfg.OutputDir = file
	assert.Error(t, PrepareOutputDir(cfg))
}
