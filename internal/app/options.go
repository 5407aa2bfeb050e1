package app

import (
	"os"
	"strings"
	"time"

	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 启动模式
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

// Options 应用启动选项
type Options struct {
	Config          *config.Config
	DB              *gorm.DB
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// IsValidMode 判断启动模式是否合法
func IsValidMode(mode string) bool {
	switch mode {
	case ModeAll, ModeAPI, ModeWorker:
		return true
	default:
		return false
	}
}

// normalizeOptions 补齐默认参数
func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	opts.Mode = strings.ToLower(strings.TrimSpace(opts.Mode))
	if opts.Mode == "" {
		opts.Mode = ModeAll
	}
	return opts
}
