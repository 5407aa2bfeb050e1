package app

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/provider"
	"github.com/rigforge/internal/router"
	"github.com/rigforge/internal/worker"

	"gorm.io/gorm"
)

// OpenDatabase 初始化全局数据库连接并迁移表结构
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if err := ensureSQLiteDir(cfg.Database); err != nil {
		return nil, err
	}
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return models.DB, nil
}

// ensureSQLiteDir 为文件型 SQLite 创建所在目录
func ensureSQLiteDir(cfg config.DatabaseConfig) error {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	dsn := strings.TrimSpace(cfg.DSN)
	if (driver != "" && driver != "sqlite") || dsn == "" || strings.HasPrefix(dsn, "file:") || dsn == ":memory:" {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create sqlite dir: %w", err)
	}
	return nil
}

// SeedInitialData 写入演示数据（按需）并确保存在管理员账号
// 演示数据先于默认管理员写入，保证演示用户 ID 固定
func SeedInitialData(cfg *config.Config, db *gorm.DB, forceDemo bool) error {
	if cfg == nil || db == nil {
		return errors.New("config or database is nil")
	}
	if forceDemo || cfg.Catalog.SeedDemo {
		created, err := models.SeedDemoData(db)
		if err != nil {
			return err
		}
		logger.Infow("app_demo_data_ready", "products_created", created)
	}

	if cfg.Server.Mode == "release" && cfg.Bootstrap.AdminPassword == "" {
		logger.Warnw("app_default_admin_skipped", "reason", "bootstrap.admin_password is empty in release mode")
		return nil
	}
	if err := models.InitDefaultAdmin(db, cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword); err != nil {
		logger.Warnw("app_default_admin_failed", "error", err)
	}
	return nil
}

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, container *provider.Container, mode string) (*Runner, error) {
	if cfg == nil || container == nil {
		return nil, errors.New("config or container is nil")
	}
	if !IsValidMode(mode) {
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(net.JoinHostPort(cfg.Server.Host, cfg.Server.Port), engine))
	}

	// 初始化 Worker 服务，all 模式下队列未启用时仅启动 HTTP
	if mode == ModeWorker || (mode == ModeAll && cfg.Queue.Enabled) {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	} else if mode == ModeAll {
		logger.Infow("app_worker_skipped", "reason", "queue disabled")
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}
	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}
	if opts.DB == nil {
		return errors.New("database is nil")
	}

	container, err := provider.NewContainer(opts.Config, opts.DB)
	if err != nil {
		return err
	}
	defer container.Close()

	runner, err := BuildRunner(opts.Config, container, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "addr", opts.Config.Server.Addr(), "mode", opts.Mode)
	return RunWithOptions(runner, opts)
}
