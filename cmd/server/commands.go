package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/rigforge/internal/app"
	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	ansiReset = "\033[0m"
	ansiBold  = "\033[1m"
	ansiCyan  = "\033[36m"
)

func newRootCommand() *cobra.Command {
	var mode string

	root := &cobra.Command{
		Use:           "rigforge",
		Short:         "RigForge PC parts shop API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(mode)
		},
	}
	root.Flags().StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 与异步任务服务",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(mode)
		},
	}
	serve.Flags().StringVar(&mode, "mode", app.ModeAll, "启动模式: all (默认), api, worker")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "仅执行数据库迁移",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			if _, err := app.OpenDatabase(cfg); err != nil {
				return err
			}
			logger.Infow("migrate_done", "driver", cfg.Database.Driver)
			return nil
		},
	}

	seed := &cobra.Command{
		Use:   "seed",
		Short: "写入演示商品与演示用户",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := loadConfig()
			db, err := app.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			return app.SeedInitialData(cfg, db, true)
		},
	}

	root.AddCommand(serve, migrate, seed)
	return root
}

func loadConfig() *config.Config {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	return cfg
}

func runServe(mode string) error {
	printStartupBanner()
	if !app.IsValidMode(mode) {
		return fmt.Errorf("unknown mode %q, expected all, api or worker", mode)
	}

	cfg := loadConfig()
	db, err := app.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	if err := app.SeedInitialData(cfg, db, false); err != nil {
		return err
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	defer logger.Sync()
	defer closeDatabase()

	return app.Run(app.Options{
		Config:  cfg,
		DB:      db,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	})
}

func closeDatabase() {
	if models.DB == nil {
		return
	}
	if sqlDB, err := models.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func printStartupBanner() {
	fmt.Println(ansiCyan + "██████╗ ██╗ ██████╗ ███████╗ ██████╗ ██████╗  ██████╗ ███████╗" + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║██╔════╝ ██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝" + ansiReset)
	fmt.Println(ansiCyan + "██████╔╝██║██║  ███╗█████╗  ██║   ██║██████╔╝██║  ███╗█████╗  " + ansiReset)
	fmt.Println(ansiCyan + "██╔══██╗██║██║   ██║██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝  " + ansiReset)
	fmt.Println(ansiCyan + "██║  ██║██║╚██████╔╝██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗" + ansiReset)
	fmt.Println(ansiCyan + "╚═╝  ╚═╝╚═╝ ╚═════╝ ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝" + ansiReset)
	fmt.Println(ansiBold + "PC parts shop API" + ansiReset)
}
