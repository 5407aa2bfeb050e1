package app

import (
	"context"
	"errors"
	"os/signal"
	"time"

	"go.uber.org/zap"
)

// Service 可独立启停的服务（HTTP / Worker）
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 服务运行器
type Runner struct {
	services []Service
}

// NewRunner 创建服务运行器
func NewRunner(services ...Service) *Runner {
	return &Runner{services: services}
}

// ServiceNames 已注册服务名称
func (r *Runner) ServiceNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.services))
	for _, svc := range r.services {
		if svc != nil {
			names = append(names, svc.Name())
		}
	}
	return names
}

// RunWithOptions 运行服务并处理系统信号
func RunWithOptions(runner *Runner, opts Options) error {
	if runner == nil {
		return errors.New("runner is nil")
	}
	opts = normalizeOptions(opts)
	ctx := context.Background()
	if len(opts.Signals) > 0 {
		var cancel context.CancelFunc
		ctx, cancel = signal.NotifyContext(ctx, opts.Signals...)
		defer cancel()
	}
	return runner.Run(ctx, opts.ShutdownTimeout, opts.Logger)
}

// Run 启动全部服务，任一服务退出或 ctx 取消时停止所有服务
func (r *Runner) Run(ctx context.Context, stopTimeout time.Duration, log *zap.SugaredLogger) error {
	if r == nil || len(r.services) == 0 {
		return errors.New("no services to run")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		go func(service Service) {
			if service == nil {
				errCh <- errors.New("service is nil")
				return
			}
			if log != nil {
				log.Infow("service_start", "service", service.Name())
			}
			errCh <- service.Start(ctx)
			if log != nil {
				log.Infow("service_exit", "service", service.Name())
			}
		}(svc)
	}

	var runErr error
	select {
	case <-ctx.Done():
		runErr = ctx.Err()
	case err := <-errCh:
		runErr = err
	}
	cancel()

	r.stopAll(stopTimeout, log)
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

func (r *Runner) stopAll(stopTimeout time.Duration, log *zap.SugaredLogger) {
	if stopTimeout <= 0 {
		stopTimeout = 10 * time.Second
	}
	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	for _, svc := range r.services {
		if svc == nil {
			continue
		}
		if err := svc.Stop(stopCtx); err != nil && log != nil {
			log.Errorw("service_stop_failed", "service", svc.Name(), "error", err)
		}
	}
}
