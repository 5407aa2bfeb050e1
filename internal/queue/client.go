package queue

import (
	"fmt"
	"strings"

	"github.com/rigforge/internal/config"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = "default"
	// CriticalQueue 高优先级队列
	CriticalQueue = "critical"
)

// Client 队列客户端封装，未启用时 Enqueue 为空操作
type Client struct {
	client  *asynq.Client
	enabled bool
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false}, nil
	}
	return &Client{
		client:  asynq.NewClient(buildRedisOpt(cfg)),
		enabled: true,
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueOrderStatusChanged 推送订单状态变更记录任务
func (c *Client) EnqueueOrderStatusChanged(payload OrderStatusChangedPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewOrderStatusChangedTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, CriticalQueue, opts...)
}

// EnqueueProductDeactivated 推送商品下架清理任务
func (c *Client) EnqueueProductDeactivated(payload ProductDeactivatedPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewProductDeactivatedTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(task, DefaultQueue, opts...)
}

func (c *Client) enqueue(task *asynq.Task, queueName string, opts ...asynq.Option) error {
	options := append([]asynq.Option{asynq.Queue(queueName)}, opts...)
	_, err := c.client.Enqueue(task, options...)
	return err
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	concurrency := 5
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	queues := map[string]int{CriticalQueue: 2, DefaultQueue: 1}
	if cfg != nil && len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return buildRedisOpt(cfg), asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host := "127.0.0.1"
	port := 6379
	password := ""
	db := 0
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			host = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		password = cfg.Password
		db = cfg.DB
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	}
}
