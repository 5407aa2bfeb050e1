package worker

import (
	"context"
	"fmt"

	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/provider"
	"github.com/rigforge/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusChanged, c.handleOrderStatusChanged)
	mux.HandleFunc(queue.TaskProductDeactivated, c.handleProductDeactivated)
}

func (c *Consumer) handleOrderStatusChanged(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_changed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderStatusChangedPayload(task.Payload())
	if err != nil {
		logger.Warnw("worker_order_status_changed_unmarshal_failed", "error", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if payload.OrderID == 0 || payload.ToStatus == "" {
		logger.Debugw("worker_order_status_changed_skip_invalid_payload", "order_id", payload.OrderID, "to_status", payload.ToStatus)
		return nil
	}
	if err := c.OrderService.RecordStatusChange(payload); err != nil {
		logger.Warnw("worker_order_status_changed_record_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	logger.Infow("worker_order_status_changed_recorded",
		"order_id", payload.OrderID,
		"from_status", payload.FromStatus,
		"to_status", payload.ToStatus,
	)
	return nil
}

func (c *Consumer) handleProductDeactivated(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_product_deactivated_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseProductDeactivatedPayload(task.Payload())
	if err != nil {
		logger.Warnw("worker_product_deactivated_unmarshal_failed", "error", err)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_product_deactivated_skip_invalid_payload")
		return nil
	}
	removed, err := c.ProductService.PurgeFromCarts(payload.ProductID)
	if err != nil {
		logger.Warnw("worker_product_deactivated_purge_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	logger.Infow("worker_product_deactivated_purged", "product_id", payload.ProductID, "removed", removed)
	return nil
}

// reportLowStock 记录当前低库存商品
func (c *Consumer) reportLowStock() {
	if c == nil || c.ProductService == nil {
		return
	}
	products, err := c.ProductService.ListLowStock()
	if err != nil {
		logger.Warnw("worker_low_stock_report_failed", "error", err)
		return
	}
	if len(products) == 0 {
		return
	}
	for _, product := range products {
		logger.Infow("worker_low_stock_product",
			"product_id", product.ID,
			"name", product.Name,
			"stock_quantity", product.StockQuantity,
			"low_stock_threshold", product.LowStockThreshold,
			"stock_status", product.StockStatus(),
		)
	}
	logger.Infow("worker_low_stock_report", "count", len(products))
}
