package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusChanged 订单状态变更记录任务
	TaskOrderStatusChanged = "order:status_changed"
	// TaskProductDeactivated 商品下架后清理购物车任务
	TaskProductDeactivated = "product:deactivated"
)

// OrderStatusChangedPayload 订单状态变更任务载荷
type OrderStatusChangedPayload struct {
	OrderID    uint   `json:"order_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

// ProductDeactivatedPayload 商品下架任务载荷
type ProductDeactivatedPayload struct {
	ProductID uint `json:"product_id"`
}

// NewOrderStatusChangedTask 创建订单状态变更任务
func NewOrderStatusChangedTask(payload OrderStatusChangedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusChanged, body, asynq.MaxRetry(5)), nil
}

// NewProductDeactivatedTask 创建商品下架任务
func NewProductDeactivatedTask(payload ProductDeactivatedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProductDeactivated, body, asynq.MaxRetry(3)), nil
}

// ParseOrderStatusChangedPayload 解析订单状态变更载荷
func ParseOrderStatusChangedPayload(body []byte) (OrderStatusChangedPayload, error) {
	var payload OrderStatusChangedPayload
	err := json.Unmarshal(body, &payload)
	return payload, err
}

// ParseProductDeactivatedPayload 解析商品下架载荷
func ParseProductDeactivatedPayload(body []byte) (ProductDeactivatedPayload, error) {
	var payload ProductDeactivatedPayload
	err := json.Unmarshal(body, &payload)
	return payload, err
}
