package service

import (
	"strings"

	"github.com/rigforge/internal/constants"

	"github.com/samber/lo"
)

// orderStatusTransitions 严格模式下允许的状态流转
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPending:    {constants.OrderStatusProcessing, constants.OrderStatusCancelled},
	constants.OrderStatusProcessing: {constants.OrderStatusShipped, constants.OrderStatusCancelled},
	constants.OrderStatusShipped:    {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered:  {},
	constants.OrderStatusCancelled:  {},
}

// normalizeOrderStatus 统一状态格式
func normalizeOrderStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

// isValidOrderStatus 状态是否在枚举内
func isValidOrderStatus(status string) bool {
	return lo.Contains(constants.OrderStatuses, status)
}

// canTransitionOrderStatus 严格模式下判断是否允许流转，同状态视为允许
func canTransitionOrderStatus(from, to string) bool {
	if from == to {
		return true
	}
	return lo.Contains(orderStatusTransitions[from], to)
}
