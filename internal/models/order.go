package models

import (
	"time"
)

// Order 订单表
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`                            // 主键
	UserID          uint      `gorm:"index;not null" json:"user_id"`                   // 用户ID
	Status          string    `gorm:"type:varchar(20);index;not null" json:"status"`   // 订单状态
	TotalAmount     Money     `gorm:"type:decimal(10,2);not null" json:"total_amount"` // 订单金额（由调用方给出）
	ShippingAddress string    `gorm:"type:text;not null" json:"shipping_address"`      // 收货地址
	BillingAddress  string    `gorm:"type:text;not null" json:"billing_address"`       // 账单地址
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt       time.Time `json:"updated_at"`                                      // 更新时间

	Items         []OrderItem      `gorm:"foreignKey:OrderID" json:"items,omitempty"`          // 订单项
	StatusHistory []OrderStatusLog `gorm:"foreignKey:OrderID" json:"status_history,omitempty"` // 状态变更记录
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderStatusLog 订单状态变更记录
type OrderStatusLog struct {
	ID         uint      `gorm:"primarykey" json:"id"`                         // 主键
	OrderID    uint      `gorm:"index;not null" json:"order_id"`               // 订单ID
	FromStatus string    `gorm:"type:varchar(20);not null" json:"from_status"` // 原状态
	ToStatus   string    `gorm:"type:varchar(20);not null" json:"to_status"`   // 新状态
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                      // 变更时间
}

// TableName 指定表名
func (OrderStatusLog) TableName() string {
	return "order_status_logs"
}
