package models

import (
	"time"
)

// OrderItem 订单项
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                             // 主键
	OrderID     uint      `gorm:"index;not null" json:"order_id"`                   // 订单ID
	ProductID   uint      `gorm:"index;not null" json:"product_id"`                 // 商品ID
	Quantity    int       `gorm:"not null" json:"quantity"`                         // 数量
	PriceAtTime Money     `gorm:"type:decimal(10,2);not null" json:"price_at_time"` // 下单时单价快照
	CreatedAt   time.Time `json:"created_at"`                                       // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
