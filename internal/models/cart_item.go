package models

import (
	"time"
)

// CartItem 购物车项，同一用户同一商品仅一行
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                         // 主键
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`    // 用户ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"` // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                     // 数量
	CreatedAt time.Time `json:"created_at"`                                                   // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                   // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
