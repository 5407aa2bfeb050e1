package models

import "time"

// Review 商品评价，同一用户同一商品仅一条
type Review struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                 // 主键
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_user_product" json:"user_id"`          // 用户ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_review_user_product;index" json:"product_id"` // 商品ID
	Rating    int       `gorm:"not null" json:"rating"`                                               // 评分 1-5
	Comment   *string   `gorm:"type:text" json:"comment"`                                             // 评论内容
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                           // 更新时间
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
