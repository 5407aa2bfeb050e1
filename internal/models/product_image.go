package models

import "time"

// ProductImage 商品图片表
type ProductImage struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                                    // 主键
	ProductID    uint      `gorm:"not null;index:idx_product_images_order,priority:1" json:"product_id"`    // 商品ID
	ImageURL     string    `gorm:"type:varchar(1024);not null" json:"image_url"`                            // 图片地址
	AltText      *string   `gorm:"type:varchar(255)" json:"alt_text"`                                       // 替代文本
	DisplayOrder int       `gorm:"not null;index:idx_product_images_order,priority:2" json:"display_order"` // 展示顺序（不唯一）
	CreatedAt    time.Time `json:"created_at"`                                                              // 创建时间
}

// TableName 指定表名
func (ProductImage) TableName() string {
	return "product_images"
}
