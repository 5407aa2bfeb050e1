package models

import (
	"encoding/json"
	"time"

	"github.com/rigforge/internal/constants"
)

// Product 商品表
type Product struct {
	ID                uint           `gorm:"primarykey" json:"id"`                            // 主键
	Name              string         `gorm:"type:varchar(255);not null" json:"name"`          // 名称
	Brand             string         `gorm:"type:varchar(100);not null;index" json:"brand"`   // 品牌
	Category          string         `gorm:"type:varchar(20);not null;index" json:"category"` // 品类 gpu/cpu/motherboard/ram/ssd
	Description       *string        `gorm:"type:text" json:"description"`                    // 描述
	Price             Money          `gorm:"type:decimal(10,2);not null" json:"price"`        // 售价
	StockQuantity     int            `gorm:"not null" json:"stock_quantity"`                  // 库存
	LowStockThreshold int            `gorm:"not null" json:"low_stock_threshold"`             // 低库存阈值
	IsActive          bool           `gorm:"not null;index" json:"is_active"`                 // 是否上架（软删除置 false）
	Specs             ProductSpecs   `gorm:"column:specs_json" json:"specs"`                  // 品类参数
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt         time.Time      `json:"updated_at"`                                      // 更新时间
	Images            []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`    // 商品图片
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// StockStatus 库存状态
func (p Product) StockStatus() string {
	switch {
	case p.StockQuantity <= 0:
		return constants.StockStatusOutOfStock
	case p.StockQuantity <= p.LowStockThreshold:
		return constants.StockStatusLow
	default:
		return constants.StockStatusInStock
	}
}

// productJSON 避免 MarshalJSON 递归
type productJSON Product

// MarshalJSON 附带 stock_status 字段
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		productJSON
		StockStatus string `json:"stock_status"`
	}{
		productJSON: productJSON(p),
		StockStatus: p.StockStatus(),
	})
}

// UnmarshalJSON 先读取品类再按品类解析参数（缓存回读使用）
func (p *Product) UnmarshalJSON(b []byte) error {
	var aux struct {
		productJSON
		Specs json.RawMessage `json:"specs"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*p = Product(aux.productJSON)
	if aux.Category == "" {
		return nil
	}
	specs, err := DecodeSpecs(aux.Category, aux.Specs)
	if err != nil {
		return err
	}
	p.Specs = ProductSpecs{Specs: specs}
	return nil
}
