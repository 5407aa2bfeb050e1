package repository

import "github.com/shopspring/decimal"

// ProductListFilter 查询商品列表的过滤条件，品类参数过滤会同时限定品类
type ProductListFilter struct {
	Category              string
	Brand                 string
	MinPrice              *decimal.Decimal
	MaxPrice              *decimal.Decimal
	GPUChipset            string
	CPUSocket             string
	RAMCapacity           *int
	RAMType               string
	SSDInterface          string
	MotherboardFormFactor string
	InStockOnly           bool
	ActiveOnly            bool
	Search                string
}

// DashboardOverview 管理端概览统计
type DashboardOverview struct {
	TotalProducts      int64            `json:"total_products"`
	ActiveProducts     int64            `json:"active_products"`
	LowStockProducts   int64            `json:"low_stock_products"`
	OutOfStockProducts int64            `json:"out_of_stock_products"`
	TotalUsers         int64            `json:"total_users"`
	TotalOrders        int64            `json:"total_orders"`
	OrdersByStatus     map[string]int64 `json:"orders_by_status"`
	Revenue            decimal.Decimal  `json:"-"`
}
