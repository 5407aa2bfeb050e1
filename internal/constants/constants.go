package constants

// 商品品类常量
const (
	CategoryGPU         = "gpu"
	CategoryCPU         = "cpu"
	CategoryMotherboard = "motherboard"
	CategoryRAM         = "ram"
	CategorySSD         = "ssd"
)

// ProductCategories 全部商品品类
var ProductCategories = []string{
	CategoryGPU,
	CategoryCPU,
	CategoryMotherboard,
	CategoryRAM,
	CategorySSD,
}

// 内存类型与硬盘接口常量
const (
	RAMTypeDDR4      = "DDR4"
	RAMTypeDDR5      = "DDR5"
	SSDInterfaceSATA = "SATA"
	SSDInterfaceNVMe = "NVMe"
)

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses 全部订单状态
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 用户角色常量
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// 库存状态常量
const (
	StockStatusOutOfStock = "out_of_stock"
	StockStatusLow        = "low_stock"
	StockStatusInStock    = "in_stock"
)

// DefaultLowStockThreshold 默认低库存阈值
const DefaultLowStockThreshold = 10

// 请求头
const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
)
