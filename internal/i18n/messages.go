package i18n

var zhCNMessages = map[string]string{
	"success":                        "成功",
	"error.bad_request":              "请求参数错误",
	"error.internal":                 "服务器内部错误",
	"error.not_found":                "资源不存在",
	"error.forbidden":                "无权访问",
	"error.too_many_requests":        "请求过于频繁，请稍后再试",
	"error.rate_limited":             "请求过于频繁，请 %d 秒后再试",
	"error.rate_limit_unavailable":   "限流服务暂不可用",
	"error.user_id_invalid":          "用户 ID 无效",
	"error.id_invalid":               "ID 无效",
	"error.product_not_found":        "商品不存在",
	"error.product_not_available":    "商品已下架",
	"error.product_not_active":       "商品未上架",
	"error.product_category_invalid": "商品品类无效",
	"error.product_specs_invalid":    "商品参数无效",
	"error.product_price_invalid":    "商品价格必须大于 0",
	"error.product_stock_invalid":    "库存不能为负数",
	"error.insufficient_stock":       "库存不足",
	"error.quantity_invalid":         "数量必须大于 0",
	"error.user_not_found":           "用户不存在",
	"error.email_exists":             "邮箱已被注册",
	"error.password_min_length":      "密码长度不能少于 %d 位",
	"error.role_invalid":             "角色无效",
	"error.order_not_found":          "订单不存在",
	"error.order_status_invalid":     "订单状态无效或不允许变更",
	"error.order_amount_invalid":     "订单金额必须大于 0",
	"error.wishlist_duplicate":       "商品已在心愿单中",
	"error.wishlist_item_not_found":  "心愿单项不存在",
	"error.review_not_purchased":     "仅购买过该商品的用户可以评价",
	"error.review_duplicate":         "您已评价过该商品",
	"error.rating_invalid":           "评分必须在 1 到 5 之间",
	"error.database_unavailable":     "数据库不可用",
}

var enUSMessages = map[string]string{
	"success":                        "success",
	"error.bad_request":              "Invalid request parameters",
	"error.internal":                 "Internal server error",
	"error.not_found":                "Resource not found",
	"error.forbidden":                "Access denied",
	"error.too_many_requests":        "Too many requests, please try again later",
	"error.rate_limited":             "Too many requests, please retry in %d seconds",
	"error.rate_limit_unavailable":   "Rate limiter unavailable",
	"error.user_id_invalid":          "Invalid user id",
	"error.id_invalid":               "Invalid id",
	"error.product_not_found":        "Product not found",
	"error.product_not_available":    "Product is not available",
	"error.product_not_active":       "Product is not active",
	"error.product_category_invalid": "Invalid product category",
	"error.product_specs_invalid":    "Invalid product specs",
	"error.product_price_invalid":    "Price must be greater than zero",
	"error.product_stock_invalid":    "Stock must not be negative",
	"error.insufficient_stock":       "Insufficient stock",
	"error.quantity_invalid":         "Quantity must be positive",
	"error.user_not_found":           "User not found",
	"error.email_exists":             "Email is already registered",
	"error.password_min_length":      "Password must be at least %d characters",
	"error.role_invalid":             "Invalid role",
	"error.order_not_found":          "Order not found",
	"error.order_status_invalid":     "Invalid order status or transition",
	"error.order_amount_invalid":     "Order amount must be greater than zero",
	"error.wishlist_duplicate":       "Product is already in the wishlist",
	"error.wishlist_item_not_found":  "Wishlist item not found",
	"error.review_not_purchased":     "Only customers who purchased this product can review it",
	"error.review_duplicate":         "You have already reviewed this product",
	"error.rating_invalid":           "Rating must be between 1 and 5",
	"error.database_unavailable":     "Database unavailable",
}
