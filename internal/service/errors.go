package service

import "errors"

var (
	// ErrInvalidInput 参数不合法
	ErrInvalidInput = errors.New("invalid input")
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductNotAvailable 商品已下架，不可加入购物车
	ErrProductNotAvailable = errors.New("product not available")
	// ErrProductNotActive 商品未上架
	ErrProductNotActive = errors.New("product is not active")
	// ErrInvalidCategory 品类不在枚举内
	ErrInvalidCategory = errors.New("invalid product category")
	// ErrInvalidSpecs 品类参数不合法
	ErrInvalidSpecs = errors.New("invalid product specs")
	// ErrInvalidPrice 价格必须大于 0
	ErrInvalidPrice = errors.New("price must be greater than zero")
	// ErrInvalidStock 库存不能为负数
	ErrInvalidStock = errors.New("stock must not be negative")
	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity 数量必须大于 0
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists 邮箱已注册
	ErrEmailExists = errors.New("email already exists")
	// ErrPasswordTooShort 密码长度不足
	ErrPasswordTooShort = errors.New("password too short")
	// ErrInvalidRole 角色不合法
	ErrInvalidRole = errors.New("invalid role")
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderStatusInvalid 订单状态不合法或不允许流转
	ErrOrderStatusInvalid = errors.New("invalid order status")
	// ErrInvalidOrderAmount 订单金额必须大于 0
	ErrInvalidOrderAmount = errors.New("order amount must be positive")
	// ErrWishlistDuplicate 商品已在心愿单中
	ErrWishlistDuplicate = errors.New("product already in wishlist")
	// ErrWishlistItemNotFound 心愿单项不存在
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrReviewNotPurchased 未购买不可评价
	ErrReviewNotPurchased = errors.New("review requires a purchase")
	// ErrReviewDuplicate 已评价过该商品
	ErrReviewDuplicate = errors.New("review already exists")
	// ErrInvalidRating 评分必须在 1-5 之间
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
