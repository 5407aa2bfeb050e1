package public

import "github.com/rigforge/internal/provider"

// Handler 前台接口处理器入口
// 说明：该处理器用于商品浏览、购物车、订单、心愿单、评价与用户接口。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
