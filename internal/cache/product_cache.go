package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"
)

// ProductCache 商品详情缓存
type ProductCache struct {
	ttl time.Duration
}

// NewProductCache 创建商品详情缓存，ttl 非正数时使用 5 分钟
func NewProductCache(ttlSeconds int) *ProductCache {
	ttl := time.Duration(ttlSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ProductCache{ttl: ttl}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Get 读取商品缓存，未命中或出错时返回 nil
func (c *ProductCache) Get(ctx context.Context, id uint) *models.Product {
	if c == nil {
		return nil
	}
	var product models.Product
	hit, err := GetJSON(ctx, productKey(id), &product)
	if err != nil {
		logger.Warnw("product_cache_get_failed", "product_id", id, "error", err)
		return nil
	}
	if !hit {
		return nil
	}
	return &product
}

// Set 写入商品缓存
func (c *ProductCache) Set(ctx context.Context, product *models.Product) {
	if c == nil || product == nil {
		return
	}
	if err := SetJSON(ctx, productKey(product.ID), product, c.ttl); err != nil {
		logger.Warnw("product_cache_set_failed", "product_id", product.ID, "error", err)
	}
}

// Invalidate 删除商品缓存
func (c *ProductCache) Invalidate(ctx context.Context, id uint) {
	if c == nil {
		return
	}
	if err := Del(ctx, productKey(id)); err != nil {
		logger.Warnw("product_cache_invalidate_failed", "product_id", id, "error", err)
	}
}
