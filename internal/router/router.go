package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rigforge/internal/authz"
	"github.com/rigforge/internal/cache"
	"github.com/rigforge/internal/config"
	adminhandlers "github.com/rigforge/internal/http/handlers/admin"
	publichandlers "github.com/rigforge/internal/http/handlers/public"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/i18n"
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "rf"
	}
	createUserRule := NewRateLimitRule(fmt.Sprintf("%s:rate:create_user", redisPrefix), cfg.Security.CreateUserLimit)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, response.CodeNotFound, i18n.T(i18n.ResolveLocale(ctx), "error.not_found"))
	})

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", publicHandler.Health)

		// 商品浏览
		apiV1.GET("/products", publicHandler.GetProducts)
		apiV1.GET("/products/:id", publicHandler.GetProduct)
		apiV1.GET("/products/:id/images", publicHandler.GetProductImages)
		apiV1.GET("/products/:id/reviews", publicHandler.GetProductReviews)

		// 用户
		apiV1.POST("/users", RateLimitMiddleware(cache.Client(), createUserRule, KeyByIP), publicHandler.CreateUser)
		apiV1.GET("/users/:user_id", publicHandler.GetUser)
		apiV1.GET("/users/:user_id/cart", publicHandler.GetUserCart)
		apiV1.DELETE("/users/:user_id/cart", publicHandler.ClearUserCart)
		apiV1.GET("/users/:user_id/orders", publicHandler.GetUserOrders)
		apiV1.GET("/users/:user_id/wishlist", publicHandler.GetUserWishlist)
		apiV1.GET("/users/:user_id/reviews", publicHandler.GetUserReviews)

		// 购物车
		apiV1.POST("/cart/items", publicHandler.AddCartItem)
		apiV1.PUT("/cart/items/:id", publicHandler.UpdateCartItem)
		apiV1.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)

		// 订单
		apiV1.POST("/orders", publicHandler.CreateOrder)
		apiV1.GET("/orders/:id", publicHandler.GetOrder)
		apiV1.POST("/orders/:id/items", publicHandler.CreateOrderItem)

		// 心愿单
		apiV1.POST("/wishlist/items", publicHandler.AddWishlistItem)
		apiV1.DELETE("/wishlist/items/:id", publicHandler.RemoveWishlistItem)

		// 评价
		apiV1.POST("/reviews", publicHandler.CreateReview)
		apiV1.PUT("/reviews/:id", publicHandler.UpdateReview)
		apiV1.DELETE("/reviews/:id", publicHandler.DeleteReview)

		// 管理端
		admin := apiV1.Group("/admin")
		if cfg.Security.EnforceAdminRole {
			admin.Use(AdminRoleMiddleware(c.AuthzService, c.UserService))
		}
		{
			// 商品管理
			admin.GET("/products/low-stock", adminHandler.GetLowStockProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PATCH("/products/:id", adminHandler.UpdateProduct)
			admin.PUT("/products/:id/stock", adminHandler.UpdateProductStock)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)
			admin.POST("/products/:id/images", adminHandler.AddProductImage)
			admin.DELETE("/product-images/:id", adminHandler.DeleteProductImage)

			// 订单管理
			admin.GET("/orders", adminHandler.GetOrders)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

			// 仪表盘
			admin.GET("/dashboard/overview", adminHandler.GetDashboardOverview)

			// 权限
			admin.GET("/authz/roles", adminHandler.GetAuthzRoles)
			admin.POST("/authz/policies", adminHandler.GrantRolePolicy)
			admin.DELETE("/authz/policies", adminHandler.RevokeRolePolicy)
			admin.GET("/authz/audit-logs", adminHandler.GetAuthzAuditLogs)
			admin.GET("/authz/permissions", func(ctx *gin.Context) {
				response.Success(ctx, buildAdminPermissionCatalog(r))
			})
		}
	}

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

// buildAdminPermissionCatalog 从已注册路由生成管理端权限目录
func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	segments := strings.Split(strings.TrimPrefix(strings.TrimSpace(object), "/"), "/")
	if len(segments) <= 1 || segments[0] != "admin" {
		return segments[0]
	}
	switch segments[1] {
	case "product-images":
		return "products"
	default:
		return segments[1]
	}
}
