package provider

import (
	"github.com/rigforge/internal/authz"
	"github.com/rigforge/internal/cache"
	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/queue"
	"github.com/rigforge/internal/repository"
	"github.com/rigforge/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config       *config.Config
	DB           *gorm.DB
	QueueClient  *queue.Client
	ProductCache *cache.ProductCache

	// Repositories
	UserRepo         repository.UserRepository
	ProductRepo      repository.ProductRepository
	ProductImageRepo repository.ProductImageRepository
	CartRepo         repository.CartRepository
	OrderRepo        repository.OrderRepository
	WishlistRepo     repository.WishlistRepository
	ReviewRepo       repository.ReviewRepository
	DashboardRepo    repository.DashboardRepository
	AuthzAuditRepo   repository.AuthzAuditLogRepository

	// Services
	AuthzService        *authz.Service
	UserService         *service.UserService
	ProductService      *service.ProductService
	ProductImageService *service.ProductImageService
	CartService         *service.CartService
	OrderService        *service.OrderService
	WishlistService     *service.WishlistService
	ReviewService       *service.ReviewService
	DashboardService    *service.DashboardService
	AuthzAuditService   *service.AuthzAuditService
}

// NewContainer 初始化容器，Redis 与队列未启用时对应组件降级为空操作
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:       cfg,
		DB:           db,
		QueueClient:  queueClient,
		ProductCache: cache.NewProductCache(cfg.Cache.ProductTTLSeconds),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	if err := c.initServices(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories() {
	db := c.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.ProductImageRepo = repository.NewProductImageRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
	c.AuthzAuditRepo = repository.NewAuthzAuditLogRepository(db)
}

func (c *Container) initServices() error {
	authzService, err := authz.NewService(c.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		return err
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		return err
	}

	c.UserService = service.NewUserService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CartRepo, c.ProductCache, c.QueueClient)
	c.ProductImageService = service.NewProductImageService(c.ProductImageRepo, c.ProductRepo, c.ProductCache)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.UserRepo, c.QueueClient, c.Config.Order.StrictStatusTransitions)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo, c.UserRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.OrderRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
	c.AuthzAuditService = service.NewAuthzAuditService(c.AuthzAuditRepo)
	return nil
}

// Close 释放队列与缓存连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("provider_close_queue_client_failed", "error", err)
		}
	}
	if err := cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
