package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rigforge/internal/cache"
	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/queue"
	"github.com/rigforge/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testServices struct {
	db        *gorm.DB
	products  *ProductService
	images    *ProductImageService
	carts     *CartService
	orders    *OrderService
	wishlist  *WishlistService
	reviews   *ReviewService
	users     *UserService
	dashboard *DashboardService
}

func newTestServices(t *testing.T, strictTransitions bool) *testServices {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, models.MigrateDB(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	queueClient, err := queue.NewClient(nil)
	require.NoError(t, err)
	productCache := cache.NewProductCache(60)

	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &testServices{
		db:        db,
		products:  NewProductService(productRepo, cartRepo, productCache, queueClient),
		images:    NewProductImageService(repository.NewProductImageRepository(db), productRepo, productCache),
		carts:     NewCartService(cartRepo, productRepo),
		orders:    NewOrderService(orderRepo, productRepo, userRepo, queueClient, strictTransitions),
		wishlist:  NewWishlistService(repository.NewWishlistRepository(db), productRepo, userRepo),
		reviews:   NewReviewService(repository.NewReviewRepository(db), orderRepo),
		users:     NewUserService(userRepo),
		dashboard: NewDashboardService(repository.NewDashboardRepository(db)),
	}
}

func (s *testServices) seedUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", FirstName: "Test", LastName: "User", Role: constants.RoleCustomer}
	require.NoError(t, s.db.Create(user).Error)
	return user
}

func (s *testServices) seedProduct(t *testing.T, category string, price float64, stock int) *models.Product {
	t.Helper()
	specs, err := models.NewSpecs(category)
	require.NoError(t, err)
	product := &models.Product{
		Name:              "Part " + category,
		Brand:             "Acme",
		Category:          category,
		Price:             models.NewMoneyFromFloat(price),
		StockQuantity:     stock,
		LowStockThreshold: 5,
		IsActive:          true,
		Specs:             models.ProductSpecs{Specs: specs},
	}
	require.NoError(t, s.db.Create(product).Error)
	return product
}

func (s *testServices) seedOrderWith(t *testing.T, userID, productID uint, status string, total float64) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:          userID,
		Status:          status,
		TotalAmount:     models.NewMoneyFromFloat(total),
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
	}
	require.NoError(t, s.db.Create(order).Error)
	if productID != 0 {
		item := &models.OrderItem{OrderID: order.ID, ProductID: productID, Quantity: 1, PriceAtTime: models.NewMoneyFromFloat(total)}
		require.NoError(t, s.db.Create(item).Error)
	}
	return order
}
