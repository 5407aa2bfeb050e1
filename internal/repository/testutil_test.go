package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, models.MigrateDB(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", FirstName: "Test", LastName: "User", Role: constants.RoleCustomer}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, price float64, stock, threshold int, specs models.Specs) *models.Product {
	t.Helper()
	if specs == nil {
		var err error
		specs, err = models.NewSpecs(category)
		require.NoError(t, err)
	}
	product := &models.Product{
		Name:              name,
		Brand:             "Brand " + name,
		Category:          category,
		Price:             models.NewMoneyFromFloat(price),
		StockQuantity:     stock,
		LowStockThreshold: threshold,
		IsActive:          true,
		Specs:             models.ProductSpecs{Specs: specs},
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedPurchase(t *testing.T, db *gorm.DB, userID, productID uint) *models.OrderItem {
	t.Helper()
	order := &models.Order{
		UserID:          userID,
		Status:          constants.OrderStatusPending,
		TotalAmount:     models.NewMoneyFromFloat(10),
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
	}
	require.NoError(t, db.Create(order).Error)
	item := &models.OrderItem{OrderID: order.ID, ProductID: productID, Quantity: 1, PriceAtTime: models.NewMoneyFromFloat(10)}
	require.NoError(t, db.Create(item).Error)
	return item
}
