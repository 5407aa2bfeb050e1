package repository

import (
	"testing"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"
)

func TestGetOverviewCountsAndRevenue(t *testing.T) {
	db := openTestDB(t)
	repo := NewDashboardRepository(db)
	user := seedUser(t, db, "dash@example.com")

	seedProduct(t, db, "empty", constants.CategoryGPU, 10, 0, 5, nil)
	seedProduct(t, db, "low", constants.CategoryGPU, 10, 3, 5, nil)
	healthy := seedProduct(t, db, "healthy", constants.CategoryGPU, 10, 50, 5, nil)
	if err := db.Model(healthy).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	orders := []models.Order{
		{UserID: user.ID, Status: constants.OrderStatusPending, TotalAmount: models.NewMoneyFromFloat(100.10)},
		{UserID: user.ID, Status: constants.OrderStatusDelivered, TotalAmount: models.NewMoneyFromFloat(50.25)},
		{UserID: user.ID, Status: constants.OrderStatusCancelled, TotalAmount: models.NewMoneyFromFloat(999)},
	}
	if err := db.Create(&orders).Error; err != nil {
		t.Fatalf("create orders failed: %v", err)
	}

	overview, err := repo.GetOverview()
	if err != nil {
		t.Fatalf("get overview failed: %v", err)
	}
	if overview.TotalProducts != 3 || overview.ActiveProducts != 2 {
		t.Fatalf("product counts want 3/2 got %d/%d", overview.TotalProducts, overview.ActiveProducts)
	}
	if overview.LowStockProducts != 2 || overview.OutOfStockProducts != 1 {
		t.Fatalf("stock counts want 2/1 got %d/%d", overview.LowStockProducts, overview.OutOfStockProducts)
	}
	if overview.TotalOrders != 3 || overview.OrdersByStatus[constants.OrderStatusCancelled] != 1 {
		t.Fatalf("unexpected order counts: %+v", overview)
	}
	if got := overview.Revenue.StringFixed(2); got != "150.35" {
		t.Fatalf("revenue want 150.35 got %s", got)
	}
}
