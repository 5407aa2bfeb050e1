//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/models"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupPostgresIntegrationDB 使用 TEST_POSTGRES_DSN，未设置时启动临时容器。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		ctx := context.Background()
		container, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("rigforge"),
			postgres.WithUsername("rigforge"),
			postgres.WithPassword("rigforge"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		if err != nil {
			t.Skipf("skip postgres integration test: container unavailable: %v", err)
		}
		t.Cleanup(func() {
			_ = container.Terminate(ctx)
		})
		dsn, err = container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := models.OpenDB("postgres", dsn, models.DBPoolConfig{MaxOpenConns: 4}, gormlogger.Silent)
	require.NoError(t, err)
	_ = db.Migrator().DropTable(models.AllModels()...)
	require.NoError(t, models.MigrateDB(db))

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(models.AllModels()...)
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresSpecFiltersAndCartUpsert(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	products := NewProductRepository(db)
	carts := NewCartRepository(db)

	user := seedUser(t, db, "pg@example.com")
	ram := seedProduct(t, db, "DDR5 kit", constants.CategoryRAM, 129.99, 10, 3, &models.RAMSpecs{CapacityGB: lo.ToPtr(32), Type: lo.ToPtr(constants.RAMTypeDDR5)})
	seedProduct(t, db, "Zen CPU", constants.CategoryCPU, 299.99, 4, 3, &models.CPUSpecs{Socket: lo.ToPtr("AM5"), BaseClockGHz: lo.ToPtr(models.NewFixed2(3.4))})

	list, err := products.List(ProductListFilter{RAMCapacity: lo.ToPtr(32)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, ram.ID, list[0].ID)

	list, err = products.List(ProductListFilter{CPUSocket: "AM5", Search: "zen"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	cpu, ok := list[0].Specs.Specs.(*models.CPUSpecs)
	require.True(t, ok)
	require.Equal(t, 3.4, cpu.BaseClockGHz.InexactFloat64())

	affected, err := carts.AddQuantity(user.ID, ram.ID, 8)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)
	affected, err = carts.AddQuantity(user.ID, ram.ID, 5)
	require.NoError(t, err)
	require.Zero(t, affected)
	affected, err = carts.AddQuantity(user.ID, ram.ID, 2)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	item, err := carts.GetByUserAndProduct(user.ID, ram.ID)
	require.NoError(t, err)
	require.Equal(t, 10, item.Quantity)
}

func TestPostgresConcurrentCartAdds(t *testing.T) {
	assertConcurrentCartAdds(t, setupPostgresIntegrationDB(t))
}
