package repository

import (
	"github.com/rigforge/internal/models"

	"gorm.io/gorm"
)

// DashboardRepository 仪表盘聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type DashboardRepository interface {
	GetOverview() (DashboardOverview, error)
}

// GormDashboardRepository GORM 实现
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository 创建仪表盘仓库
func NewDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

type orderStatusCountRow struct {
	Status string
	Total  int64
}

// GetOverview 商品、用户与订单概览
func (r *GormDashboardRepository) GetOverview() (DashboardOverview, error) {
	overview := DashboardOverview{OrdersByStatus: map[string]int64{}}

	counters := []struct {
		target *int64
		model  interface{}
		where  string
		args   []interface{}
	}{
		{&overview.TotalProducts, &models.Product{}, "", nil},
		{&overview.ActiveProducts, &models.Product{}, "is_active = ?", []interface{}{true}},
		{&overview.LowStockProducts, &models.Product{}, "stock_quantity <= low_stock_threshold", nil},
		{&overview.OutOfStockProducts, &models.Product{}, "stock_quantity = ?", []interface{}{0}},
		{&overview.TotalUsers, &models.User{}, "", nil},
		{&overview.TotalOrders, &models.Order{}, "", nil},
	}
	for _, c := range counters {
		query := r.db.Model(c.model)
		if c.where != "" {
			query = query.Where(c.where, c.args...)
		}
		if err := query.Count(c.target).Error; err != nil {
			return overview, err
		}
	}

	var rows []orderStatusCountRow
	if err := r.db.Model(&models.Order{}).Select("status, COUNT(*) AS total").Group("status").Scan(&rows).Error; err != nil {
		return overview, err
	}
	for _, row := range rows {
		overview.OrdersByStatus[row.Status] = row.Total
	}

	var revenue models.Money
	row := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status IN ?", activeOrderStatuses).
		Row()
	if err := row.Scan(&revenue); err != nil {
		return overview, err
	}
	overview.Revenue = revenue.Decimal
	return overview, nil
}
