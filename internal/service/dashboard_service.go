package service

import (
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/repository"
)

// DashboardOverview 管理端概览
type DashboardOverview struct {
	repository.DashboardOverview
	Revenue models.Money `json:"revenue"`
}

// DashboardService 仪表盘服务
type DashboardService struct {
	repo repository.DashboardRepository
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// GetOverview 获取概览统计
func (s *DashboardService) GetOverview() (*DashboardOverview, error) {
	overview, err := s.repo.GetOverview()
	if err != nil {
		return nil, err
	}
	if overview.OrdersByStatus == nil {
		overview.OrdersByStatus = map[string]int64{}
	}
	return &DashboardOverview{
		DashboardOverview: overview,
		Revenue:           models.NewMoneyFromDecimal(overview.Revenue),
	}, nil
}
