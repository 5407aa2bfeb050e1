package service

import (
	"strings"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/queue"
	"github.com/rigforge/internal/repository"

	"github.com/shopspring/decimal"
)

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID          uint
	TotalAmount     decimal.Decimal
	ShippingAddress string
	BillingAddress  string
}

// CreateOrderItemInput 创建订单项输入
type CreateOrderItemInput struct {
	ProductID   uint
	Quantity    int
	PriceAtTime decimal.Decimal
}

// OrderService 订单服务
type OrderService struct {
	orderRepo         repository.OrderRepository
	productRepo       repository.ProductRepository
	userRepo          repository.UserRepository
	queueClient       *queue.Client
	strictTransitions bool
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository, queueClient *queue.Client, strictTransitions bool) *OrderService {
	return &OrderService{
		orderRepo:         orderRepo,
		productRepo:       productRepo,
		userRepo:          userRepo,
		queueClient:       queueClient,
		strictTransitions: strictTransitions,
	}
}

// Create 创建订单，状态固定为 pending，金额不与订单项核对
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if !input.TotalAmount.IsPositive() {
		return nil, ErrInvalidOrderAmount
	}
	shipping := strings.TrimSpace(input.ShippingAddress)
	billing := strings.TrimSpace(input.BillingAddress)
	if shipping == "" || billing == "" {
		return nil, ErrInvalidInput
	}
	exists, err := s.userRepo.Exists(input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	order := &models.Order{
		UserID:          input.UserID,
		Status:          constants.OrderStatusPending,
		TotalAmount:     models.NewMoneyFromDecimal(input.TotalAmount),
		ShippingAddress: shipping,
		BillingAddress:  billing,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}
	logger.Infow("order_created", "order_id", order.ID, "user_id", order.UserID, "total_amount", order.TotalAmount.String())
	return order, nil
}

// CreateItem 创建订单项，不扣减库存
func (s *OrderService) CreateItem(orderID uint, input CreateOrderItemInput) (*models.OrderItem, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !input.PriceAtTime.IsPositive() {
		return nil, ErrInvalidPrice
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	item := &models.OrderItem{
		OrderID:     orderID,
		ProductID:   input.ProductID,
		Quantity:    input.Quantity,
		PriceAtTime: models.NewMoneyFromDecimal(input.PriceAtTime),
	}
	if err := s.orderRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID 订单详情，不存在时返回 nil
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetDetail(id)
}

// ListByUser 用户订单
func (s *OrderService) ListByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// ListAll 全部订单
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.orderRepo.ListAll()
}

// UpdateStatus 更新订单状态，不存在时返回 nil
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	target := normalizeOrderStatus(status)
	if !isValidOrderStatus(target) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	current := order.Status
	if current == target {
		return s.orderRepo.GetDetail(id)
	}
	if s.strictTransitions && !canTransitionOrderStatus(current, target) {
		logger.Infow("order_status_transition_rejected", "order_id", id, "from", current, "to", target)
		return nil, ErrOrderStatusInvalid
	}
	if _, err := s.orderRepo.UpdateStatus(id, target); err != nil {
		return nil, err
	}
	s.dispatchStatusChanged(queue.OrderStatusChangedPayload{OrderID: id, FromStatus: current, ToStatus: target})
	return s.orderRepo.GetDetail(id)
}

// RecordStatusChange 写入状态变更记录
func (s *OrderService) RecordStatusChange(payload queue.OrderStatusChangedPayload) error {
	if payload.OrderID == 0 || payload.ToStatus == "" {
		return ErrInvalidInput
	}
	return s.orderRepo.CreateStatusLog(&models.OrderStatusLog{
		OrderID:    payload.OrderID,
		FromStatus: payload.FromStatus,
		ToStatus:   payload.ToStatus,
	})
}

func (s *OrderService) dispatchStatusChanged(payload queue.OrderStatusChangedPayload) {
	if s.queueClient.Enabled() {
		err := s.queueClient.EnqueueOrderStatusChanged(payload)
		if err == nil {
			return
		}
		logger.Warnw("order_status_enqueue_failed", "order_id", payload.OrderID, "error", err)
	}
	if err := s.RecordStatusChange(payload); err != nil {
		logger.Errorw("order_status_log_failed", "order_id", payload.OrderID, "error", err)
	}
}
