package service

import (
	"strings"

	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/repository"
)

// CreateReviewInput 创建评价输入
type CreateReviewInput struct {
	UserID    uint
	ProductID uint
	Rating    int
	Comment   *string
}

// UpdateReviewInput 更新评价输入
type UpdateReviewInput struct {
	Rating  *int
	Comment OptionalString
}

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	orderRepo  repository.OrderRepository
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, orderRepo repository.OrderRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
	}
}

// Create 创建评价，需已购买且同一商品仅可评价一次
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if !validRating(input.Rating) {
		return nil, ErrInvalidRating
	}
	purchased, err := s.orderRepo.HasPurchased(input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, ErrReviewNotPurchased
	}
	review := &models.Review{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   normalizeComment(input.Comment),
	}
	created, err := s.reviewRepo.CreateIfAbsent(review)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrReviewDuplicate
	}
	logger.Infow("review_created", "review_id", review.ID, "user_id", review.UserID, "product_id", review.ProductID)
	return review, nil
}

// Update 更新评分或评论，不存在时返回 nil
func (s *ReviewService) Update(id uint, input UpdateReviewInput) (*models.Review, error) {
	updates := map[string]interface{}{}
	if input.Rating != nil {
		if !validRating(*input.Rating) {
			return nil, ErrInvalidRating
		}
		updates["rating"] = *input.Rating
	}
	if input.Comment.Set {
		if comment := normalizeComment(input.Comment.Value); comment != nil {
			updates["comment"] = *comment
		} else {
			updates["comment"] = nil
		}
	}
	review, err := s.reviewRepo.GetByID(id)
	if err != nil || review == nil {
		return nil, err
	}
	if len(updates) == 0 {
		return review, nil
	}
	if _, err := s.reviewRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(id)
}

// Delete 删除评价
func (s *ReviewService) Delete(id uint) (bool, error) {
	affected, err := s.reviewRepo.Delete(id)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListByProduct 商品评价，最新在前
func (s *ReviewService) ListByProduct(productID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByProduct(productID)
}

// ListByUser 用户评价，最新在前
func (s *ReviewService) ListByUser(userID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByUser(userID)
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	return &trimmed
}
