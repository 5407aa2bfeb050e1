package service

import (
	"strings"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/logger"
	"github.com/rigforge/internal/models"
	"github.com/rigforge/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// CreateUserInput 创建用户输入
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UserService 用户服务
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create 创建用户，邮箱重复由唯一索引拒绝
func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, ErrInvalidInput
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}
	role := strings.ToLower(strings.TrimSpace(input.Role))
	if role == "" {
		role = constants.RoleCustomer
	}
	if role != constants.RoleCustomer && role != constants.RoleAdmin {
		return nil, ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         role,
	}
	created, err := s.userRepo.CreateIfAbsent(user)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrEmailExists
	}
	logger.Infow("user_created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// GetByID 获取用户，不存在时返回 nil
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetRole 获取用户角色，不存在时返回空字符串
func (s *UserService) GetRole(id uint) (string, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil || user == nil {
		return "", err
	}
	return user.Role, nil
}
