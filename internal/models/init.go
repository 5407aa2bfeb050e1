package models

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultAdmin 初始化默认管理员账号，已存在管理员时跳过
func InitDefaultAdmin(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&User{}).Where("role = ?", constants.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = "admin@rigforge.local"
	}
	generated := false
	if password == "" {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		password = hex.EncodeToString(buf)
		generated = true
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	if generated {
		logger.Warnw("default_admin_created_with_generated_password", "email", email, "password", password)
	} else {
		logger.Infow("default_admin_created", "email", email)
	}
	return nil
}
