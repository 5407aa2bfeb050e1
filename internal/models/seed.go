package models

import (
	"fmt"

	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const demoPassword = "rigforge-demo"

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }
func fixedPtr(v float64) *Fixed2 {
	f := NewFixed2(v)
	return &f
}

// DemoCatalog 演示商品目录
func DemoCatalog() []Product {
	return []Product{
		{
			Name:              "NVIDIA GeForce RTX 4090",
			Brand:             "NVIDIA",
			Category:          constants.CategoryGPU,
			Description:       strPtr("The ultimate gaming GPU with uncompromising performance"),
			Price:             NewMoneyFromFloat(1599.99),
			StockQuantity:     15,
			LowStockThreshold: 5,
			IsActive:          true,
			Specs: ProductSpecs{Specs: &GPUSpecs{
				Chipset:    strPtr("AD102"),
				MemoryGB:   intPtr(24),
				MemoryType: strPtr("GDDR6X"),
			}},
		},
		{
			Name:              "AMD Ryzen 9 7950X",
			Brand:             "AMD",
			Category:          constants.CategoryCPU,
			Description:       strPtr("16-core, 32-thread powerhouse for gaming and content creation"),
			Price:             NewMoneyFromFloat(699.99),
			StockQuantity:     8,
			LowStockThreshold: 10,
			IsActive:          true,
			Specs: ProductSpecs{Specs: &CPUSpecs{
				Socket:        strPtr("AM5"),
				Cores:         intPtr(16),
				Threads:       intPtr(32),
				BaseClockGHz:  fixedPtr(4.5),
				BoostClockGHz: fixedPtr(5.7),
			}},
		},
		{
			Name:              "ASUS ROG Strix X670E-E Gaming",
			Brand:             "ASUS",
			Category:          constants.CategoryMotherboard,
			Description:       strPtr("AM5 ATX board with PCIe 5.0 and Wi-Fi 6E"),
			Price:             NewMoneyFromFloat(499.99),
			StockQuantity:     0,
			LowStockThreshold: 3,
			IsActive:          true,
			Specs: ProductSpecs{Specs: &MotherboardSpecs{
				Socket:     strPtr("AM5"),
				Chipset:    strPtr("X670E"),
				FormFactor: strPtr("ATX"),
			}},
		},
		{
			Name:              "Corsair Dominator Platinum RGB 32GB",
			Brand:             "Corsair",
			Category:          constants.CategoryRAM,
			Description:       strPtr("Premium DDR5 memory with stunning RGB lighting"),
			Price:             NewMoneyFromFloat(299.99),
			StockQuantity:     25,
			LowStockThreshold: 10,
			IsActive:          true,
			Specs: ProductSpecs{Specs: &RAMSpecs{
				CapacityGB: intPtr(32),
				SpeedMHz:   intPtr(6000),
				Type:       strPtr(constants.RAMTypeDDR5),
			}},
		},
		{
			Name:              "Samsung 990 PRO 2TB",
			Brand:             "Samsung",
			Category:          constants.CategorySSD,
			Description:       strPtr("Blazing fast NVMe SSD for ultimate performance"),
			Price:             NewMoneyFromFloat(199.99),
			StockQuantity:     30,
			LowStockThreshold: 15,
			IsActive:          true,
			Specs: ProductSpecs{Specs: &SSDSpecs{
				CapacityGB:     intPtr(2000),
				Interface:      strPtr(constants.SSDInterfaceNVMe),
				ReadSpeedMBps:  intPtr(7000),
				WriteSpeedMBps: intPtr(6900),
			}},
		},
	}
}

// SeedDemoData 写入演示用户与演示商品，商品表非空时跳过商品部分
func SeedDemoData(db *gorm.DB) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	users := []User{
		{Email: "john.doe@rigforge.local", PasswordHash: string(hash), FirstName: "John", LastName: "Doe", Role: constants.RoleCustomer},
		{Email: "admin.user@rigforge.local", PasswordHash: string(hash), FirstName: "Admin", LastName: "User", Role: constants.RoleAdmin},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&users).Error; err != nil {
		return 0, fmt.Errorf("seed demo users: %w", err)
	}

	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Infow("demo_catalog_skipped", "existing_products", count)
		return 0, nil
	}

	products := DemoCatalog()
	if err := db.Create(&products).Error; err != nil {
		return 0, fmt.Errorf("seed demo catalog: %w", err)
	}
	logger.Infow("demo_catalog_seeded", "products", len(products))
	return len(products), nil
}
