package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rigforge/internal/logger"

	"github.com/glebarez/sqlite" // 纯 Go SQLite 驱动（基于 modernc.org/sqlite）
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB 全局数据库实例
var DB *gorm.DB

// DBPoolConfig 数据库连接池配置
type DBPoolConfig struct {
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeSeconds int
	ConnMaxIdleTimeSeconds int
}

// InitDB 初始化全局数据库连接
func InitDB(driver, dsn string, pool DBPoolConfig) error {
	db, err := OpenDB(driver, dsn, pool, gormlogger.Warn)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// OpenDB 按驱动打开数据库，SQL 日志经由 zap 输出
func OpenDB(driver, dsn string, pool DBPoolConfig, level gormlogger.LogLevel) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(logger.StdLogger(), gormlogger.Config{
			SlowThreshold:             500 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	applyDBPool(sqlDB, pool)
	return db, nil
}

func applyDBPool(sqlDB *sql.DB, pool DBPoolConfig) {
	if sqlDB == nil {
		return
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetimeSeconds > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(pool.ConnMaxLifetimeSeconds) * time.Second)
	}
	if pool.ConnMaxIdleTimeSeconds > 0 {
		sqlDB.SetConnMaxIdleTime(time.Duration(pool.ConnMaxIdleTimeSeconds) * time.Second)
	}
}

// AllModels 需要迁移的全部表
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Product{},
		&ProductImage{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&OrderStatusLog{},
		&WishlistItem{},
		&Review{},
		&AuthzAuditLog{},
	}
}

// AutoMigrate 迁移全局数据库
func AutoMigrate() error {
	return MigrateDB(DB)
}

// MigrateDB 迁移指定数据库
func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
