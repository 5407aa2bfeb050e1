package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/rigforge/internal/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Queue     QueueConfig     `mapstructure:"queue"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Security  SecurityConfig  `mapstructure:"security"`
	Order     OrderConfig     `mapstructure:"order"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

// Addr 监听地址
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// LogConfig 日志配置
type LogConfig struct {
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// DatabasePoolConfig 数据库连接池配置
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver string             `mapstructure:"driver"` // sqlite / postgres
	DSN    string             `mapstructure:"dsn"`
	Pool   DatabasePoolConfig `mapstructure:"pool"`
}

// RedisConfig Redis 配置（商品缓存与限流）
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// QueueConfig 异步队列配置
type QueueConfig struct {
	Enabled     bool           `mapstructure:"enabled"`
	Host        string         `mapstructure:"host"`
	Port        int            `mapstructure:"port"`
	Password    string         `mapstructure:"password"`
	DB          int            `mapstructure:"db"`
	Concurrency int            `mapstructure:"concurrency"`
	Queues      map[string]int `mapstructure:"queues"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	// EnforceAdminRole 开启后管理端路由需要 X-User-ID 对应 admin 角色
	EnforceAdminRole bool            `mapstructure:"enforce_admin_role"`
	CreateUserLimit  RateLimitConfig `mapstructure:"create_user_rate_limit"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxRequests   int `mapstructure:"max_requests"`
	BlockSeconds  int `mapstructure:"block_seconds"`
}

// OrderConfig 订单配置
type OrderConfig struct {
	StrictStatusTransitions bool `mapstructure:"strict_status_transitions"`
}

// CacheConfig 缓存配置
type CacheConfig struct {
	ProductTTLSeconds int `mapstructure:"product_ttl_seconds"`
}

// CatalogConfig 商品目录数据源配置
type CatalogConfig struct {
	// SeedDemo 启动时若商品表为空则写入演示商品
	SeedDemo bool `mapstructure:"seed_demo"`
}

// BootstrapConfig 初始化配置
type BootstrapConfig struct {
	AdminEmail    string `mapstructure:"admin_email"`
	AdminPassword string `mapstructure:"admin_password"`
}

// Load 从 .env 与 config.yml 加载配置
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		logger.Infow("config_dotenv_loaded")
	}
	cfg, err := load(viper.New(), "")
	if err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}
	return cfg
}

func load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./etc")
		v.AddConfigPath("../")
	}
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // server.port -> SERVER_PORT

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		logger.Warnw("config_file_not_found", "fallback", "env_or_defaults")
	} else {
		logger.Infow("config_file_loaded", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("log.dir", "")
	v.SetDefault("log.filename", "rigforge.log")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("log.compress", true)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "./db/rigforge.db")
	v.SetDefault("database.pool.max_open_conns", 1)
	v.SetDefault("database.pool.max_idle_conns", 1)
	v.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	v.SetDefault("database.pool.conn_max_idle_time_seconds", 0)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "rf")

	v.SetDefault("queue.enabled", false)
	v.SetDefault("queue.host", "127.0.0.1")
	v.SetDefault("queue.port", 6379)
	v.SetDefault("queue.password", "")
	v.SetDefault("queue.db", 1)
	v.SetDefault("queue.concurrency", 5)
	v.SetDefault("queue.queues", map[string]int{
		"default":  5,
		"critical": 3,
	})

	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{
		"Content-Type",
		"Accept-Language",
		"X-Request-ID",
		"X-User-ID",
	})
	v.SetDefault("cors.allow_credentials", false)
	v.SetDefault("cors.max_age", 600)

	v.SetDefault("security.enforce_admin_role", false)
	v.SetDefault("security.create_user_rate_limit.window_seconds", 60)
	v.SetDefault("security.create_user_rate_limit.max_requests", 10)
	v.SetDefault("security.create_user_rate_limit.block_seconds", 300)

	v.SetDefault("order.strict_status_transitions", false)
	v.SetDefault("cache.product_ttl_seconds", 300)
	v.SetDefault("catalog.seed_demo", false)
	v.SetDefault("bootstrap.admin_email", "admin@rigforge.local")
	v.SetDefault("bootstrap.admin_password", "")
}
