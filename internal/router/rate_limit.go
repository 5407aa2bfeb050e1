package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/i18n"
	"github.com/rigforge/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	// BlockSeconds 超限后封禁时长，0 表示仅等待窗口过期
	BlockSeconds int
	MessageKey   string
}

// NewRateLimitRule 从配置构建限流规则
func NewRateLimitRule(prefix string, cfg config.RateLimitConfig) RateLimitRule {
	return RateLimitRule{
		Prefix:        prefix,
		WindowSeconds: cfg.WindowSeconds,
		MaxRequests:   cfg.MaxRequests,
		BlockSeconds:  cfg.BlockSeconds,
	}
}

// KEYS[1] 计数 key, KEYS[2] 封禁 key
// ARGV[1] 窗口秒数, ARGV[2] 最大请求数, ARGV[3] 封禁秒数
var rateLimitScript = redis.NewScript(`
local blocked = redis.call("TTL", KEYS[2])
if blocked > 0 then
	return {-1, blocked}
end
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
if current > tonumber(ARGV[2]) and tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[2], "1", "EX", ARGV[3])
	ttl = tonumber(ARGV[3])
end
return {current, ttl}
`)

// RateLimitMiddleware Redis 频率限制中间件，Redis 未启用时放行
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.WindowSeconds <= 0 || rule.MaxRequests <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		if rule.Prefix != "" {
			key = fmt.Sprintf("%s:%s", rule.Prefix, key)
		}

		result, err := rateLimitScript.Run(
			c.Request.Context(),
			client,
			[]string{key, key + ":blocked"},
			rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds,
		).Result()
		if err != nil {
			logger.Errorw("rate_limit_script_failed", "key", key, "error", err)
			rateLimitUnavailable(c)
			return
		}

		values, ok := result.([]interface{})
		if !ok || len(values) < 2 {
			rateLimitUnavailable(c)
			return
		}
		count, ok := toInt64(values[0])
		if !ok {
			rateLimitUnavailable(c)
			return
		}
		ttlSeconds, _ := toInt64(values[1])
		if count < 0 || count > int64(rule.MaxRequests) {
			waitSeconds := int(ttlSeconds)
			if waitSeconds < 1 {
				waitSeconds = rule.WindowSeconds
			}
			msgKey := strings.TrimSpace(rule.MessageKey)
			if msgKey == "" {
				msgKey = "error.rate_limited"
			}
			msg := i18n.Sprintf(i18n.ResolveLocale(c), msgKey, waitSeconds)
			response.AbortError(c, response.CodeTooManyRequests, msg)
			return
		}

		c.Next()
	}
}

func rateLimitUnavailable(c *gin.Context) {
	msg := i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable")
	response.AbortError(c, response.CodeUnavailable, msg)
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 IP + JSON 字段作为限流 key
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(strings.TrimSpace(readJSONField(c, field)))
		if value == "" {
			return c.ClientIP()
		}
		return fmt.Sprintf("%s|%s", value, c.ClientIP())
	}
}

// readJSONField 读取请求体中的字符串字段，并回填请求体供后续绑定
func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) == 0 {
		return ""
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if text, ok := payload[field].(string); ok {
		return strings.TrimSpace(text)
	}
	return ""
}

func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
