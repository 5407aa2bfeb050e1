package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/rigforge/internal/authz"
	"github.com/rigforge/internal/config"
	"github.com/rigforge/internal/constants"
	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/i18n"
	"github.com/rigforge/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"

// RoleResolver 根据用户 ID 查询角色
type RoleResolver interface {
	GetRole(userID uint) (string, error)
}

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Origin", "Content-Type", "Accept-Language", constants.HeaderRequestID, constants.HeaderUserID}
	}
	corsCfg := cors.Config{
		AllowMethods:     allowedMethods,
		AllowHeaders:     allowedHeaders,
		ExposeHeaders:    []string{constants.HeaderRequestID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}
	origins := lo.Filter(cfg.AllowedOrigins, func(origin string, _ int) bool {
		return strings.TrimSpace(origin) != ""
	})
	if len(origins) == 0 || lo.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	return cors.New(corsCfg)
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(constants.HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(constants.HeaderRequestID, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.L()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			entry.Errorw("request", "errors", c.Errors.String())
			return
		}
		entry.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// AdminRoleMiddleware 管理端角色鉴权，按 X-User-ID 对应用户的角色执行 casbin 判定
func AdminRoleMiddleware(authzService *authz.Service, roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		forbid := func() {
			msg := i18n.T(i18n.ResolveLocale(c), "error.forbidden")
			response.AbortError(c, response.CodeForbidden, msg)
		}
		if authzService == nil || roles == nil {
			logger.Errorw("admin_role_service_unavailable")
			forbid()
			return
		}

		userID, err := strconv.ParseUint(strings.TrimSpace(c.GetHeader(constants.HeaderUserID)), 10, 64)
		if err != nil || userID == 0 {
			forbid()
			return
		}
		role, err := roles.GetRole(uint(userID))
		if err != nil {
			logger.Errorw("admin_role_lookup_failed", "user_id", userID, "error", err)
			forbid()
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}
		allowed, err := authzService.EnforceRole(role, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_role_enforce_failed",
				"user_id", userID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			forbid()
			return
		}
		if !allowed {
			logger.Warnw("admin_role_permission_denied",
				"user_id", userID,
				"role", role,
				"method", c.Request.Method,
				"resource", authz.NormalizeObject(resource),
			)
			forbid()
			return
		}
		c.Set("user_id", uint(userID))
		c.Next()
	}
}
