package shared

import (
	"errors"

	"github.com/rigforge/internal/http/response"
	"github.com/rigforge/internal/i18n"
	"github.com/rigforge/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MappedError 定义业务错误到接口错误响应的映射关系。
type MappedError struct {
	Target error
	Code   int
	Key    string
}

// localizedError 自带文案键与参数的业务错误
type localizedError interface {
	Key() string
	Args() []interface{}
}

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	RespondErrorWithMsg(c, code, i18n.T(locale, key), err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondMappedError 按规则表映射业务错误，未命中时记录原始错误并返回兜底响应。
func RespondMappedError(c *gin.Context, err error, rules []MappedError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if !errors.Is(err, rule.Target) {
			continue
		}
		var localized localizedError
		if errors.As(err, &localized) {
			msg := i18n.Sprintf(i18n.ResolveLocale(c), localized.Key(), localized.Args()...)
			RespondErrorWithMsg(c, rule.Code, msg, nil)
			return
		}
		RespondError(c, rule.Code, rule.Key, nil)
		return
	}
	RespondError(c, fallbackCode, fallbackKey, err)
}
