package shared

import (
	"strconv"
	"strings"

	"github.com/rigforge/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParseUintParam 解析路径中的正整数 ID，失败时直接返回错误响应。
func ParseUintParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(value), true
}

// ParseID 解析 :id 路径参数
func ParseID(c *gin.Context) (uint, bool) {
	return ParseUintParam(c, "id", "error.id_invalid")
}

// ParseUserID 解析 :user_id 路径参数
func ParseUserID(c *gin.Context) (uint, bool) {
	return ParseUintParam(c, "user_id", "error.user_id_invalid")
}

// ListOrEmpty 保证列表序列化为 [] 而非 null
func ListOrEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
