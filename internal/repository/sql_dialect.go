package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

func isPostgres(dialect string) bool {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return true
	default:
		return false
	}
}

// jsonTextExpr 构建 JSON 字段文本提取表达式，兼容 sqlite 与 postgres。
func jsonTextExpr(db *gorm.DB, column, key string) string {
	return jsonTextExprByDialect(dbDialectName(db), column, key)
}

func jsonTextExprByDialect(dialect, column, key string) string {
	if isPostgres(dialect) {
		return fmt.Sprintf("(%s::jsonb ->> '%s')", column, key)
	}
	return fmt.Sprintf("json_extract(%s, '$.\"%s\"')", column, key)
}

// jsonIntExpr 构建 JSON 整数字段提取表达式，用于数值相等比较。
func jsonIntExpr(db *gorm.DB, column, key string) string {
	return jsonIntExprByDialect(dbDialectName(db), column, key)
}

func jsonIntExprByDialect(dialect, column, key string) string {
	return fmt.Sprintf("CAST(%s AS INTEGER)", jsonTextExprByDialect(dialect, column, key))
}

func likeOperatorByDialect(dialect string) string {
	if isPostgres(dialect) {
		return "ILIKE"
	}
	return "LIKE"
}

// buildLikeCondition 构建多列 OR LIKE 条件，并返回参数数量。
func buildLikeCondition(db *gorm.DB, columns []string) (string, int) {
	return buildLikeConditionByDialect(dbDialectName(db), columns)
}

func buildLikeConditionByDialect(dialect string, columns []string) (string, int) {
	operator := likeOperatorByDialect(dialect)
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s ?", trimmed, operator))
	}
	return strings.Join(parts, " OR "), len(parts)
}

// repeatLikeArgs 生成重复的 LIKE 参数列表。
func repeatLikeArgs(like string, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, like)
	}
	return args
}
