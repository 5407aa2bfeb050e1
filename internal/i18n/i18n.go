package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// LocaleZhCN 简体中文
	LocaleZhCN = "zh-CN"
	// LocaleEnUS 英文
	LocaleEnUS = "en-US"
	// DefaultLocale 默认语言
	DefaultLocale = LocaleZhCN
)

var supportedTags = []language.Tag{
	language.SimplifiedChinese,
	language.AmericanEnglish,
}

var matcher = language.NewMatcher(supportedTags)

var catalogs = map[string]map[string]string{
	LocaleZhCN: zhCNMessages,
	LocaleEnUS: enUSMessages,
}

// ResolveLocale 根据 lang 查询参数或 Accept-Language 解析语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return MatchLocale(lang)
	}
	return MatchLocale(c.GetHeader("Accept-Language"))
}

// MatchLocale 将任意语言标签匹配到支持的语言
func MatchLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	if supportedTags[index] == language.AmericanEnglish {
		return LocaleEnUS
	}
	return LocaleZhCN
}

// T 翻译文案，缺失时回退默认语言，再缺失时返回 key 本身
func T(locale, key string) string {
	if msg, ok := catalogs[locale][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
