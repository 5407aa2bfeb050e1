package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money 统一金额类型（保留 2 位小数）
// 数据库以 decimal(10,2) 存储，接口层以 JSON 数字传输
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// NewMoneyFromFloat 从浮点数创建金额
func NewMoneyFromFloat(amount float64) Money {
	return Money{Decimal: decimal.NewFromFloat(amount).Round(2)}
}

// MarshalJSON 输出 2 位小数的 JSON 数字
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.Round(2).StringFixed(2)), nil
}

// UnmarshalJSON 解析金额（数字或数字字符串）
func (m *Money) UnmarshalJSON(b []byte) error {
	d, err := parseFixedJSON(b)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// Value 用于数据库写入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String 返回 2 位小数格式
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}

// Fixed2 两位定点小数（如 CPU 主频 GHz），JSON 中为数字
type Fixed2 struct {
	decimal.Decimal
}

// NewFixed2 从浮点数创建
func NewFixed2(v float64) Fixed2 {
	return Fixed2{Decimal: decimal.NewFromFloat(v).Round(2)}
}

// MarshalJSON 输出 2 位小数的 JSON 数字
func (f Fixed2) MarshalJSON() ([]byte, error) {
	return []byte(f.Decimal.Round(2).StringFixed(2)), nil
}

// UnmarshalJSON 解析数字或数字字符串
func (f *Fixed2) UnmarshalJSON(b []byte) error {
	d, err := parseFixedJSON(b)
	if err != nil {
		return err
	}
	f.Decimal = d
	return nil
}

func parseFixedJSON(b []byte) (decimal.Decimal, error) {
	if len(b) == 0 || string(b) == "null" {
		return decimal.Zero, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid decimal %q: %w", s, err)
		}
		return d.Round(2), nil
	}
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal %s: %w", string(b), err)
	}
	return d.Round(2), nil
}
