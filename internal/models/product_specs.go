package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rigforge/internal/constants"
)

// ErrSpecsCategoryMismatch 参数记录与商品品类不一致
var ErrSpecsCategoryMismatch = errors.New("specs category mismatch")

// specsKindKey 存储时的品类判别字段
const specsKindKey = "kind"

// Specs 品类专属参数记录，按商品品类区分
type Specs interface {
	Category() string
}

// GPUSpecs 显卡参数
type GPUSpecs struct {
	Chipset    *string `json:"chipset,omitempty"`
	MemoryGB   *int    `json:"memory_gb,omitempty"`
	MemoryType *string `json:"memory_type,omitempty"`
}

// Category 品类
func (GPUSpecs) Category() string { return constants.CategoryGPU }

// CPUSpecs 处理器参数
type CPUSpecs struct {
	Socket        *string `json:"socket,omitempty"`
	Cores         *int    `json:"cores,omitempty"`
	Threads       *int    `json:"threads,omitempty"`
	BaseClockGHz  *Fixed2 `json:"base_clock_ghz,omitempty"`
	BoostClockGHz *Fixed2 `json:"boost_clock_ghz,omitempty"`
}

// Category 品类
func (CPUSpecs) Category() string { return constants.CategoryCPU }

// MotherboardSpecs 主板参数
type MotherboardSpecs struct {
	Socket     *string `json:"socket,omitempty"`
	Chipset    *string `json:"chipset,omitempty"`
	FormFactor *string `json:"form_factor,omitempty"`
}

// Category 品类
func (MotherboardSpecs) Category() string { return constants.CategoryMotherboard }

// RAMSpecs 内存参数
type RAMSpecs struct {
	CapacityGB *int    `json:"capacity_gb,omitempty"`
	SpeedMHz   *int    `json:"speed_mhz,omitempty"`
	Type       *string `json:"type,omitempty"` // DDR4 / DDR5
}

// Category 品类
func (RAMSpecs) Category() string { return constants.CategoryRAM }

// SSDSpecs 固态硬盘参数
type SSDSpecs struct {
	CapacityGB     *int    `json:"capacity_gb,omitempty"`
	Interface      *string `json:"interface,omitempty"` // SATA / NVMe
	ReadSpeedMBps  *int    `json:"read_speed_mbps,omitempty"`
	WriteSpeedMBps *int    `json:"write_speed_mbps,omitempty"`
}

// Category 品类
func (SSDSpecs) Category() string { return constants.CategorySSD }

// NewSpecs 返回指定品类的空参数记录
func NewSpecs(category string) (Specs, error) {
	switch category {
	case constants.CategoryGPU:
		return &GPUSpecs{}, nil
	case constants.CategoryCPU:
		return &CPUSpecs{}, nil
	case constants.CategoryMotherboard:
		return &MotherboardSpecs{}, nil
	case constants.CategoryRAM:
		return &RAMSpecs{}, nil
	case constants.CategorySSD:
		return &SSDSpecs{}, nil
	default:
		return nil, fmt.Errorf("unknown product category %q", category)
	}
}

// DecodeSpecs 按品类严格解析参数，出现其他品类字段时报错
func DecodeSpecs(category string, raw []byte) (Specs, error) {
	specs, err := NewSpecs(category)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return specs, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(specs); err != nil {
		return nil, fmt.Errorf("decode %s specs: %w", category, err)
	}
	if err := validateSpecs(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

func validateSpecs(specs Specs) error {
	switch s := specs.(type) {
	case *RAMSpecs:
		if s.Type != nil && *s.Type != constants.RAMTypeDDR4 && *s.Type != constants.RAMTypeDDR5 {
			return fmt.Errorf("ram type must be DDR4 or DDR5, got %q", *s.Type)
		}
	case *SSDSpecs:
		if s.Interface != nil && *s.Interface != constants.SSDInterfaceSATA && *s.Interface != constants.SSDInterfaceNVMe {
			return fmt.Errorf("ssd interface must be SATA or NVMe, got %q", *s.Interface)
		}
	}
	return nil
}

// ProductSpecs 商品参数列，数据库中以带 kind 判别字段的扁平 JSON 存储
type ProductSpecs struct {
	Specs
}

// Value 实现 driver.Valuer 接口
func (p ProductSpecs) Value() (driver.Value, error) {
	if p.Specs == nil {
		return nil, nil
	}
	body, err := json.Marshal(p.Specs)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	kind, _ := json.Marshal(p.Specs.Category())
	fields[specsKindKey] = kind
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return string(out), nil
}

// Scan 实现 sql.Scanner 接口
func (p *ProductSpecs) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		p.Specs = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported specs column type %T", value)
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("scan specs: %w", err)
	}
	var kind string
	if err := json.Unmarshal(fields[specsKindKey], &kind); err != nil {
		return fmt.Errorf("scan specs kind: %w", err)
	}
	delete(fields, specsKindKey)
	body, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	specs, err := DecodeSpecs(kind, body)
	if err != nil {
		return err
	}
	p.Specs = specs
	return nil
}

// MarshalJSON 接口层只输出品类参数本身
func (p ProductSpecs) MarshalJSON() ([]byte, error) {
	if p.Specs == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.Specs)
}

// GormDataType 声明列类型
func (ProductSpecs) GormDataType() string {
	return "json"
}

// MatchCategory 校验参数记录属于指定品类
func (p ProductSpecs) MatchCategory(category string) error {
	if p.Specs == nil {
		return nil
	}
	if p.Specs.Category() != category {
		return fmt.Errorf("%w: %s specs on %s product", ErrSpecsCategoryMismatch, p.Specs.Category(), category)
	}
	return nil
}
