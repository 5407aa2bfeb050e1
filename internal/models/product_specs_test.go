package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/rigforge/internal/constants"

	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestDecodeSpecsRejectsForeignFields(t *testing.T) {
	_, err := DecodeSpecs(constants.CategoryCPU, []byte(`{"socket":"AM5","chipset":"AD102"}`))
	require.Error(t, err)

	specs, err := DecodeSpecs(constants.CategoryCPU, []byte(`{"socket":"AM5","cores":16}`))
	require.NoError(t, err)
	cpu, ok := specs.(*CPUSpecs)
	require.True(t, ok)
	require.Equal(t, "AM5", *cpu.Socket)
	require.Equal(t, 16, *cpu.Cores)
	require.Nil(t, cpu.Threads)
}

func TestDecodeSpecsEnumerations(t *testing.T) {
	_, err := DecodeSpecs(constants.CategoryRAM, []byte(`{"type":"DDR3"}`))
	require.Error(t, err)
	_, err = DecodeSpecs(constants.CategorySSD, []byte(`{"interface":"PCIe"}`))
	require.Error(t, err)
	_, err = DecodeSpecs("psu", nil)
	require.Error(t, err)

	specs, err := DecodeSpecs(constants.CategoryGPU, nil)
	require.NoError(t, err)
	require.Equal(t, constants.CategoryGPU, specs.Category())
}

func TestProductSpecsValueScanRoundTrip(t *testing.T) {
	in := ProductSpecs{Specs: &CPUSpecs{
		Socket:        strPtr("AM5"),
		BaseClockGHz:  fixedPtr(3.4),
		BoostClockGHz: fixedPtr(5.4),
	}}
	value, err := in.Value()
	require.NoError(t, err)
	stored, ok := value.(string)
	require.True(t, ok)
	require.Contains(t, stored, `"kind":"cpu"`)

	var out ProductSpecs
	require.NoError(t, out.Scan([]byte(stored)))
	cpu, ok := out.Specs.(*CPUSpecs)
	require.True(t, ok)
	require.Equal(t, 3.4, cpu.BaseClockGHz.InexactFloat64())
	require.Equal(t, 5.4, cpu.BoostClockGHz.InexactFloat64())
	require.NoError(t, out.MatchCategory(constants.CategoryCPU))
	require.ErrorIs(t, out.MatchCategory(constants.CategoryGPU), ErrSpecsCategoryMismatch)
}

func TestMoneyJSONIsNumber(t *testing.T) {
	body, err := json.Marshal(NewMoneyFromFloat(1599.99))
	require.NoError(t, err)
	require.Equal(t, "1599.99", string(body))

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"19.5"`), &m))
	require.Equal(t, "19.50", m.String())
	require.NoError(t, json.Unmarshal([]byte(`7`), &m))
	require.Equal(t, "7.00", m.String())
	require.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestProductJSONRoundTrip(t *testing.T) {
	product := DemoCatalog()[1]
	product.ID = 2
	body, err := json.Marshal(product)
	require.NoError(t, err)
	text := string(body)
	require.Contains(t, text, `"price":699.99`)
	require.Contains(t, text, `"base_clock_ghz":4.50`)
	require.Contains(t, text, `"stock_status":"low_stock"`)
	require.NotContains(t, text, `"kind"`)

	var decoded Product
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Equal(t, uint(2), decoded.ID)
	cpu, ok := decoded.Specs.Specs.(*CPUSpecs)
	require.True(t, ok)
	require.Equal(t, 5.7, cpu.BoostClockGHz.InexactFloat64())
	require.True(t, decoded.Price.Equal(product.Price.Decimal))
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		stock, threshold int
		want             string
	}{
		{0, 10, constants.StockStatusOutOfStock},
		{10, 10, constants.StockStatusLow},
		{11, 10, constants.StockStatusInStock},
	}
	for _, tc := range cases {
		p := Product{StockQuantity: tc.stock, LowStockThreshold: tc.threshold}
		require.Equal(t, tc.want, p.StockStatus(), "stock=%d threshold=%d", tc.stock, tc.threshold)
	}
}

func TestSeedDemoDataPersistsSpecs(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := OpenDB("sqlite", dsn, DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, gormlogger.Silent)
	require.NoError(t, err)
	require.NoError(t, MigrateDB(db))

	created, err := SeedDemoData(db)
	require.NoError(t, err)
	require.Equal(t, len(DemoCatalog()), created)

	again, err := SeedDemoData(db)
	require.NoError(t, err)
	require.Zero(t, again)

	var ssd Product
	require.NoError(t, db.Where("category = ?", constants.CategorySSD).First(&ssd).Error)
	specs, ok := ssd.Specs.Specs.(*SSDSpecs)
	require.True(t, ok)
	require.Equal(t, constants.SSDInterfaceNVMe, *specs.Interface)

	var users int64
	require.NoError(t, db.Model(&User{}).Count(&users).Error)
	require.Equal(t, int64(2), users)
}
