package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "CAD", store.Currency())
	assert.Equal(t, 0.13, store.TaxRate())
	assert.Len(t, store.ActiveCategories(), 5)
	assert.Len(t, store.SeedProducts(), 7)
	assert.Len(t, store.MarketplaceSettings(), 2)

	laptops, ok := store.Category("laptops")
	require.True(t, ok)
	assert.Equal(t, []string{"brand", "processor", "ram", "storage", "screen_size"}, laptops.RequiredFields)

	rate, ok := store.ShippingRate("on")
	require.True(t, ok)
	assert.Equal(t, 10.0, rate.Rate)
	assert.Equal(t, 50.0, rate.FreeShippingThreshold)

	_, ok = store.ShippingRate("NU")
	assert.False(t, ok)
}

func TestSeedProductsMatchStorefront(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	first := store.SeedProducts()[0]
	assert.Equal(t, `MacBook Pro 16" M3 Max`, first.Name)
	assert.Equal(t, 3499.0, first.Price)
	assert.Equal(t, "active", first.Status)
	assert.Equal(t, "M3 Max", first.Specifications["Processor"])
}

func TestParse_RejectsBadCurrency(t *testing.T) {
	_, err := Parse([]byte("site:\n  currency: XXQ\npayment:\n  tax_rate: 0.1\n"))
	assert.Error(t, err)
}

func TestParse_RejectsDuplicateCategory(t *testing.T) {
	data := []byte(`
site: {currency: USD}
categories:
  - {id: laptops, name: Laptops}
  - {id: laptops, name: Again}
`)
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: {currency: USD}\npayment: {tax_rate: 0.05}\n"), 0644))

	store, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "USD", store.Currency())
	assert.Empty(t, store.ActiveCategories())
}
