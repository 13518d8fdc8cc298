package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"laptek/internal/domain/entity"
)

//go:embed store.yaml
var defaultCatalog []byte

type Site struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	SupportEmail string `yaml:"support_email"`
	Currency     string `yaml:"currency"`
	Timezone     string `yaml:"timezone"`
}

type Payment struct {
	TaxRate float64  `yaml:"tax_rate"`
	Methods []string `yaml:"methods"`
}

type Marketplace struct {
	ID           string `yaml:"id"`
	Enabled      bool   `yaml:"enabled"`
	AutoSync     bool   `yaml:"auto_sync"`
	SyncInterval int    `yaml:"sync_interval"`
}

type Product struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Category       string            `yaml:"category"`
	CategoryCode   string            `yaml:"category_code"`
	Price          float64           `yaml:"price"`
	Image          string            `yaml:"image"`
	Specs          string            `yaml:"specs"`
	Rating         float64           `yaml:"rating"`
	Brand          string            `yaml:"brand"`
	Description    string            `yaml:"description"`
	Specifications map[string]string `yaml:"specifications"`
}

// Store is the static configuration of the shop: settings, taxonomy and seed data.
type Store struct {
	Site         Site                  `yaml:"site"`
	Payment      Payment               `yaml:"payment"`
	Shipping     []entity.ShippingRate `yaml:"shipping"`
	Categories   []entity.Category     `yaml:"categories"`
	Marketplaces []Marketplace         `yaml:"marketplaces"`
	Products     []Product             `yaml:"products"`

	currency currency.Unit
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string) (*Store, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read store catalog: %w", err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) (*Store, error) {
	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to parse store catalog: %w", err)
	}

	unit, err := currency.ParseISO(store.Site.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid store currency %q: %w", store.Site.Currency, err)
	}
	store.currency = unit

	if store.Payment.TaxRate < 0 || store.Payment.TaxRate >= 1 {
		return nil, fmt.Errorf("invalid tax rate %v", store.Payment.TaxRate)
	}

	seen := make(map[string]bool, len(store.Categories))
	for _, c := range store.Categories {
		if c.ID == "" || seen[c.ID] {
			return nil, fmt.Errorf("category id %q is empty or duplicated", c.ID)
		}
		seen[c.ID] = true
	}

	return &store, nil
}

// Currency is the ISO 4217 code every order and invoice is issued in.
func (s *Store) Currency() string {
	return s.currency.String()
}

func (s *Store) TaxRate() float64 {
	return s.Payment.TaxRate
}

// ShippingRate looks up a region case-insensitively.
func (s *Store) ShippingRate(region string) (*entity.ShippingRate, bool) {
	for i := range s.Shipping {
		if strings.EqualFold(s.Shipping[i].Region, region) {
			rate := s.Shipping[i]
			return &rate, true
		}
	}
	return nil, false
}

func (s *Store) ActiveCategories() []*entity.Category {
	categories := make([]*entity.Category, 0, len(s.Categories))
	for i := range s.Categories {
		if s.Categories[i].Active {
			c := s.Categories[i]
			categories = append(categories, &c)
		}
	}
	return categories
}

func (s *Store) Category(id string) (*entity.Category, bool) {
	for i := range s.Categories {
		if s.Categories[i].ID == id {
			c := s.Categories[i]
			return &c, true
		}
	}
	return nil, false
}

func (s *Store) MarketplaceSettings() []*entity.MarketplaceSettings {
	settings := make([]*entity.MarketplaceSettings, 0, len(s.Marketplaces))
	for _, m := range s.Marketplaces {
		settings = append(settings, &entity.MarketplaceSettings{
			ID:          m.ID,
			Marketplace: m.ID,
			Enabled:     m.Enabled,
			SyncSettings: entity.SyncSettings{
				AutoSync:     m.AutoSync,
				SyncInterval: m.SyncInterval,
			},
		})
	}
	return settings
}

// SeedProducts returns the demo catalog as active products with stock.
func (s *Store) SeedProducts() []*entity.Product {
	products := make([]*entity.Product, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, &entity.Product{
			ID:             p.ID,
			Name:           p.Name,
			Category:       p.Category,
			CategoryCode:   p.CategoryCode,
			Price:          p.Price,
			Image:          p.Image,
			Brand:          p.Brand,
			Rating:         p.Rating,
			Description:    p.Description,
			Specs:          p.Specs,
			Specifications: p.Specifications,
			Stock:          50,
			Condition:      "New",
			Status:         entity.ProductStatusActive,
		})
	}
	return products
}
