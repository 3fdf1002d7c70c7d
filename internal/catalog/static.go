package catalog

import (
	"context"
	_ "embed"
	"sync"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/havenlink/advisor/internal/model"
)

//go:embed static_catalog.yaml
var staticCatalogYAML []byte

// Static serves the embedded fallback catalog. Decoded once, shared
// afterward; callers must treat the returned products as read-only.
type Static struct {
	once     sync.Once
	products []model.Product
	err      error
}

// NewStatic creates the static fallback provider.
func NewStatic() *Static {
	return &Static{}
}

type staticFile struct {
	Products []staticProduct `yaml:"products"`
}

type staticProduct struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
	Brand       string  `yaml:"brand"`
	BasePrice   float64 `yaml:"base_price"`
	GoodPrice   float64 `yaml:"good_price"`
	BetterPrice float64 `yaml:"better_price"`
	BestPrice   float64 `yaml:"best_price"`
}

// ListActiveProducts decodes the embedded catalog on first use.
func (s *Static) ListActiveProducts(ctx context.Context) ([]model.Product, error) {
	s.once.Do(func() {
		var file staticFile
		if err := yaml.Unmarshal(staticCatalogYAML, &file); err != nil {
			s.err = eris.Wrap(err, "catalog: decode static catalog")
			return
		}
		for _, p := range file.Products {
			s.products = append(s.products, model.Product{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Category:    model.ParseCategory(p.Category),
				Brand:       p.Brand,
				BasePrice:   p.BasePrice,
				GoodPrice:   p.GoodPrice,
				BetterPrice: p.BetterPrice,
				BestPrice:   p.BestPrice,
				Active:      true,
			})
		}
	})
	return s.products, s.err
}
