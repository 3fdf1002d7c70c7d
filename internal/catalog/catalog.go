// Package catalog supplies the product catalog: live Postgres/SQLite
// backends plus an embedded static fallback used whenever the live source
// fails. Products are read-only as far as the recommendation path is
// concerned.
package catalog

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/havenlink/advisor/internal/model"
)

// ErrNoProducts is returned when the live catalog failed AND the fallback
// has nothing to offer. Only total exhaustion surfaces to callers.
var ErrNoProducts = eris.New("catalog: no products available")

// Provider supplies active products with per-tier prices.
type Provider interface {
	ListActiveProducts(ctx context.Context) ([]model.Product, error)
}

// Resilient wraps a live Provider with the static fallback catalog. Any
// error (or empty result) from the live source degrades to the fallback;
// the recommendation path stays completable with zero live dependencies.
type Resilient struct {
	live     Provider
	fallback Provider
}

// NewResilient creates a Resilient provider. A nil live provider means
// fallback-only operation.
func NewResilient(live Provider) *Resilient {
	return &Resilient{live: live, fallback: NewStatic()}
}

// ListActiveProducts returns the live catalog when possible, the static
// fallback otherwise. ErrNoProducts only when both are empty.
func (r *Resilient) ListActiveProducts(ctx context.Context) ([]model.Product, error) {
	if r.live != nil {
		products, err := r.live.ListActiveProducts(ctx)
		if err == nil && len(products) > 0 {
			return products, nil
		}
		if err != nil {
			zap.L().Warn("catalog: live fetch failed, using static fallback", zap.Error(err))
		} else {
			zap.L().Warn("catalog: live catalog empty, using static fallback")
		}
	}

	products, err := r.fallback.ListActiveProducts(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return products, nil
}
