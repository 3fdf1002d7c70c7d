package catalog

// Store is the admin-side interface over a live catalog backend. The
// recommendation path only ever sees the Provider half.
import (
	"context"

	"github.com/havenlink/advisor/internal/model"
)

// Store defines the persistence interface for the product catalog.
type Store interface {
	Provider

	// UpsertProducts inserts or updates products by ID, returning the
	// number of rows written. Products without an ID are assigned one.
	UpsertProducts(ctx context.Context, products []model.Product) (int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
