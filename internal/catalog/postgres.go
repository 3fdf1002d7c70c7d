package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/havenlink/advisor/internal/model"
)

// Pool is the subset of pgxpool.Pool the catalog store uses. pgxmock
// satisfies it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: connect postgres")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "catalog: ping postgres")
	}
	return &PostgresStore{pool: pool}, nil
}

// NewPostgresFromPool wraps an existing pool. Used by tests.
func NewPostgresFromPool(pool Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS products (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL,
	brand        TEXT NOT NULL DEFAULT '',
	base_price   DOUBLE PRECISION NOT NULL,
	good_price   DOUBLE PRECISION NOT NULL DEFAULT 0,
	better_price DOUBLE PRECISION NOT NULL DEFAULT 0,
	best_price   DOUBLE PRECISION NOT NULL DEFAULT 0,
	active       BOOLEAN NOT NULL DEFAULT TRUE,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_active ON products(active);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "catalog: migrate postgres")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) ListActiveProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, description, category, brand, base_price, good_price, better_price, best_price
		 FROM products WHERE active ORDER BY category, name`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: list products")
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &category, &p.Brand,
			&p.BasePrice, &p.GoodPrice, &p.BetterPrice, &p.BestPrice); err != nil {
			return nil, eris.Wrap(err, "catalog: scan product")
		}
		p.Category = model.ParseCategory(category)
		p.Active = true
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "catalog: iterate products")
	}
	return products, nil
}

func (s *PostgresStore) UpsertProducts(ctx context.Context, products []model.Product) (int, error) {
	written := 0
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		_, err := s.pool.Exec(ctx,
			`INSERT INTO products (id, name, description, category, brand, base_price, good_price, better_price, best_price, active, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
			 ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				category = EXCLUDED.category,
				brand = EXCLUDED.brand,
				base_price = EXCLUDED.base_price,
				good_price = EXCLUDED.good_price,
				better_price = EXCLUDED.better_price,
				best_price = EXCLUDED.best_price,
				active = EXCLUDED.active,
				updated_at = now()`,
			p.ID, p.Name, p.Description, string(p.Category), p.Brand,
			p.BasePrice, p.GoodPrice, p.BetterPrice, p.BestPrice, p.Active,
		)
		if err != nil {
			return written, eris.Wrapf(err, "catalog: upsert product %s", p.ID)
		}
		written++
	}
	return written, nil
}
