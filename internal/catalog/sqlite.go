package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/havenlink/advisor/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "catalog: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS products (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	category     TEXT NOT NULL,
	brand        TEXT NOT NULL DEFAULT '',
	base_price   REAL NOT NULL,
	good_price   REAL NOT NULL DEFAULT 0,
	better_price REAL NOT NULL DEFAULT 0,
	best_price   REAL NOT NULL DEFAULT 0,
	active       INTEGER NOT NULL DEFAULT 1,
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_active ON products(active);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "catalog: migrate sqlite")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListActiveProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, category, brand, base_price, good_price, better_price, best_price
		 FROM products WHERE active = 1 ORDER BY category, name`,
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

func (s *SQLiteStore) UpsertProducts(ctx context.Context, products []model.Product) (int, error) {
	written := 0
	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		active := 0
		if p.Active {
			active = 1
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO products (id, name, description, category, brand, base_price, good_price, better_price, best_price, active, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
			 ON CONFLICT (id) DO UPDATE SET
				name = excluded.name,
				description = excluded.description,
				category = excluded.category,
				brand = excluded.brand,
				base_price = excluded.base_price,
				good_price = excluded.good_price,
				better_price = excluded.better_price,
				best_price = excluded.best_price,
				active = excluded.active,
				updated_at = datetime('now')`,
			p.ID, p.Name, p.Description, string(p.Category), p.Brand,
			p.BasePrice, p.GoodPrice, p.BetterPrice, p.BestPrice, active,
		)
		if err != nil {
			return written, eris.Wrapf(err, "catalog: upsert product %s", p.ID)
		}
		written++
	}
	return written, nil
}
