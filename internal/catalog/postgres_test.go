package catalog

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenlink/advisor/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	return NewPostgresFromPool(mock), mock
}

func TestPostgresStore_ListActiveProducts(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	rows := pgxmock.NewRows([]string{
		"id", "name", "description", "category", "brand",
		"base_price", "good_price", "better_price", "best_price",
	}).
		AddRow("p1", "Camera Kit", "Two outdoor cameras", "security", "Arlen",
			799.0, 649.0, 799.0, 999.0).
		AddRow("p2", "Mesh Router", "Tri-band mesh", "networking", "Gridline",
			399.0, 299.0, 399.0, 549.0)

	mock.ExpectQuery(`SELECT id, name, description, category, brand`).
		WillReturnRows(rows)

	products, err := s.ListActiveProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Camera Kit", products[0].Name)
	assert.Equal(t, model.CategorySecurity, products[0].Category)
	assert.True(t, products[0].Active)
	assert.Equal(t, model.CategoryNetworking, products[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListActiveProducts_QueryError(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, name`).
		WillReturnError(eris.New("connection refused"))

	_, err := s.ListActiveProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list products")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpsertProducts(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`ON CONFLICT \(id\) DO UPDATE`).
		WithArgs("p1", "Camera Kit", "desc", "security", "Arlen",
			799.0, 649.0, 799.0, 999.0, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n, err := s.UpsertProducts(context.Background(), []model.Product{{
		ID: "p1", Name: "Camera Kit", Description: "desc",
		Category: model.CategorySecurity, Brand: "Arlen",
		BasePrice: 799, GoodPrice: 649, BetterPrice: 799, BestPrice: 999,
		Active: true,
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpsertProducts_AssignsID(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`ON CONFLICT`).
		WithArgs(pgxmock.AnyArg(), "Unnamed Widget", "", "other", "",
			50.0, 0.0, 0.0, 0.0, true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	n, err := s.UpsertProducts(context.Background(), []model.Product{{
		Name: "Unnamed Widget", Category: model.CategoryOther, BasePrice: 50, Active: true,
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS products`).
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
