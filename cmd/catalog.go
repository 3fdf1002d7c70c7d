package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/havenlink/advisor/internal/catalog"
	"github.com/havenlink/advisor/internal/fetcher"
	"github.com/havenlink/advisor/internal/model"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the product catalog backend",
}

var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := requireCatalogStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Migrate(cmd.Context()); err != nil {
			return eris.Wrap(err, "migrate catalog")
		}
		zap.L().Info("catalog schema up to date")
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <file.csv|file.xlsx>",
	Short: "Import products from a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var (
			products []model.Product
			err      error
		)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			f, openErr := os.Open(path)
			if openErr != nil {
				return eris.Wrapf(openErr, "open %s", path)
			}
			defer f.Close()
			products, err = fetcher.ReadProductsCSV(f)
		case ".xlsx":
			products, err = fetcher.ReadProductsXLSX(path)
		default:
			return eris.Errorf("unsupported file type %q, want .csv or .xlsx", filepath.Ext(path))
		}
		if err != nil {
			return eris.Wrapf(err, "read %s", path)
		}
		if len(products) == 0 {
			return eris.New("no products found in file")
		}

		store, err := requireCatalogStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Migrate(cmd.Context()); err != nil {
			return eris.Wrap(err, "migrate catalog")
		}

		n, err := store.UpsertProducts(cmd.Context(), products)
		if err != nil {
			return eris.Wrap(err, "upsert products")
		}
		zap.L().Info("catalog import complete",
			zap.String("file", path),
			zap.Int("read", len(products)),
			zap.Int("written", n))
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active products from the configured backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		var provider catalog.Provider
		if cfg.Catalog.Driver == "" || cfg.Catalog.Driver == "static" {
			provider = catalog.NewStatic()
		} else {
			store, err := requireCatalogStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()
			provider = store
		}

		products, err := provider.ListActiveProducts(cmd.Context())
		if err != nil {
			return eris.Wrap(err, "list products")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(products)
	},
}

// requireCatalogStore opens the configured backend and errors when the
// static driver is selected, since admin operations need a writable store.
func requireCatalogStore(ctx context.Context) (catalog.Store, error) {
	store, err := openCatalogStore(ctx)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, eris.New("catalog driver is static; set ADVISOR_CATALOG_DRIVER to postgres or sqlite")
	}
	return store, nil
}

func init() {
	catalogCmd.AddCommand(catalogMigrateCmd, catalogImportCmd, catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
