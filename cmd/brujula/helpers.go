package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/julialegal/brujula/internal/catalog"
	"github.com/julialegal/brujula/internal/classify"
	"github.com/julialegal/brujula/internal/config"
	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/storage"
)

// loadCatalog builds the catalog from the configured CSV, or the built-in
// catalog when none is configured.
func loadCatalog() (*catalog.Catalog, error) {
	path := viper.GetString("catalog.path")
	if path == "" {
		return catalog.New(catalog.DefaultTemplates())
	}

	cat, err := catalog.LoadCSV(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", path, err)
	}
	return cat, nil
}

// newEngine assembles the classification engine, honoring configured
// rootedness thresholds when present.
func newEngine(cat *catalog.Catalog) *classify.Engine {
	cfg := classify.DefaultConfig()
	if viper.IsSet("engine.labor_root_min_years") {
		cfg.LaborRootMinYears = viper.GetFloat64("engine.labor_root_min_years")
	}
	if viper.IsSet("engine.social_root_min_years") {
		cfg.SocialRootMinYears = viper.GetFloat64("engine.social_root_min_years")
	}
	return classify.NewWithConfig(cat, cfg)
}

// openStorage opens the session database and applies migrations.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.ExpandPath(viper.GetString("storage.database")))
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// readProfile decodes a profile from a JSON file, or stdin when path is "-".
func readProfile(path string) (*model.Profile, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(config.ExpandPath(path))
		if err != nil {
			return nil, fmt.Errorf("failed to open profile: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var p model.Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode profile JSON: %w", err)
	}
	return &p, nil
}

// writeJSON pretty-prints v to stdout.
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
