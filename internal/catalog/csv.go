package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julialegal/brujula/internal/model"
	"github.com/julialegal/brujula/internal/signal"
)

// Column headers of the catalog export. The sheet occasionally gains extra
// columns, so parsing is header-driven rather than positional.
const (
	colKey         = "template_key"
	colDescription = "descripcion"
	colContent     = "contenido"
	colPDFURL      = "pdf_url"
)

// LoadCSV reads a catalog CSV from disk and builds the catalog. Missing file
// or empty catalog is fatal at startup scope.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	templates, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return New(templates)
}

// ParseCSV parses catalog records from CSV content. Quoted fields may span
// lines (template bodies embed newlines), a UTF-8 BOM is tolerated, keys are
// whitespace-collapsed and rows without a key are skipped.
func ParseCSV(r io.Reader) ([]model.Template, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := cols[colKey]; !ok {
		return nil, fmt.Errorf("catalog header missing %q column", colKey)
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var templates []model.Template
	for {
		row, readErr := reader.Read()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read row: %w", readErr)
		}

		key := signal.CollapseSpaces(field(row, colKey))
		if key == "" {
			continue
		}
		templates = append(templates, model.Template{
			Key:         key,
			Description: field(row, colDescription),
			Content:     field(row, colContent),
			PDFURL:      field(row, colPDFURL),
		})
	}
	return templates, nil
}
