package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/allisson/cardid/internal/card/domain"
	"github.com/allisson/cardid/internal/errors"
)

// CatalogDocument is the JSON layout of a catalog file:
//
//	{"cardTypes": [{"name": "Visa", "numberPatterns": ["4"], "validLengths": [13, 16]}]}
type CatalogDocument struct {
	CardTypes []CardTypeDefinition `json:"cardTypes"`
}

// LoadCatalogJSON decodes a catalog document from r and builds the catalog.
func LoadCatalogJSON(r io.Reader, opts CatalogOptions) (*domain.Catalog, error) {
	var doc CatalogDocument

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("failed to decode catalog: %v", err))
	}

	return BuildCatalog(doc.CardTypes, opts)
}

// LoadCatalogFile reads a JSON catalog document from path.
func LoadCatalogFile(path string, opts CatalogOptions) (*domain.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer func() { _ = f.Close() }()

	catalog, err := LoadCatalogJSON(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// MarshalCatalogJSON encodes the catalog in the same layout LoadCatalogJSON reads.
func MarshalCatalogJSON(catalog *domain.Catalog) ([]byte, error) {
	return json.MarshalIndent(CatalogDocument{CardTypes: ToDefinitions(catalog)}, "", "  ")
}
