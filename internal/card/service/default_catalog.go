package service

import (
	"bytes"
	_ "embed"
	"sync"

	"github.com/allisson/cardid/internal/card/domain"
)

//go:embed default_card_types.json
var defaultCardTypesJSON []byte

var loadDefaultCatalog = sync.OnceValues(func() (*domain.Catalog, error) {
	return LoadCatalogJSON(bytes.NewReader(defaultCardTypesJSON), CatalogOptions{RequireNames: true})
})

// DefaultCatalog returns the built-in catalog of well known card networks.
// The catalog is parsed once and shared; it is immutable.
func DefaultCatalog() (*domain.Catalog, error) {
	return loadDefaultCatalog()
}
