package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/cardid/internal/card/domain"
	"github.com/allisson/cardid/internal/card/http/dto"
	"github.com/allisson/cardid/internal/card/service"
)

// CatalogValidationResult is the JSON output of RunValidateCatalog.
type CatalogValidationResult struct {
	File      string   `json:"file"`
	Valid     bool     `json:"valid"`
	CardTypes int      `json:"card_types"`
	Errors    []string `json:"errors,omitempty"`
}

// RunValidateCatalog loads a catalog file and reports every invalid definition.
// Returns an error when the catalog is invalid so the process exits non-zero.
func RunValidateCatalog(logger *slog.Logger, writer io.Writer, path string, requireNames bool, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	result := CatalogValidationResult{File: path}

	catalog, loadErr := service.LoadCatalogFile(path, service.CatalogOptions{RequireNames: requireNames})
	if loadErr == nil {
		result.Valid = true
		result.CardTypes = catalog.Len()
	} else {
		var defErrs service.DefinitionErrors
		if errors.As(loadErr, &defErrs) {
			for _, e := range defErrs {
				result.Errors = append(result.Errors, e.Error())
			}
		} else {
			result.Errors = []string{loadErr.Error()}
		}
	}

	logger.Debug("catalog validated",
		slog.String("file", path),
		slog.Bool("valid", result.Valid))

	var err error
	if format == "json" {
		err = writeJSON(writer, result)
	} else {
		err = writeCatalogValidationText(writer, result)
	}
	if err != nil {
		return err
	}

	if loadErr != nil {
		return fmt.Errorf("catalog %s is invalid", path)
	}
	return nil
}

func writeCatalogValidationText(writer io.Writer, result CatalogValidationResult) error {
	if result.Valid {
		_, err := fmt.Fprintf(writer, "Catalog %s is valid: %d card type(s)\n", result.File, result.CardTypes)
		return err
	}

	if _, err := fmt.Fprintf(writer, "Catalog %s is invalid:\n", result.File); err != nil {
		return err
	}
	for _, e := range result.Errors {
		if _, err := fmt.Fprintf(writer, "  - %s\n", e); err != nil {
			return err
		}
	}
	return nil
}

// RunExportCatalog writes catalog. The json format is the catalog file format, typically
// used to dump the built-in catalog as a starting point for a custom one; text prints a
// table in priority order.
func RunExportCatalog(writer io.Writer, catalog *domain.Catalog, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if format == "text" {
		return writeCardTypesTable(writer, dto.MapCardTypesToListResponse(catalog.CardTypes()))
	}

	data, err := service.MarshalCatalogJSON(catalog)
	if err != nil {
		return fmt.Errorf("failed to export catalog: %w", err)
	}
	_, err = fmt.Fprintln(writer, string(data))
	return err
}
