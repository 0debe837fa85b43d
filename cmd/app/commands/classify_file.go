package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/allisson/cardid/internal/card/http/dto"
	"github.com/allisson/cardid/internal/card/input"
	"github.com/allisson/cardid/internal/card/usecase"
)

// ClassifyFileResult is the JSON output of RunClassifyFile.
type ClassifyFileResult struct {
	File    string              `json:"file"`
	Data    []ClassifyFileEntry `json:"data"`
	Summary dto.BatchSummary    `json:"summary"`
}

// ClassifyFileEntry is one classified entry together with its location in the file.
type ClassifyFileEntry struct {
	Location string                    `json:"location"`
	Result   *dto.ClassifyCardResponse `json:"result,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

// RunClassifyFile reads card numbers from a text, CSV or Excel file and classifies them.
func RunClassifyFile(
	ctx context.Context,
	cardUseCase usecase.CardUseCase,
	logger *slog.Logger,
	writer io.Writer,
	path string,
	opts input.Options,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	entries, err := input.ReadFile(ctx, path, opts)
	if err != nil {
		return err
	}

	logger.Info("classifying file",
		slog.String("file", path),
		slog.Int("entries", len(entries)))

	items, err := cardUseCase.ClassifyBatch(ctx, input.Values(entries))
	if err != nil {
		return fmt.Errorf("failed to classify %s: %w", path, err)
	}

	response := dto.MapBatchToResponse(items)

	if format == "json" {
		result := ClassifyFileResult{
			File:    path,
			Data:    make([]ClassifyFileEntry, 0, len(response.Data)),
			Summary: response.Summary,
		}
		for _, item := range response.Data {
			result.Data = append(result.Data, ClassifyFileEntry{
				Location: entries[item.Index].Location,
				Result:   item.Result,
				Error:    item.Error,
			})
		}
		return writeJSON(writer, result)
	}

	locations := make([]string, len(entries))
	for i, e := range entries {
		locations[i] = e.Location
	}
	return writeBatchText(writer, locations, response)
}
