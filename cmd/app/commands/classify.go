package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/allisson/cardid/internal/card/http/dto"
	"github.com/allisson/cardid/internal/card/input"
	"github.com/allisson/cardid/internal/card/usecase"
)

// stdinArg makes RunClassify read numbers from the reader, one per line.
const stdinArg = "-"

// RunClassify classifies every number and writes one result per number in input order.
// A single "-" argument reads the numbers from streams.Reader instead.
// Malformed numbers are reported per entry and do not abort the others.
func RunClassify(
	ctx context.Context,
	cardUseCase usecase.CardUseCase,
	logger *slog.Logger,
	streams IOTuple,
	numbers []string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	locations := make([]string, len(numbers))
	for i := range numbers {
		locations[i] = fmt.Sprintf("#%d", i+1)
	}

	if len(numbers) == 1 && numbers[0] == stdinArg {
		entries, err := (&input.TextReader{}).Read(ctx, streams.Reader)
		if err != nil {
			return fmt.Errorf("failed to read card numbers: %w", err)
		}
		numbers = input.Values(entries)
		locations = make([]string, len(entries))
		for i, entry := range entries {
			locations[i] = entry.Location
		}
	}

	if len(numbers) == 0 {
		return errors.New("at least one card number is required")
	}

	items, err := cardUseCase.ClassifyBatch(ctx, numbers)
	if err != nil {
		return fmt.Errorf("failed to classify card numbers: %w", err)
	}

	response := dto.MapBatchToResponse(items)
	logger.Debug("classification completed",
		slog.Int("total", response.Summary.Total),
		slog.Int("valid", response.Summary.Valid))

	if format == "json" {
		return writeJSON(streams.Writer, response)
	}
	return writeBatchText(streams.Writer, locations, response)
}

// writeBatchText writes a tab aligned table followed by the summary line.
func writeBatchText(writer io.Writer, locations []string, response dto.ClassifyBatchResponse) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ENTRY\tNUMBER\tCARD TYPE\tRESULT")

	for _, item := range response.Data {
		location := locations[item.Index]
		if item.Result == nil {
			_, _ = fmt.Fprintf(tw, "%s\t-\t-\tmalformed: %s\n", location, item.Error)
			continue
		}

		cardType := "-"
		if item.Result.CardType != nil {
			cardType = item.Result.CardType.Name
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", location, item.Result.Number, cardType, describeResult(item.Result))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	s := response.Summary
	_, err := fmt.Fprintf(writer, "\n%d total, %d valid, %d invalid, %d unidentified, %d malformed\n",
		s.Total, s.Valid, s.Invalid, s.Unidentified, s.Malformed)
	return err
}

// describeResult explains the verdict of one classification.
func describeResult(result *dto.ClassifyCardResponse) string {
	switch {
	case result.Valid:
		return "valid"
	case !result.Identified:
		return "unidentified"
	case !result.LengthValid && !result.LuhnValid:
		return "invalid (length, checksum)"
	case !result.LengthValid:
		return "invalid (length)"
	default:
		return "invalid (checksum)"
	}
}
