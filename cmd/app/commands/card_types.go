package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/allisson/cardid/internal/card/http/dto"
	"github.com/allisson/cardid/internal/card/usecase"
)

// RunListCardTypes writes the catalog card types in priority order.
func RunListCardTypes(ctx context.Context, cardUseCase usecase.CardUseCase, writer io.Writer, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	cardTypes, err := cardUseCase.CardTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list card types: %w", err)
	}

	response := dto.MapCardTypesToListResponse(cardTypes)
	if format == "json" {
		return writeJSON(writer, response)
	}

	return writeCardTypesTable(writer, response)
}

// writeCardTypesTable writes one row per card type with its patterns and lengths.
func writeCardTypesTable(writer io.Writer, response dto.ListCardTypesResponse) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tPATTERNS\tLENGTHS")
	for _, cardType := range response.Data {
		lengths := make([]string, 0, len(cardType.ValidLengths))
		for _, l := range cardType.ValidLengths {
			lengths = append(lengths, fmt.Sprint(l))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n",
			cardType.Name,
			strings.Join(cardType.NumberPatterns, ", "),
			strings.Join(lengths, ", "))
	}
	return tw.Flush()
}

// RunCheckDigit computes the Luhn check digit of payload and writes the completed number.
func RunCheckDigit(ctx context.Context, cardUseCase usecase.CardUseCase, writer io.Writer, payload, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	digit, err := cardUseCase.CheckDigit(ctx, payload)
	if err != nil {
		return fmt.Errorf("failed to compute check digit: %w", err)
	}

	response := dto.CheckDigitResponse{
		Payload:    payload,
		CheckDigit: digit,
		Number:     fmt.Sprintf("%s%d", payload, digit),
	}
	if format == "json" {
		return writeJSON(writer, response)
	}

	_, err = fmt.Fprintf(writer, "Check digit: %d\nNumber: %s\n", response.CheckDigit, response.Number)
	return err
}
