package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardid/internal/card/http/dto"
	"github.com/allisson/cardid/internal/card/usecase/mocks"
)

func TestRunListCardTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunListCardTypes(ctx, newDefaultUseCase(t), &out, "text")

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "NAME")
		assert.Contains(t, output, "American Express")
		assert.Contains(t, output, "34, 37")
		assert.Contains(t, output, "UATP")
	})

	t.Run("json-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunListCardTypes(ctx, newDefaultUseCase(t), &out, "json")

		require.NoError(t, err)

		var response dto.ListCardTypesResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &response))
		assert.Len(t, response.Data, 13)
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &mocks.MockCardUseCase{}
		mockUseCase.On("CardTypes", ctx).Return(nil, errors.New("boom"))

		err := RunListCardTypes(ctx, mockUseCase, &bytes.Buffer{}, "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list card types")
		mockUseCase.AssertExpectations(t)
	})
}

func TestRunCheckDigit(t *testing.T) {
	ctx := context.Background()

	t.Run("text-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCheckDigit(ctx, newDefaultUseCase(t), &out, "411111111111111", "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "Check digit: 1")
		assert.Contains(t, out.String(), "Number: 4111111111111111")
	})

	t.Run("json-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunCheckDigit(ctx, newDefaultUseCase(t), &out, "37828224631000", "json")

		require.NoError(t, err)

		var response dto.CheckDigitResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &response))
		assert.Equal(t, 5, response.CheckDigit)
		assert.Equal(t, "378282246310005", response.Number)
	})

	t.Run("invalid-payload", func(t *testing.T) {
		err := RunCheckDigit(ctx, newDefaultUseCase(t), &bytes.Buffer{}, "12a", "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to compute check digit")
	})
}
