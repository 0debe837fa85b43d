package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardid/internal/card/http/dto"
	"github.com/allisson/cardid/internal/card/usecase/mocks"
)

func TestRunClassify(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	t.Run("text-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunClassify(ctx, newDefaultUseCase(t), logger, IOTuple{Writer: &out},
			[]string{"4111 1111 1111 1111", "4000000000000000", "9999 9999", "41x1"}, "text")

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "411111******1111")
		assert.Contains(t, output, "Visa")
		assert.Contains(t, output, "invalid (checksum)")
		assert.Contains(t, output, "unidentified")
		assert.Contains(t, output, "malformed")
		assert.Contains(t, output, "4 total, 1 valid, 1 invalid, 1 unidentified, 1 malformed")
		assert.NotContains(t, output, "4111111111111111")
	})

	t.Run("json-output", func(t *testing.T) {
		var out bytes.Buffer
		err := RunClassify(ctx, newDefaultUseCase(t), logger, IOTuple{Writer: &out}, []string{"378282246310005"}, "json")

		require.NoError(t, err)

		var response dto.ClassifyBatchResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &response))
		require.Len(t, response.Data, 1)
		require.NotNil(t, response.Data[0].Result)
		assert.Equal(t, "American Express", response.Data[0].Result.CardType.Name)
		assert.Equal(t, 1, response.Summary.Valid)
	})

	t.Run("no-numbers", func(t *testing.T) {
		err := RunClassify(ctx, &mocks.MockCardUseCase{}, logger, IOTuple{Writer: &bytes.Buffer{}}, nil, "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one card number is required")
	})

	t.Run("numbers-from-reader", func(t *testing.T) {
		var out bytes.Buffer
		streams := IOTuple{
			Reader: strings.NewReader("# batch\n4111 1111 1111 1111\n\n378282246310005\n"),
			Writer: &out,
		}
		err := RunClassify(ctx, newDefaultUseCase(t), logger, streams, []string{"-"}, "text")

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "line 2")
		assert.Contains(t, output, "line 4")
		assert.Contains(t, output, "American Express")
		assert.Contains(t, output, "2 total, 2 valid")
	})

	t.Run("empty-reader", func(t *testing.T) {
		streams := IOTuple{Reader: strings.NewReader("\n# nothing\n"), Writer: &bytes.Buffer{}}
		err := RunClassify(ctx, &mocks.MockCardUseCase{}, logger, streams, []string{"-"}, "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one card number is required")
	})

	t.Run("invalid-format", func(t *testing.T) {
		err := RunClassify(ctx, &mocks.MockCardUseCase{}, logger, IOTuple{Writer: &bytes.Buffer{}}, []string{"4111"}, "xml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("use-case-error", func(t *testing.T) {
		mockUseCase := &mocks.MockCardUseCase{}
		mockUseCase.On("ClassifyBatch", ctx, []string{"4111"}).Return(nil, errors.New("boom"))

		err := RunClassify(ctx, mockUseCase, logger, IOTuple{Writer: &bytes.Buffer{}}, []string{"4111"}, "text")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to classify card numbers: boom")
		mockUseCase.AssertExpectations(t)
	})
}

func TestDescribeResult(t *testing.T) {
	tests := []struct {
		name     string
		result   dto.ClassifyCardResponse
		expected string
	}{
		{"valid", dto.ClassifyCardResponse{Valid: true, Identified: true}, "valid"},
		{"unidentified", dto.ClassifyCardResponse{}, "unidentified"},
		{"bad length", dto.ClassifyCardResponse{Identified: true, LuhnValid: true}, "invalid (length)"},
		{"bad checksum", dto.ClassifyCardResponse{Identified: true, LengthValid: true}, "invalid (checksum)"},
		{"both", dto.ClassifyCardResponse{Identified: true}, "invalid (length, checksum)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, describeResult(&tt.result))
		})
	}
}
