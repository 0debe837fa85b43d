package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/cardid/internal/errors"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// ParsePagination parses the offset and limit query parameters.
// Defaults are 0 and 50; limit cannot exceed 100. Errors wrap ErrInvalidInput.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"invalid offset parameter: must be a non-negative integer",
		)
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid limit parameter: must be between 1 and 100")
	}

	return offset, limit, nil
}

// Paginate returns the window of items selected by offset and limit.
// An offset past the end yields an empty slice.
func Paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}
