package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardid/internal/card/service"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunValidateCatalog(t *testing.T) {
	logger := discardLogger()

	t.Run("valid-text", func(t *testing.T) {
		path := writeCatalogFile(t, `{"cardTypes":[{"name":"Local","numberPatterns":["9"],"validLengths":[16]}]}`)

		var out bytes.Buffer
		err := RunValidateCatalog(logger, &out, path, true, "text")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "is valid: 1 card type(s)")
	})

	t.Run("invalid-definitions-json", func(t *testing.T) {
		path := writeCatalogFile(t, `{"cardTypes":[
			{"name":"","numberPatterns":["9"],"validLengths":[16]},
			{"name":"Bad","numberPatterns":["x"],"validLengths":[16]}
		]}`)

		var out bytes.Buffer
		err := RunValidateCatalog(logger, &out, path, true, "json")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is invalid")

		var result CatalogValidationResult
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.False(t, result.Valid)
		require.Len(t, result.Errors, 2)
		assert.Contains(t, result.Errors[0], "definition 0")
		assert.Contains(t, result.Errors[1], "definition 1")
	})

	t.Run("malformed-json-text", func(t *testing.T) {
		path := writeCatalogFile(t, `{"cardTypes":`)

		var out bytes.Buffer
		err := RunValidateCatalog(logger, &out, path, true, "text")

		require.Error(t, err)
		assert.Contains(t, out.String(), "is invalid:")
		assert.Contains(t, out.String(), "failed to decode catalog")
	})
}

func TestRunExportCatalog(t *testing.T) {
	catalog, err := service.DefaultCatalog()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RunExportCatalog(&out, catalog, "json"))

	reloaded, err := service.LoadCatalogJSON(&out, service.CatalogOptions{RequireNames: true})
	require.NoError(t, err)
	assert.Equal(t, catalog.Len(), reloaded.Len())
}

func TestRunExportCatalog_TextFormat(t *testing.T) {
	catalog, err := service.DefaultCatalog()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, RunExportCatalog(&out, catalog, "text"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, catalog.Len()+1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.True(t, strings.HasPrefix(lines[1], catalog.CardTypes()[0].Name()))
}

func TestRunExportCatalog_InvalidFormat(t *testing.T) {
	catalog, err := service.DefaultCatalog()
	require.NoError(t, err)

	var out bytes.Buffer
	err = RunExportCatalog(&out, catalog, "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Empty(t, out.String())
}
