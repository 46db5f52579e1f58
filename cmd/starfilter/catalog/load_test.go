package catalog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadStars(t *testing.T) {
	path := writeCatalog(t, "hd.json", `[
  {"hd": 1, "mag": 2.0, "proper": "Alpha"},
  {"hd": 2, "mag": 6.0}
]`)

	stars, err := LoadStars(path)
	require.NoError(t, err)
	require.Len(t, stars, 2)

	assert.Equal(t, json.Number("2.0"), stars[0]["mag"])
	assert.Equal(t, "Alpha", stars[0]["proper"])

	id, ok := stars[1].HD()
	require.True(t, ok)
	assert.Equal(t, NumericID(2), id)
}

func TestLoadStarsEmptyArray(t *testing.T) {
	path := writeCatalog(t, "hd.json", "[]\n")

	stars, err := LoadStars(path)
	require.NoError(t, err)
	assert.Empty(t, stars)
}

func TestLoadAsterisms(t *testing.T) {
	path := writeCatalog(t, "asterisms.json", `[
  {"name": "Summer Triangle", "stars": [172167, 197345, 187642]},
  {"name": "Edges", "stars": [[1, 2], [2, 3]]}
]`)

	asterisms, err := LoadAsterisms(path)
	require.NoError(t, err)
	require.Len(t, asterisms, 2)
	assert.Len(t, asterisms[0].Stars, 3)
	assert.Len(t, asterisms[1].Stars, 2)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  *string
		expected error
	}{
		{
			name:     "Missing file",
			content:  nil,
			expected: ErrNotFound,
		},
		{
			name:     "Malformed JSON",
			content:  ptr(`[{"hd": 1,`),
			expected: ErrParse,
		},
		{
			name:     "Object instead of array",
			content:  ptr(`{"hd": 1}`),
			expected: ErrParse,
		},
		{
			name:     "Null document",
			content:  ptr(`null`),
			expected: ErrParse,
		},
		{
			name:     "Empty file",
			content:  ptr(""),
			expected: ErrParse,
		},
		{
			name:     "Trailing data",
			content:  ptr(`[{"hd": 1}] [{"hd": 2}]`),
			expected: ErrParse,
		},
		{
			name:     "Array of numbers",
			content:  ptr(`[1, 2, 3]`),
			expected: ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "hd.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			_, err := LoadStars(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Path)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoadDirectoryIsIOError(t *testing.T) {
	_, err := LoadAsterisms(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func ptr(s string) *string {
	return &s
}
