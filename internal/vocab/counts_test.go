package vocab

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountsJSONRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "counts.json")

	want := Counts{100, 50, 25, 1}
	require.NoError(t, want.SaveJSON(path))

	got, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadJSONMissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
