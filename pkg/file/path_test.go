package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTempMakesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	f, err := CreateTemp(dir, ".employees.csv.*")
	require.NoError(t, err)
	_, err = f.WriteString("id\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, dir, filepath.Dir(f.Name()))
	exist, err := PathExists(f.Name())
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestOpenAppend(t *testing.T) {
	dir := t.TempDir()
	for _, line := range []string{"a\n", "b\n"} {
		f, err := OpenAppend(dir, "app.log")
		require.NoError(t, err)
		_, err = f.WriteString(line)
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}

	content, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))
}

func TestPathExistsMissing(t *testing.T) {
	exist, err := PathExists(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.False(t, exist)
}
