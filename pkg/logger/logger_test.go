package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFileTarget(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wedshare.log")
	l := New(&Config{
		Filename: path,
		LogLevel: "debug",
		Targets:  []string{TargetFile},
		MaxSize:  1,
	})

	l.Infow("photo created", "id", "abc")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "photo created")
	assert.Contains(t, string(data), `"id":"abc"`)
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wedshare.log")
	l := New(&Config{
		Filename: path,
		LogLevel: "error",
		Targets:  []string{TargetFile},
	})

	l.Infow("ignored")
	l.Errorw("kept")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ignored")
	assert.Contains(t, string(data), "kept")
}

func TestNewWithoutTargetsFallsBackToConsole(t *testing.T) {
	t.Parallel()

	l := New(&Config{LogLevel: "not-a-level"})
	assert.NotNil(t, l)
}
