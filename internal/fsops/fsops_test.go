package fsops

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendLineOnce(t *testing.T) {
	t.Parallel()

	const line = `eval "$(/opt/homebrew/bin/brew shellenv)"`

	t.Run("creates file and parent dir", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		added, err := AppendLineOnce(fs, "/home/dev/.zprofile", line)
		require.NoError(t, err)
		assert.True(t, added)

		data, err := afero.ReadFile(fs, "/home/dev/.zprofile")
		require.NoError(t, err)
		assert.Equal(t, line+"\n", string(data))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		_, err := AppendLineOnce(fs, "/home/dev/.zprofile", line)
		require.NoError(t, err)

		added, err := AppendLineOnce(fs, "/home/dev/.zprofile", line)
		require.NoError(t, err)
		assert.False(t, added)

		data, err := afero.ReadFile(fs, "/home/dev/.zprofile")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(data), "brew shellenv"))
	})

	t.Run("appends to existing content without a trailing newline", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/home/dev/.zprofile", []byte("export EDITOR=vim"), 0o644))

		added, err := AppendLineOnce(fs, "/home/dev/.zprofile", line)
		require.NoError(t, err)
		assert.True(t, added)

		data, err := afero.ReadFile(fs, "/home/dev/.zprofile")
		require.NoError(t, err)
		assert.Equal(t, "export EDITOR=vim\n"+line+"\n", string(data))
	})

	t.Run("matches lines ignoring surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/p", []byte("  "+line+"  \n"), 0o644))

		added, err := AppendLineOnce(fs, "/p", line)
		require.NoError(t, err)
		assert.False(t, added)
	})
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, WriteFileAtomic(fs, "/home/dev/.face", []byte("png")))

	data, err := afero.ReadFile(fs, "/home/dev/.face")
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	// overwrite works
	require.NoError(t, WriteFileAtomic(fs, "/home/dev/.face", []byte("png2")))
	data, err = afero.ReadFile(fs, "/home/dev/.face")
	require.NoError(t, err)
	assert.Equal(t, "png2", string(data))
}
