package paths

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("env_overrides", func(t *testing.T) {
		cfgDir := t.TempDir()
		stateDir := t.TempDir()
		t.Setenv(EnvConfigDir, cfgDir)
		t.Setenv(EnvStateDir, stateDir)

		p := New()
		assert.Equal(t, cfgDir, p.ConfigDir())
		assert.Equal(t, stateDir, p.StateDir())
		assert.Equal(t, filepath.Join(cfgDir, ConfigFileName), p.ConfigFilePath())
		assert.Equal(t, filepath.Join(stateDir, LogFileName), p.LogFilePath())
	})

	t.Run("xdg_defaults", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "")
		t.Setenv(EnvStateDir, "")

		p := New()
		assert.Equal(t, AppDirName, filepath.Base(p.ConfigDir()))
		assert.Equal(t, AppDirName, filepath.Base(p.StateDir()))
	})
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/lists/out.txt", filepath.Join(home, "lists", "out.txt")},
		{"~other/out.txt", "~other/out.txt"},
		{"/abs/out.txt", "/abs/out.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestResolveOutput(t *testing.T) {
	t.Run("stdout_marker_unchanged", func(t *testing.T) {
		got, err := ResolveOutput("-")
		require.NoError(t, err)
		assert.Equal(t, "-", got)
		assert.True(t, IsStdout(got))
	})

	t.Run("relative_becomes_absolute", func(t *testing.T) {
		got, err := ResolveOutput("ultra_wordlist.txt")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "ultra_wordlist.txt", filepath.Base(got))
	})

	t.Run("empty_is_invalid", func(t *testing.T) {
		_, err := ResolveOutput("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
