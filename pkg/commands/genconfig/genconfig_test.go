package genconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/wordstorm/pkg/config"
	"github.com/arthur-debert/wordstorm/pkg/errors"
	"github.com/arthur-debert/wordstorm/pkg/paths"
	"github.com/arthur-debert/wordstorm/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("defaults to stdout", func(t *testing.T) {
		result, err := GenConfig(GenConfigOptions{})

		require.NoError(t, err)
		assert.Equal(t, config.GetDefaultsContent(), result.ConfigContent)
		assert.Contains(t, result.ConfigContent, "# This is the config file for wordstorm")
		assert.Empty(t, result.FilesWritten)
		assert.Empty(t, result.FilesSkipped)
	})

	t.Run("effective config as yaml", func(t *testing.T) {
		cfg, err := config.Load(config.LoadOptions{SkipEnv: true})
		require.NoError(t, err)
		cfg.Target = 99

		result, err := GenConfig(GenConfigOptions{Config: cfg, Format: config.FormatYAML})
		require.NoError(t, err)
		assert.Contains(t, result.ConfigContent, "target: 99")
		assert.Contains(t, result.ConfigContent, "min_length: 8")
		assert.False(t, strings.HasPrefix(result.ConfigContent, "#"))
	})

	t.Run("unknown format", func(t *testing.T) {
		cfg, err := config.Load(config.LoadOptions{SkipEnv: true})
		require.NoError(t, err)

		_, err = GenConfig(GenConfigOptions{Config: cfg, Format: "xml"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("write to user config dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested")
		t.Setenv(paths.EnvConfigDir, dir)

		result, err := GenConfig(GenConfigOptions{Write: true, Paths: paths.New()})
		require.NoError(t, err)

		target := filepath.Join(dir, paths.ConfigFileName)
		assert.Equal(t, []string{target}, result.FilesWritten)

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, config.GetDefaultsContent(), string(content))

		// The written file loads back as the defaults.
		cfg, err := config.Load(config.LoadOptions{Paths: paths.New(), SkipEnv: true})
		require.NoError(t, err)
		assert.Equal(t, int64(20_000_000), cfg.Target)
	})

	t.Run("existing file is skipped", func(t *testing.T) {
		target := testutil.CreateFile(t, t.TempDir(), "wordstorm.toml", "target = 5\n")

		result, err := GenConfig(GenConfigOptions{Write: true, Path: target})
		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)
		assert.Equal(t, []string{target}, result.FilesSkipped)

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "target = 5\n", string(content))
	})

	t.Run("force overwrites", func(t *testing.T) {
		target := testutil.CreateFile(t, t.TempDir(), "wordstorm.toml", "target = 5\n")

		result, err := GenConfig(GenConfigOptions{Write: true, Path: target, Force: true})
		require.NoError(t, err)
		assert.Equal(t, []string{target}, result.FilesWritten)

		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[suffixes]")
	})

	t.Run("unwritable directory", func(t *testing.T) {
		blocker := testutil.Blocker(t)

		_, err := GenConfig(GenConfigOptions{Write: true, Path: filepath.Join(blocker, "wordstorm.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsIO(err))
	})
}
