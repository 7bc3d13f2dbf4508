package theme

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lumeerrors "github.com/lumeui/lume/pkg/errors"
	"github.com/lumeui/lume/tokens"
)

func TestDefaultThemeIsComplete(t *testing.T) {
	t.Parallel()

	theme := Default()
	assert.Equal(t, "lume", theme.Name)
	assert.NotEmpty(t, theme.Font)
	assert.NotEmpty(t, theme.Surface)
	assert.Equal(t, tokens.VariantDefault, theme.Defaults.Variant)
	assert.Equal(t, tokens.SizeMD, theme.Defaults.Size)
}

func TestManagerNormalizesPartialThemes(t *testing.T) {
	t.Parallel()

	manager := NewManager(Theme{Name: "midnight", Surface: "bg-zinc-950 text-zinc-100"})
	got := manager.Current()

	assert.Equal(t, "midnight", got.Name)
	assert.Equal(t, "bg-zinc-950 text-zinc-100", got.Surface)
	assert.Equal(t, Default().Font, got.Font)
	assert.Equal(t, Default().Defaults, got.Defaults)
}

func TestManagerConcurrentAccess(t *testing.T) {
	t.Parallel()

	manager := NewManager(Default())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			manager.Set(Theme{Name: "midnight"})
		}()
		go func() {
			defer wg.Done()
			_ = manager.Current()
		}()
	}
	wg.Wait()

	assert.Equal(t, "midnight", manager.Current().Name)
}

func writeThemeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadValidTheme(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, `
name: ocean
font: font-serif
defaults:
  color: info
  size: lg
`)

	theme, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ocean", theme.Name)
	assert.Equal(t, "font-serif", theme.Font)
	assert.Equal(t, tokens.ColorInfo, theme.Defaults.Color)
	assert.Equal(t, tokens.SizeLG, theme.Defaults.Size)
	// Unset slots are filled from the built-in theme.
	assert.Equal(t, Default().Surface, theme.Surface)
	assert.Equal(t, Default().Defaults.Variant, theme.Defaults.Variant)
}

func TestLoadRejectsUnknownTokens(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, `
name: broken
defaults:
  color: vermilion
`)

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *lumeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "Color")
}

func TestLoadRejectsMissingName(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "font: font-mono\n")

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *lumeerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestLoadReportsParseErrors(t *testing.T) {
	t.Parallel()

	path := writeThemeFile(t, "name: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *lumeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *lumeerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
