package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
rules:
  max-depth:
    max: 3
  no-shadow:
  no-sequence:
    enabled: false
`

const tomlConfig = `
[rules.max-depth]
max = 3

[rules.no-shadow]

[rules.no-sequence]
enabled = false
`

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"yaml", yamlConfig, FormatYAML},
		{"toml", tomlConfig, FormatTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			require.Len(t, cfg.Rules, 3)

			max, err := cfg.Rules["max-depth"].Int("max", 0)
			require.NoError(t, err)
			assert.Equal(t, 3, max)
			assert.True(t, cfg.Rules["no-shadow"].Enabled())
			assert.False(t, cfg.Rules["no-sequence"].Enabled())

			l, err := New(DefaultRegistry(), cfg)
			require.NoError(t, err)
			assert.Equal(t, []string{"max-depth", "no-shadow"}, l.Rules())
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("rules: [1, 2"), FormatYAML)
	assert.ErrorContains(t, err, "yaml")

	_, err = Parse([]byte("[rules"), FormatTOML)
	assert.ErrorContains(t, err, "toml")

	_, err = Parse(nil, Format(9))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string]string{
		"lint.yml":  yamlConfig,
		"lint.YAML": yamlConfig,
		"lint.toml": tomlConfig,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err, name)
		assert.Len(t, cfg.Rules, 3, name)
	}

	_, err := Load(filepath.Join(dir, "lint.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b/c.Toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)
	assert.Equal(t, "toml", f.String())
	assert.Equal(t, "unknown", Format(7).String())
}

func TestDefaultConfig(t *testing.T) {
	reg := DefaultRegistry()
	cfg := DefaultConfig(reg)
	assert.Len(t, cfg.Rules, len(reg.Names()))

	l, err := New(reg, cfg)
	require.NoError(t, err)
	assert.Equal(t, reg.Names(), l.Rules())
}

func TestParseListOption(t *testing.T) {
	for _, tc := range []struct {
		format Format
		data   string
	}{
		{FormatYAML, "rules:\n  no-unused-toplevel:\n    ignore: [main, init]\n"},
		{FormatTOML, "[rules.no-unused-toplevel]\nignore = [\"main\", \"init\"]\n"},
	} {
		cfg, err := Parse([]byte(tc.data), tc.format)
		require.NoError(t, err, tc.format)
		got, err := cfg.Rules["no-unused-toplevel"].Strings("ignore")
		require.NoError(t, err, tc.format)
		assert.Equal(t, []string{"main", "init"}, got, tc.format)

		_, err = New(DefaultRegistry(), cfg)
		assert.NoError(t, err, tc.format)
	}
}
