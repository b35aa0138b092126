package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quill", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed struct {
		Format  string   `yaml:"format"`
		Bullets []string `yaml:"bullets"`
		Preview struct {
			Style string `yaml:"style"`
			Width int    `yaml:"width"`
		} `yaml:"preview"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, "html", parsed.Format)
	assert.Equal(t, []string{"•", "◦", "▪"}, parsed.Bullets)
	assert.Equal(t, "auto", parsed.Preview.Style)
	assert.Equal(t, 80, parsed.Preview.Width)
}

func TestWriteDefaultConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: markdown\n"), 0644))

	assert.Error(t, WriteDefaultConfig(path))
}

func TestSaveBullets_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveBullets(path, []string{"-", "*"}))

	var parsed struct {
		Bullets []string `yaml:"bullets"`
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, []string{"-", "*"}, parsed.Bullets)
}

func TestSaveBullets_PreservesOtherSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	const existing = `# my settings
format: markdown
bullets:
  - "x"
preview:
  style: dark
`
	require.NoError(t, os.WriteFile(path, []byte(existing), 0644))
	require.NoError(t, SaveBullets(path, []string{"•"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# my settings")
	assert.Contains(t, text, "format: markdown")
	assert.Contains(t, text, "style: dark")

	var parsed struct {
		Bullets []string `yaml:"bullets"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, []string{"•"}, parsed.Bullets)
}
