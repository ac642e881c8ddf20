// Integration tests for the conversion engine underneath a
// configuration loader: raw string settings read through Viper are
// bound to typed values by the strict parsers, so malformed config
// fails loudly instead of silently coercing.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/scalar/pkg/convert"
)

const sampleConfigYAML = `# server settings, all values deliberately strings
port: "8080"
timeout_seconds: " 30 "
debug: "YES"
sample_rate: "2.5e-2"
log_level: "Info"
max_body_bytes: "not-a-number"
`

func loadSampleConfig(t *testing.T) *viper.Viper {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfigYAML), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	return v
}

func TestConfigBinding_TypedValues(t *testing.T) {
	cfg := loadSampleConfig(t)

	port, err := convert.ToInt[uint16](cfg.GetString("port"))
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), port)

	// Whitespace from sloppy editing is trimmed before parsing.
	timeout, err := convert.ToInt64(cfg.GetString("timeout_seconds"))
	require.NoError(t, err)
	assert.Equal(t, int64(30), timeout)

	debug, err := convert.ToBool(cfg.GetString("debug"))
	require.NoError(t, err)
	assert.True(t, debug)

	rate, err := convert.ToFloat64(cfg.GetString("sample_rate"))
	require.NoError(t, err)
	assert.Equal(t, 0.025, rate)

	levelTable := []convert.EnumEntry[string]{
		{Name: "debug", Value: "debug"},
		{Name: "info", Value: "info"},
		{Name: "error", Value: "error"},
	}
	level, err := convert.ToEnum(cfg.GetString("log_level"), levelTable)
	require.NoError(t, err)
	assert.Equal(t, "info", level)
}

func TestConfigBinding_MalformedValueFails(t *testing.T) {
	cfg := loadSampleConfig(t)

	_, err := convert.ToInt64(cfg.GetString("max_body_bytes"))
	var ce *convert.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, convert.KindInvalidCharacter, ce.Kind)
	assert.Equal(t, "not-a-number", ce.Input)
}
