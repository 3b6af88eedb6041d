package gauge

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/require"
)

const testConfig = `
min: -20
max: 40
label: "°C"
decimalPlaces: 1
decimalPoint: ","
diameter: 200
easing: out-cubic
lowColor: "#0000ff"
highColor: "#ff0000"
`

func TestParseConfig(t *testing.T) {
	is := is.New(t)

	cfg, err := ParseConfig(strings.NewReader(testConfig))
	is.NoErr(err)
	is.Equal(cfg.Min, -20.0)
	is.Equal(cfg.Max, 40.0)
	is.Equal(cfg.Label, "°C")
	is.Equal(cfg.DecimalPlaces, 1)
	is.Equal(cfg.DecimalPoint, ",")
	is.Equal(cfg.Diameter, 200.0)
	is.Equal(cfg.Easing, "out-cubic")

	// untouched keys keep their defaults
	is.Equal(cfg.DialStartAngle, 225.0)
	is.Equal(cfg.DialDegrees, -270.0)
	is.Equal(cfg.Radius, 0.9)
	is.True(cfg.ShowCentralDisplay)
}

func TestParseEmptyConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gauge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 40.0, cfg.Max)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		Description string
		Change      func(*Config)
	}{
		{"empty range", func(c *Config) { c.Max = c.Min }},
		{"no diameter", func(c *Config) { c.Diameter = 0 }},
		{"negative width", func(c *Config) { c.Width = -1 }},
		{"too many decimals", func(c *Config) { c.DecimalPlaces = 21 }},
		{"negative duration", func(c *Config) { c.AnimationSeconds = -1 }},
		{"bad hex colour", func(c *Config) { c.DialColor = "#zzz" }},
		{"half a blend", func(c *Config) { c.LowColor = "#000000" }},
		{"named blend colour", func(c *Config) { c.LowColor, c.HighColor = "red", "#ff0000" }},
		{"unknown easing", func(c *Config) { c.Easing = "wobble" }},
	}

	for _, test := range tests {
		cfg := DefaultConfig()
		test.Change(&cfg)
		err := cfg.Validate()
		require.Error(t, err, test.Description)
		require.True(t, errors.Is(err, ErrInvalidConfig), test.Description)

		_, err = New(cfg)
		require.Error(t, err, test.Description)
	}

	require.NoError(t, DefaultConfig().Validate())
}

func TestParseConfigRejectsBadYAML(t *testing.T) {
	_, err := ParseConfig(strings.NewReader("min: [1"))
	require.Error(t, err)
}
