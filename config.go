package gauge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/vasalvit/gauge/animation"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig wraps every validation failure of a Config.
var ErrInvalidConfig = errors.New("invalid gauge config")

// Config describes a gauge. Zero Width and Height default to Diameter.
type Config struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Value float64 `yaml:"value"`

	DialStartAngle float64 `yaml:"dialStartAngle"`
	DialDegrees    float64 `yaml:"dialDegrees"`
	Radius         float64 `yaml:"radius"`

	ShowCentralDisplay bool   `yaml:"showCentralDisplay"`
	DecimalPlaces      int    `yaml:"decimalPlaces"`
	DecimalPoint       string `yaml:"decimalPoint"`
	Label              string `yaml:"label"`

	Diameter float64 `yaml:"diameter"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`

	AnimationSeconds float64 `yaml:"animationSeconds"`
	Easing           string  `yaml:"easing"`

	DialClass  string `yaml:"dialClass"`
	GaugeClass string `yaml:"gaugeClass"`
	ValueClass string `yaml:"valueClass"`

	DialColor  string `yaml:"dialColor"`
	GaugeColor string `yaml:"gaugeColor"`
	ValueColor string `yaml:"valueColor"`
	// LowColor and HighColor, when both set, replace GaugeColor with a
	// blend picked by the position of the value between Min and Max.
	LowColor  string `yaml:"lowColor"`
	HighColor string `yaml:"highColor"`
}

// DefaultConfig returns a 0 to 100 gauge opening at the bottom, 100
// pixels wide.
func DefaultConfig() Config {
	return Config{
		Min:                0,
		Max:                100,
		DialStartAngle:     225,
		DialDegrees:        -270,
		Radius:             0.9,
		ShowCentralDisplay: true,
		DecimalPlaces:      0,
		DecimalPoint:       ".",
		Diameter:           100,
		AnimationSeconds:   0.5,
		Easing:             "accelerated",
		DialClass:          "gaugeDial",
		GaugeClass:         "gaugeValue",
		ValueClass:         "gaugeText",
		DialColor:          "lightgrey",
		GaugeColor:         "cornflowerblue",
		ValueColor:         "cornflowerblue",
	}
}

// ParseConfig reads a YAML config over the defaults.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("decoding gauge config: %w", err)
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return ParseConfig(f)
}

// Validate checks ranges, sizes, colours and the easing name.
func (c Config) Validate() error {
	switch {
	case !(c.Max > c.Min):
		return fmt.Errorf("%w: max %v must be greater than min %v", ErrInvalidConfig, c.Max, c.Min)
	case !(c.Diameter > 0):
		return fmt.Errorf("%w: diameter must be positive", ErrInvalidConfig)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: width and height must not be negative", ErrInvalidConfig)
	case c.DecimalPlaces < 0 || c.DecimalPlaces > 20:
		return fmt.Errorf("%w: decimalPlaces must be between 0 and 20", ErrInvalidConfig)
	case c.AnimationSeconds < 0:
		return fmt.Errorf("%w: animationSeconds must not be negative", ErrInvalidConfig)
	case (c.LowColor == "") != (c.HighColor == ""):
		return fmt.Errorf("%w: lowColor and highColor go together", ErrInvalidConfig)
	}

	for _, colour := range []string{c.DialColor, c.GaugeColor, c.ValueColor} {
		if strings.HasPrefix(colour, "#") {
			if _, err := colorful.Hex(colour); err != nil {
				return fmt.Errorf("%w: colour %q: %v", ErrInvalidConfig, colour, err)
			}
		}
	}
	for _, colour := range []string{c.LowColor, c.HighColor} {
		if colour == "" {
			continue
		}
		if _, err := colorful.Hex(colour); err != nil {
			return fmt.Errorf("%w: blend colour %q must be hex: %v", ErrInvalidConfig, colour, err)
		}
	}

	if _, err := animation.Easing(c.Easing); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
