// Package config holds run configuration: CLI flags, viper-backed defaults,
// and validation of the watermark settings.
package config

import (
	"fmt"
	"image/color"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aliskhannn/photo-watermark/internal/fonts"
	"github.com/aliskhannn/photo-watermark/internal/layout"
)

// Config holds all settings for one run. It is populated once by Parse and
// shared read-only afterwards.
type Config struct {
	InputPath string        `mapstructure:"-"` // positional argument: image file or directory
	FontSize  int           `mapstructure:"font_size"`
	ColorName string        `mapstructure:"color"`
	Color     color.NRGBA   `mapstructure:"-"` // parsed from ColorName
	Position  layout.Anchor `mapstructure:"position"`
	FontPaths []string      `mapstructure:"font_paths"` // TTF search paths, priority order
	Verbose   bool          `mapstructure:"verbose"`
}

// namedColors is the set of color names accepted by --color, alongside
// #RRGGBB hex values.
var namedColors = map[string]color.NRGBA{
	"white":   {255, 255, 255, 255},
	"black":   {0, 0, 0, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
}

// Parse builds a Config from command line arguments. Defaults come from viper
// (overridable via an optional config file and WATERMARK_* environment
// variables); flags win over both. It returns an error for unknown flags, a
// missing positional path, or invalid settings — pflag.ErrHelp when --help was
// requested.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("photo-watermark", pflag.ContinueOnError)
	fs.Int("font_size", 36, "watermark font size in pixels")
	fs.String("color", "white", "watermark color name or #RRGGBB")
	fs.String("position", string(layout.BottomRight), fmt.Sprintf("watermark position: %s", anchorList()))
	fs.Bool("verbose", false, "enable debug logging")
	configFile := fs.String("config", "", "optional config file with default settings")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: photo-watermark [flags] <image_path>\n\n"+
			"Stamps each photo's capture date onto a copy of the image.\n\nFlags:\n%s", fs.FlagUsages())
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetDefault("font_paths", fonts.DefaultPaths(runtime.GOOS))
	v.SetEnvPrefix("WATERMARK")
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one image path argument, got %d", fs.NArg())
	}
	cfg.InputPath = fs.Arg(0)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values and resolves ColorName into Color.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("image path must not be empty")
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %d", c.FontSize)
	}
	if !c.Position.Valid() {
		return fmt.Errorf("invalid position %q, must be one of: %s", c.Position, anchorList())
	}

	col, err := ParseColor(c.ColorName)
	if err != nil {
		return err
	}
	c.Color = col

	return nil
}

// ParseColor resolves a color name or #RRGGBB hex string to an NRGBA value.
func ParseColor(name string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(name))

	if c, ok := namedColors[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
		}
	}

	return color.NRGBA{}, fmt.Errorf("invalid color %q, use a known name or #RRGGBB", name)
}

func anchorList() string {
	names := make([]string, len(layout.All))
	for i, a := range layout.All {
		names[i] = string(a)
	}
	return strings.Join(names, "|")
}
