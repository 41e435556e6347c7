package config

import (
	"errors"
	"image/color"
	"testing"

	"github.com/spf13/pflag"

	"github.com/aliskhannn/photo-watermark/internal/layout"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]string{"/tmp/photos"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.InputPath != "/tmp/photos" {
		t.Errorf("InputPath = %q, want /tmp/photos", cfg.InputPath)
	}
	if cfg.FontSize != 36 {
		t.Errorf("FontSize = %d, want 36", cfg.FontSize)
	}
	if cfg.ColorName != "white" {
		t.Errorf("ColorName = %q, want white", cfg.ColorName)
	}
	if cfg.Position != layout.BottomRight {
		t.Errorf("Position = %q, want bottom-right", cfg.Position)
	}
	if len(cfg.FontPaths) == 0 {
		t.Error("FontPaths should have platform defaults")
	}
}

func TestParse_Flags(t *testing.T) {
	cfg, err := Parse([]string{"--font_size", "48", "--color", "orange", "--position", "top-left", "pic.jpg"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.FontSize != 48 {
		t.Errorf("FontSize = %d, want 48", cfg.FontSize)
	}
	if cfg.Position != layout.TopLeft {
		t.Errorf("Position = %q, want top-left", cfg.Position)
	}
	if (cfg.Color != color.NRGBA{255, 165, 0, 255}) {
		t.Errorf("Color = %v, want orange", cfg.Color)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no positional", []string{"--font_size", "10"}},
		{"two positionals", []string{"a.jpg", "b.jpg"}},
		{"invalid position", []string{"--position", "middle", "a.jpg"}},
		{"invalid color", []string{"--color", "chartreuse-ish", "a.jpg"}},
		{"zero font size", []string{"--font_size", "0", "a.jpg"}},
		{"negative font size", []string{"--font_size", "-5", "a.jpg"}},
		{"unknown flag", []string{"--recursive", "a.jpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.args); err == nil {
				t.Errorf("Parse(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestParse_Help(t *testing.T) {
	_, err := Parse([]string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("Parse(--help) error = %v, want pflag.ErrHelp", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"white", color.NRGBA{255, 255, 255, 255}, false},
		{"BLACK", color.NRGBA{0, 0, 0, 255}, false},
		{" red ", color.NRGBA{255, 0, 0, 255}, false},
		{"grey", color.NRGBA{128, 128, 128, 255}, false},
		{"#ff8800", color.NRGBA{255, 136, 0, 255}, false},
		{"#FF8800", color.NRGBA{255, 136, 0, 255}, false},
		{"#ff88", color.NRGBA{}, true},
		{"not-a-color", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_AllPositionsAccepted(t *testing.T) {
	for _, a := range layout.All {
		cfg := Config{InputPath: "a.jpg", FontSize: 36, ColorName: "white", Position: a}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate with position %s: %v", a, err)
		}
	}
}
