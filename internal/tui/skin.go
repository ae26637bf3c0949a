package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Skin is a named palette. Skins other than the built-in ones are read from
// <config dir>/skins/<name>.yml.
type Skin struct {
	Name       string     `yaml:"name"`
	Colors     SkinColors `yaml:"colors"`
	ASCIIIcons bool       `yaml:"ascii-icons"`
}

// SkinColors holds hex or ANSI color strings. Empty values fall back to the
// teal skin.
type SkinColors struct {
	Primary string `yaml:"primary"`
	Accent  string `yaml:"accent"`
	Bar     string `yaml:"bar"`
	Text    string `yaml:"text"`
	Muted   string `yaml:"muted"`
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Danger  string `yaml:"danger"`
}

var builtinSkins = map[string]Skin{
	"teal": {
		Name: "teal",
		Colors: SkinColors{
			Primary: "#14B8A6",
			Accent:  "#F97316",
			Bar:     "#134E4A",
			Text:    "#F8FAFC",
			Muted:   "#94A3B8",
			Success: "#22C55E",
			Warning: "#EAB308",
			Danger:  "#EF4444",
		},
	},
	"navy": {
		Name: "navy",
		Colors: SkinColors{
			Primary: "#3B82F6",
			Accent:  "#EC4899",
			Bar:     "#1E293B",
			Text:    "#FFFFFF",
			Muted:   "#6B7280",
			Success: "#44FF44",
			Warning: "#FFAA00",
			Danger:  "#FF4444",
		},
	},
	"mono": {
		Name: "mono",
		Colors: SkinColors{
			Primary: "15",
			Accent:  "7",
			Bar:     "236",
			Text:    "255",
			Muted:   "244",
			Success: "250",
			Warning: "250",
			Danger:  "255",
		},
		ASCIIIcons: true,
	},
}

// Palette in use. InitializeSkin replaces these.
var (
	ColorPrimary = lipgloss.Color("#14B8A6")
	ColorAccent  = lipgloss.Color("#F97316")
	ColorBar     = lipgloss.Color("#134E4A")
	ColorText    = lipgloss.Color("#F8FAFC")
	ColorMuted   = lipgloss.Color("#94A3B8")
	ColorSuccess = lipgloss.Color("#22C55E")
	ColorWarning = lipgloss.Color("#EAB308")
	ColorDanger  = lipgloss.Color("#EF4444")

	asciiIcons = false
	activeSkin = "teal"
)

// InitializeSkin applies the named skin. On any error the teal skin stays
// in effect and the error is returned.
func InitializeSkin(name, configDir string) error {
	applySkin(builtinSkins["teal"])
	if name == "" {
		return nil
	}
	if s, ok := builtinSkins[name]; ok {
		applySkin(s)
		return nil
	}

	s, err := LoadSkin(filepath.Join(configDir, "skins", name+".yml"))
	if err != nil {
		return err
	}
	if s.Name == "" {
		s.Name = name
	}
	applySkin(s)
	return nil
}

// LoadSkin reads a skin file. Missing colors are taken from the teal skin.
func LoadSkin(path string) (Skin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Skin{}, fmt.Errorf("tui: skin file %s not found", path)
		}
		return Skin{}, fmt.Errorf("tui: read skin: %w", err)
	}

	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Skin{}, fmt.Errorf("tui: parse skin %s: %w", path, err)
	}
	s.Colors = s.Colors.withDefaults(builtinSkins["teal"].Colors)
	return s, nil
}

func (c SkinColors) withDefaults(d SkinColors) SkinColors {
	pick := func(v, def string) string {
		if v == "" {
			return def
		}
		return v
	}
	return SkinColors{
		Primary: pick(c.Primary, d.Primary),
		Accent:  pick(c.Accent, d.Accent),
		Bar:     pick(c.Bar, d.Bar),
		Text:    pick(c.Text, d.Text),
		Muted:   pick(c.Muted, d.Muted),
		Success: pick(c.Success, d.Success),
		Warning: pick(c.Warning, d.Warning),
		Danger:  pick(c.Danger, d.Danger),
	}
}

func applySkin(s Skin) {
	ColorPrimary = lipgloss.Color(s.Colors.Primary)
	ColorAccent = lipgloss.Color(s.Colors.Accent)
	ColorBar = lipgloss.Color(s.Colors.Bar)
	ColorText = lipgloss.Color(s.Colors.Text)
	ColorMuted = lipgloss.Color(s.Colors.Muted)
	ColorSuccess = lipgloss.Color(s.Colors.Success)
	ColorWarning = lipgloss.Color(s.Colors.Warning)
	ColorDanger = lipgloss.Color(s.Colors.Danger)
	asciiIcons = s.ASCIIIcons
	activeSkin = s.Name
}

// ActiveSkin returns the name of the skin in effect.
func ActiveSkin() string {
	return activeSkin
}
