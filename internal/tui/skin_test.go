package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/tecvac/internal/model"
)

// Skin tests swap the package palette, so they do not run in parallel.

func restoreSkin(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		if err := InitializeSkin("teal", ""); err != nil {
			t.Errorf("restore teal skin: %v", err)
		}
	})
}

func TestInitializeSkin_Builtin(t *testing.T) {
	restoreSkin(t)

	if err := InitializeSkin("navy", ""); err != nil {
		t.Fatalf("InitializeSkin(navy): %v", err)
	}
	if ActiveSkin() != "navy" {
		t.Fatalf("active skin = %q, want navy", ActiveSkin())
	}
	if ColorPrimary != lipgloss.Color("#3B82F6") {
		t.Fatalf("primary = %q, want navy primary", ColorPrimary)
	}
}

func TestInitializeSkin_MonoUsesASCIIIcons(t *testing.T) {
	restoreSkin(t)

	if err := InitializeSkin("mono", ""); err != nil {
		t.Fatalf("InitializeSkin(mono): %v", err)
	}
	if got := glyph(model.IconHome); got != "H" {
		t.Fatalf("glyph(home) = %q, want H", got)
	}
	if got := glyph(model.Icon("no-such-icon")); got != "*" {
		t.Fatalf("glyph(unknown) = %q, want *", got)
	}
}

func TestInitializeSkin_FromFile(t *testing.T) {
	restoreSkin(t)

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yml := "colors:\n  primary: \"#AA00AA\"\n  danger: \"#FF0000\"\n"
	if err := os.WriteFile(filepath.Join(dir, "skins", "plum.yml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("write skin: %v", err)
	}

	if err := InitializeSkin("plum", dir); err != nil {
		t.Fatalf("InitializeSkin(plum): %v", err)
	}
	if ActiveSkin() != "plum" {
		t.Fatalf("active skin = %q, want plum", ActiveSkin())
	}
	if ColorPrimary != lipgloss.Color("#AA00AA") {
		t.Fatalf("primary = %q, want #AA00AA", ColorPrimary)
	}
	if ColorMuted != lipgloss.Color(builtinSkins["teal"].Colors.Muted) {
		t.Fatalf("muted = %q, want teal fallback", ColorMuted)
	}
}

func TestInitializeSkin_MissingFileKeepsTeal(t *testing.T) {
	restoreSkin(t)

	err := InitializeSkin("nope", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v, want not found", err)
	}
	if ActiveSkin() != "teal" {
		t.Fatalf("active skin = %q, want teal", ActiveSkin())
	}
}

func TestLoadSkin_BadYAML(t *testing.T) {
	restoreSkin(t)

	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("colors: [unclosed"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSkin(path); err == nil || !strings.Contains(err.Error(), "parse skin") {
		t.Fatalf("err = %v, want parse error", err)
	}
}
