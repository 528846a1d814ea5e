package iconset

import (
	"path/filepath"

	"github.com/rook-computer/icongen/internal/icon"
)

const (
	IconsetDirName = "AppIcon.iconset"
	AppIconPrefix  = "icon"
	MenuBarPrefix  = "menubar_icon"
)

// ResourcesPath is where the Swift package expects bundled resources,
// relative to the project root.
var ResourcesPath = filepath.Join("NotToday", "Sources", "NotToday", "Resources")

// Config describes what to generate and where. It is built once and
// handed to the Generator; nothing mutates it during a run.
type Config struct {
	IconsetDir   string
	ResourcesDir string

	AppVariants     []Variant
	MenuBarVariants []Variant

	// Template renders menu bar icons black for the host to recolor.
	Template bool
	Palette  icon.Palette
}

// DefaultConfig lays out the outputs under root.
func DefaultConfig(root string) Config {
	return Config{
		IconsetDir:      filepath.Join(root, IconsetDirName),
		ResourcesDir:    filepath.Join(root, ResourcesPath),
		AppVariants:     AppIconVariants(),
		MenuBarVariants: MenuBarVariants(),
		Template:        true,
		Palette:         icon.DefaultPalette(),
	}
}
