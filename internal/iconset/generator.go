package iconset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rook-computer/icongen/internal/icon"
)

// Logger receives progress lines. It has the same method set as app.Logger,
// so the app's logger is passed straight through.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// RenderFunc draws a square icon of the given pixel size.
type RenderFunc func(size int) *image.RGBA

// Batch is a group of variants rendered the same way into one directory.
type Batch struct {
	Name     string
	Dir      string
	Prefix   string
	Variants []Variant
	Render   RenderFunc
}

// Generator writes every configured icon to disk. Runs are sequential and
// stop at the first error; files already written are left in place.
type Generator struct {
	Config Config
	Logger Logger
}

func NewGenerator(cfg Config) *Generator {
	return &Generator{Config: cfg, Logger: noopLogger{}}
}

// Batches returns the app icon batch followed by the menu bar batch.
func (g *Generator) Batches() []Batch {
	cfg := g.Config
	return []Batch{
		{
			Name:     "app icons",
			Dir:      cfg.IconsetDir,
			Prefix:   AppIconPrefix,
			Variants: cfg.AppVariants,
			Render: func(size int) *image.RGBA {
				return icon.RenderApp(size, cfg.Palette)
			},
		},
		{
			Name:     "menu bar icons",
			Dir:      cfg.ResourcesDir,
			Prefix:   MenuBarPrefix,
			Variants: cfg.MenuBarVariants,
			Render: func(size int) *image.RGBA {
				return icon.RenderMenuBar(size, cfg.Template, cfg.Palette)
			},
		},
	}
}

// Run creates the output directories and writes every variant.
func (g *Generator) Run() error {
	log := g.logger()
	batches := g.Batches()

	for _, b := range batches {
		if err := prepareDir(b.Dir); err != nil {
			return err
		}
	}

	for _, b := range batches {
		log.Infof("iconset", "generating %s in %s", b.Name, b.Dir)
		for _, v := range b.Variants {
			path, err := WriteVariant(b, v)
			if err != nil {
				log.Errorf("iconset", "%s %s: %v", b.Name, v, err)
				return err
			}
			size := v.Pixels()
			log.Infof("iconset", "created %s (%dx%d)", filepath.Base(path), size, size)
		}
	}

	log.Infof("iconset", "done; run 'iconutil -c icns %s' to create the .icns file", filepath.Base(g.Config.IconsetDir))
	return nil
}

func (g *Generator) logger() Logger {
	if g.Logger == nil {
		return noopLogger{}
	}
	return g.Logger
}

// WriteVariant renders v with b and saves it under b.Dir, returning the
// file path.
func WriteVariant(b Batch, v Variant) (string, error) {
	path := filepath.Join(b.Dir, v.FileName(b.Prefix))
	if err := writePNG(path, b.Render(v.Pixels())); err != nil {
		return "", err
	}
	return path, nil
}

func prepareDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err := checkWritable(dir); err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
