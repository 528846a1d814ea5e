package app

import (
	"github.com/rook-computer/icongen/internal/iconset"
)

type App struct {
	Config iconset.Config
	Logger Logger
}

func New(cfg iconset.Config) *App {
	return &App{Config: cfg, Logger: NoopLogger{}}
}

// Run generates every icon described by the config.
func (app *App) Run() error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.Logger.Infof("app", "iconset dir %s", app.Config.IconsetDir)
	app.Logger.Infof("app", "resources dir %s", app.Config.ResourcesDir)

	gen := iconset.NewGenerator(app.Config)
	gen.Logger = app.Logger
	if err := gen.Run(); err != nil {
		app.Logger.Errorf("app", "generation failed: %v", err)
		return err
	}
	return nil
}
