package main

import (
	"os"

	"github.com/rook-computer/icongen/internal/app"
	"github.com/rook-computer/icongen/internal/iconset"
)

func main() {
	logger := app.NewFileLogger(os.Stdout)

	// Outputs land relative to where the generator is invoked, normally the
	// project root next to the Swift package.
	root, err := os.Getwd()
	if err != nil {
		logger.Errorf("main", "working directory: %v", err)
		os.Exit(1)
	}

	a := app.New(iconset.DefaultConfig(root))
	a.Logger = logger
	if err := a.Run(); err != nil {
		os.Exit(1)
	}
}
