package main

import (
	"path/filepath"

	"github.com/FifthTry/ftd/internal/config"
	"github.com/FifthTry/ftd/internal/errors"
)

// loadProject loads the project config. With pages set, a missing config
// falls back to defaults so a bare directory of pages can be served.
func loadProject(pages string) (*config.Config, error) {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		if pages == "" || errors.Code(err) != "E301" {
			return nil, err
		}
		cfg = config.New()
	}
	if pages != "" {
		abs, err := filepath.Abs(pages)
		if err != nil {
			return nil, err
		}
		cfg.Pages = abs
	}
	return cfg, nil
}
