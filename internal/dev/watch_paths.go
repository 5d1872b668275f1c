package dev

import (
	"path/filepath"

	"github.com/FifthTry/ftd/internal/config"
)

// CollectWatchPaths returns the pages directory and the config file, the
// only inputs a page render depends on.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := []string{cfg.PagesPath(), cfg.Path()}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}
