// Package build turns a pages directory into static HTML.
//
// This package handles:
//   - Loading and caching page programs (Pages)
//   - Rendering one page to a complete document with its state snapshot
//     (RenderPage)
//   - Checking that a rendered document hydrates (Verify)
//   - Rendering every page to the output directory (Builder)
//
// # Usage
//
//	builder := build.New(cfg, build.Options{})
//	result, err := builder.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Built %d pages in %s\n", len(result.Pages), result.Duration)
//
// # Output Structure
//
//	dist/
//	├── index.html
//	├── counter.html
//	└── manifest.json
//
// # Manifest
//
// The manifest maps page names to their files and content hashes:
//
//	{
//	  "counter": {"file": "counter.html", "sha256": "a1b2...", "size": 2048}
//	}
package build
