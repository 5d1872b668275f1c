package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/FifthTry/ftd/internal/config"
	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/render"
)

// ManifestFile is the name of the manifest written next to the pages.
const ManifestFile = "manifest.json"

// Result contains the build output.
type Result struct {
	// Duration is how long the build took.
	Duration time.Duration

	// Output is the directory the pages were written to.
	Output string

	// Pages are the rendered pages in name order.
	Pages []Page

	// Manifest maps page names to their files.
	Manifest Manifest
}

// Page is one rendered page.
type Page struct {
	Name    string
	File    string
	Nodes   int
	Classes int
}

// Manifest maps page names to their output files.
type Manifest map[string]ManifestEntry

// ManifestEntry describes one output file.
type ManifestEntry struct {
	File   string `json:"file"`
	SHA256 string `json:"sha256"`
	Size   int64  `json:"size"`
}

// Options configures the builder.
type Options struct {
	// Dark and Mobile select the rendered variant; they default to the
	// config's render section.
	Dark   bool
	Mobile bool

	// Renderer runs the render passes. Defaults to a renderer using Logger.
	Renderer *render.Renderer

	Logger *slog.Logger

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Builder renders every page of a project.
type Builder struct {
	config  *config.Config
	options Options
	pages   *Pages
}

// New creates a new builder.
func New(cfg *config.Config, options Options) *Builder {
	if !options.Dark && cfg.Render.Dark {
		options.Dark = true
	}
	if !options.Mobile && cfg.Render.Mobile {
		options.Mobile = true
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Renderer == nil {
		options.Renderer = render.NewRenderer(render.WithLogger(options.Logger))
	}

	return &Builder{
		config:  cfg,
		options: options,
		pages:   NewPages(cfg.PagesPath(), options.Logger),
	}
}

// Build renders every page to the output directory.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	outputDir := b.config.OutputPath()
	result := &Result{
		Output:   outputDir,
		Manifest: make(Manifest),
	}

	names, err := b.pages.Names()
	if err != nil {
		return nil, err
	}

	b.progress("Cleaning output directory...")
	if err := b.Clean(); err != nil {
		return nil, errors.New("E501").Wrap(err)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, errors.New("E501").Wrap(err)
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b.progress("Rendering " + name + "...")

		page, entry, err := b.buildPage(ctx, name, outputDir)
		if err != nil {
			return nil, err
		}
		result.Pages = append(result.Pages, page)
		result.Manifest[name] = entry
	}

	b.progress("Writing manifest...")
	if err := writeManifest(outputDir, result.Manifest); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	b.options.Logger.Info("build complete",
		"pages", len(result.Pages),
		"output", outputDir,
		"duration", result.Duration,
	)
	return result, nil
}

func (b *Builder) buildPage(ctx context.Context, name, outputDir string) (Page, ManifestEntry, error) {
	in, err := b.pages.Interpreter(name)
	if err != nil {
		return Page{}, ManifestEntry{}, err
	}

	var buf bytes.Buffer
	res, err := RenderPage(ctx, b.options.Renderer, in, Request{
		Dark:   b.options.Dark,
		Mobile: b.options.Mobile,
	}, &buf)
	if err != nil {
		return Page{}, ManifestEntry{}, err
	}

	file := name + ".html"
	if err := os.WriteFile(filepath.Join(outputDir, file), buf.Bytes(), 0644); err != nil {
		return Page{}, ManifestEntry{}, errors.New("E501").WithDetail(file).Wrap(err)
	}

	sum := sha256.Sum256(buf.Bytes())
	page := Page{
		Name:    name,
		File:    file,
		Nodes:   res.Nodes,
		Classes: res.Classes,
	}
	entry := ManifestEntry{
		File:   file,
		SHA256: hex.EncodeToString(sum[:]),
		Size:   int64(buf.Len()),
	}
	return page, entry, nil
}

// writeManifest writes the page manifest.
func writeManifest(outputDir string, manifest Manifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return errors.New("E501").Wrap(err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, ManifestFile), data, 0644); err != nil {
		return errors.New("E501").Wrap(err)
	}
	return nil
}

// ReadManifest reads the manifest of a previous build.
func ReadManifest(outputDir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, ManifestFile))
	if err != nil {
		return nil, errors.New("E501").
			WithDetailf("no manifest in %s", outputDir).
			WithSuggestion("Run 'ftd build' first").
			Wrap(err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.New("E501").WithDetail(ManifestFile).Wrap(err)
	}
	return m, nil
}

// Pages returns the builder's page cache.
func (b *Builder) Pages() *Pages {
	return b.pages
}

// progress reports build progress.
func (b *Builder) progress(step string) {
	if b.options.OnProgress != nil {
		b.options.OnProgress(step)
	}
}

// Clean removes the build output directory.
func (b *Builder) Clean() error {
	return os.RemoveAll(b.config.OutputPath())
}
