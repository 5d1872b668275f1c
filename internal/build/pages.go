package build

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/FifthTry/ftd/internal/errors"
	"github.com/FifthTry/ftd/pkg/program"
)

// lookupOrder is the order extensions are tried when a page has several
// files; hand-written sources win over compiled programs.
var lookupOrder = []string{program.ExtYAML, program.ExtYML, program.ExtJSON, program.ExtCompiled}

// Pages loads the programs in a pages directory and caches their
// interpreters. A cached page is reloaded when its file changes.
type Pages struct {
	dir    string
	logger *slog.Logger

	mu    sync.Mutex
	cache map[string]*cachedPage
}

type cachedPage struct {
	path string
	mod  time.Time
	in   *program.Interpreter
}

// NewPages creates a page cache over dir.
func NewPages(dir string, logger *slog.Logger) *Pages {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pages{
		dir:    dir,
		logger: logger,
		cache:  make(map[string]*cachedPage),
	}
}

// Dir returns the pages directory.
func (p *Pages) Dir() string {
	return p.dir
}

// Names lists the pages in the directory, sorted. A page with both a
// source and a compiled file is listed once.
func (p *Pages) Names() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, errors.New("E502").
			WithDetailf("reading pages directory %s", p.dir).
			Wrap(err)
	}

	seen := make(map[string]bool, len(entries))
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") || !program.IsPageFile(e.Name()) {
			continue
		}
		name := program.PageName(e.Name())
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Path returns the file page name is loaded from.
func (p *Pages) Path(name string) (string, error) {
	if !validName(name) {
		return "", errors.New("E502").WithDetailf("invalid page name %q", name)
	}
	for _, ext := range lookupOrder {
		path := filepath.Join(p.dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.New("E502").WithDetailf("no page %q in %s", name, p.dir)
}

func validName(name string) bool {
	return name != "" && !strings.HasPrefix(name, ".") && !strings.ContainsAny(name, `/\`)
}

// Interpreter returns the interpreter for page name.
func (p *Pages) Interpreter(name string) (*program.Interpreter, error) {
	path, err := p.Path(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.New("E502").WithDetail(path).Wrap(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.cache[name]; ok && c.path == path && c.mod.Equal(info.ModTime()) {
		return c.in, nil
	}

	start := time.Now()
	prog, err := program.Load(path)
	if err != nil {
		return nil, err
	}
	in, err := program.NewInterpreter(prog)
	if err != nil {
		return nil, err
	}
	in.WithLogger(p.logger)

	p.cache[name] = &cachedPage{path: path, mod: info.ModTime(), in: in}
	p.logger.Debug("page loaded",
		"page", name,
		"path", path,
		"instructions", len(prog.Code),
		"duration", time.Since(start),
	)
	return in, nil
}

// Invalidate drops name from the cache. An empty name drops every page.
func (p *Pages) Invalidate(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if name == "" {
		p.cache = make(map[string]*cachedPage)
		return
	}
	delete(p.cache, name)
}

// Cached reports whether name has a cached interpreter.
func (p *Pages) Cached(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.cache[name]
	return ok
}
