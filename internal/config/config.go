package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FifthTry/ftd/internal/errors"
)

const (
	// ConfigFileName is the JSON configuration file.
	ConfigFileName = "ftd.json"

	// YAMLConfigFileName is the YAML configuration file. It is used when
	// no ftd.json exists.
	YAMLConfigFileName = "ftd.yaml"

	// DefaultPort is the default development server port.
	DefaultPort = 8000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultPages is the default page source directory.
	DefaultPages = "pages"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultDebounce is the default delay between a change and a reload.
	DefaultDebounce = "200ms"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "ftd"
)

// configFiles are tried in order by Load.
var configFiles = []string{ConfigFileName, YAMLConfigFileName, "ftd.yml"}

// Config is the project configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Pages is the directory holding page sources.
	Pages string `json:"pages,omitempty" yaml:"pages,omitempty"`

	// Output is the directory ftd build writes to.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	Dev     DevConfig     `json:"dev,omitempty" yaml:"dev,omitempty"`
	Render  RenderConfig  `json:"render,omitempty" yaml:"render,omitempty"`
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to run the dev server on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Watch enables reloading pages when their sources change.
	Watch *bool `json:"watch,omitempty" yaml:"watch,omitempty"`

	// Debounce is how long the watcher waits for changes to settle
	// (e.g., "200ms").
	Debounce string `json:"debounce,omitempty" yaml:"debounce,omitempty"`
}

// RenderConfig selects the color scheme and device class pages are
// rendered for.
type RenderConfig struct {
	Dark   bool `json:"dark,omitempty" yaml:"dark,omitempty"`
	Mobile bool `json:"mobile,omitempty" yaml:"mobile,omitempty"`
}

// PublishConfig is the S3 target of ftd publish.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// PathStyle addresses the bucket in the path instead of the host.
	PathStyle bool `json:"pathStyle,omitempty" yaml:"pathStyle,omitempty"`
}

// MetricsConfig controls the dev server's /metrics endpoint.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	watch := true
	return &Config{
		Pages:  DefaultPages,
		Output: DefaultOutput,
		Dev: DevConfig{
			Host:     DefaultHost,
			Port:     DefaultPort,
			Watch:    &watch,
			Debounce: DefaultDebounce,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from dir, trying ftd.json then ftd.yaml.
func Load(dir string) (*Config, error) {
	for _, name := range configFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E301").
		WithDetail("No ftd.json or ftd.yaml found in " + dir).
		WithSuggestion("Create ftd.json, or run 'ftd serve' with --pages")
}

// LoadFile reads configuration from the specified file path. The format
// follows the extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E301").WithDetail("No config at " + path)
		}
		return nil, errors.New("E302").Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("E302").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is well formed")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path in the format its extension
// selects.
func (c *Config) SaveTo(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E302").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E302").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Pages == "" {
		c.Pages = DefaultPages
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Watch == nil {
		watch := true
		c.Dev.Watch = &watch
	}
	if c.Dev.Debounce == "" {
		c.Dev.Debounce = DefaultDebounce
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Name == "" && c.configPath != "" {
		c.Name = filepath.Base(filepath.Dir(c.configPath))
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E302").
			WithDetail("dev.port must be between 0 and 65535")
	}
	if d, err := time.ParseDuration(c.Dev.Debounce); err != nil || d < 0 {
		return errors.New("E302").
			WithDetailf("dev.debounce %q is not a duration", c.Dev.Debounce).
			WithSuggestion(`Use a Go duration such as "200ms"`)
	}
	if strings.HasPrefix(c.Publish.Prefix, "/") {
		return errors.New("E302").
			WithDetail("publish.prefix must not start with /")
	}
	return nil
}

// WatchEnabled reports whether the dev server watches page sources.
func (c *Config) WatchEnabled() bool {
	return c.Dev.Watch == nil || *c.Dev.Watch
}

// DebounceDuration returns Dev.Debounce as a duration.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Dev.Debounce)
	if err != nil {
		d, _ = time.ParseDuration(DefaultDebounce)
	}
	return d
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// PagesPath returns the absolute path to the page source directory.
func (c *Config) PagesPath() string {
	return c.resolve(c.Pages, DefaultPages)
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output, DefaultOutput)
}

func (c *Config) resolve(path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range configFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing ftd.json or ftd.yaml, or an error if not
// found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E301").
				WithDetail("No ftd.json or ftd.yaml found in " + startDir + " or any parent directory").
				WithSuggestion("Create ftd.json at the project root")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
