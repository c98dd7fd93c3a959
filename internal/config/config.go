// Package config loads the optional timelist-sorter configuration file.
//
// The file may be YAML (.yaml/.yml, parsed with gopkg.in/yaml.v3) or JSON
// with comments (.json/.jsonc). JSON input goes through
// github.com/tidwall/jsonc to strip comments and trailing commas before
// encoding/json decodes it.
//
// All file access goes through an afero.Fs so callers and tests can swap the
// OS filesystem for an in-memory one.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/timelist-sorter/internal/model"
	"github.com/shinji-kodama/timelist-sorter/internal/render"
)

// FileNames lists the configuration file names searched by Discover, in
// priority order.
var FileNames = []string{
	".timelist-sorter.yaml",
	".timelist-sorter.yml",
	".timelist-sorter.json",
	".timelist-sorter.jsonc",
}

// Config holds user preferences. Command-line flags override every field.
type Config struct {
	// Format is the output format of the document command.
	Format model.OutputFormat `yaml:"format" json:"format"`

	// Write makes file-based commands rewrite the input file instead of
	// printing the result.
	Write bool `yaml:"write" json:"write"`

	// HTML configures the HTML output format.
	HTML render.Options `yaml:"html" json:"html"`

	// Path is the file the configuration was loaded from, empty for
	// defaults.
	Path string `yaml:"-" json:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Format: model.FormatMarkdown}
}

// Validate checks field values. An empty Format is treated as markdown.
func (c *Config) Validate() error {
	if c.Format == "" {
		c.Format = model.FormatMarkdown
	}
	format, err := model.ParseOutputFormat(c.Format.String())
	if err != nil {
		return err
	}
	c.Format = format

	for _, ext := range c.HTML.Extensions {
		if !render.KnownExtension(ext) {
			return fmt.Errorf("unknown html extension %q (valid: %s)",
				ext, strings.Join(render.ExtensionNames(), ", "))
		}
	}
	return nil
}

// Load reads and validates the configuration file at path.
//
// Returns a CLIError with ExitInputNotFound if the file does not exist and
// ExitInvalidConfig if it cannot be parsed or fails validation.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitInputNotFound,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidConfig,
			fmt.Sprintf("failed to parse config file %s", path),
			err,
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, model.WrapCLIError(
			model.ExitInvalidConfig,
			fmt.Sprintf("invalid config file %s", path),
			err,
		)
	}

	cfg.Path = path
	return cfg, nil
}

// Discover returns the path of the first configuration file found in dir,
// or "" if there is none.
func Discover(fs afero.Fs, dir string) string {
	for _, name := range FileNames {
		candidate := filepath.Join(dir, name)
		if ok, err := afero.Exists(fs, candidate); err == nil && ok {
			return candidate
		}
	}
	return ""
}

// Resolve loads the configuration at explicit, or the one discovered in dir
// when explicit is empty, or the defaults when neither exists.
func Resolve(fs afero.Fs, explicit, dir string) (*Config, error) {
	path := explicit
	if path == "" {
		path = Discover(fs, dir)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(fs, path)
}
