// Package config loads logtag settings from .logtag.yaml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"sort"

	m "github.com/mouse-blink/logtag/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".logtag.yaml"

// Build describes the compiler invocation run between tagging and restore.
type Build struct {
	Dir     string            `yaml:"dir,omitempty"`
	Command []string          `yaml:"command,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
}

// Config models .logtag.yaml.
type Config struct {
	Roots        []string `yaml:"roots,omitempty"`
	LiveExt      string   `yaml:"live_ext,omitempty"`
	StagedMarker string   `yaml:"staged_marker,omitempty"`
	SkipDirs     []string `yaml:"skip_dirs,omitempty"`
	Exclude      []string `yaml:"exclude,omitempty"`
	Verify       bool     `yaml:"verify,omitempty"`
	Build        Build    `yaml:"build,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Roots:        []string{"."},
		LiveExt:      m.DefaultLiveExt,
		StagedMarker: m.DefaultStagedMarker,
		SkipDirs:     []string{".git", ".svn", ".hg"},
		Build: Build{
			Dir:     ".",
			Command: []string{"go", "build", "-v"},
		},
	}
}

// Load reads the config at path and fills unset fields with defaults. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) merge(file Config) {
	if len(file.Roots) > 0 {
		c.Roots = file.Roots
	}

	if file.LiveExt != "" {
		c.LiveExt = file.LiveExt
	}

	if file.StagedMarker != "" {
		c.StagedMarker = file.StagedMarker
	}

	if file.SkipDirs != nil {
		c.SkipDirs = file.SkipDirs
	}

	c.Exclude = append(c.Exclude, file.Exclude...)
	c.Verify = c.Verify || file.Verify

	if file.Build.Dir != "" {
		c.Build.Dir = file.Build.Dir
	}

	if len(file.Build.Command) > 0 {
		c.Build.Command = file.Build.Command
	}

	if len(file.Build.Env) > 0 {
		c.Build.Env = file.Build.Env
	}
}

// Validate checks the extension pair, exclude patterns and build command.
func (c *Config) Validate() error {
	if _, err := c.Extensions(); err != nil {
		return err
	}

	if _, err := c.ExcludePatterns(); err != nil {
		return err
	}

	if len(c.Build.Command) == 0 {
		return errors.New("build command is empty")
	}

	return nil
}

// Extensions returns the live/staged pair described by the config.
func (c *Config) Extensions() (m.Extensions, error) {
	return m.NewExtensions(c.LiveExt, c.StagedMarker)
}

// ExcludePatterns compiles the exclude expressions.
func (c *Config) ExcludePatterns() ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(c.Exclude))

	for _, expr := range c.Exclude {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", expr, err)
		}

		patterns = append(patterns, re)
	}

	return patterns, nil
}

// Tree returns the configured roots as a SourceTree.
func (c *Config) Tree() m.SourceTree {
	tree := make(m.SourceTree, 0, len(c.Roots))
	for _, root := range c.Roots {
		tree = append(tree, m.Path(root))
	}

	return tree
}

// BuildEnv flattens Build.Env into KEY=VALUE pairs.
func (c *Config) BuildEnv() []string {
	env := make([]string, 0, len(c.Build.Env))
	for k, v := range c.Build.Env {
		env = append(env, k+"="+v)
	}

	sort.Strings(env)

	return env
}
