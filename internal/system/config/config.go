// Released under an MIT license. See LICENSE.

// Package config loads the optional jl YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jlisp/jl/internal/printer"
	"gopkg.in/yaml.v3"
)

// Name is the name of the default configuration file in $HOME.
const Name = ".jl.yaml"

// T (config) holds the settings read from a configuration file.
type T struct {
	Prompt       string   `yaml:"prompt"`
	Continuation string   `yaml:"continuation"`
	History      string   `yaml:"history"`
	Preload      []string `yaml:"preload"`
	Print        Print    `yaml:"print"`
}

// Print holds the settings used when the REPL prints results.
type Print struct {
	MaxDepth  int    `yaml:"max-depth"`
	MaxLength int    `yaml:"max-length"`
	Escape    string `yaml:"escape"`
}

type config = T

// Default returns the settings used when no file overrides them.
func Default() *T {
	return &T{
		Prompt:       "jl> ",
		Continuation: "jl... ",
		History:      filepath.Join(os.Getenv("HOME"), ".jl_history"),
		Print:        Print{Escape: "all"},
	}
}

// Load reads the configuration at path over the defaults. An empty path
// means $HOME/.jl.yaml, which need not exist.
func Load(path string) (*T, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(os.Getenv("HOME"), Name)
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}

		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	err = c.decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return c, nil
}

// Options returns the printer options described by c.
func (c *config) Options() (printer.Options, error) {
	o := printer.Options{
		Readable:  true,
		MaxDepth:  c.Print.MaxDepth,
		MaxLength: c.Print.MaxLength,
	}

	switch c.Print.Escape {
	case "", "all":
		o.Escape = printer.EscapeAll
	case "newlines":
		o.Escape = printer.EscapeNewlines
	case "none":
		o.Escape = printer.EscapeNone
	default:
		return o, fmt.Errorf("config: unknown escape mode %q", c.Print.Escape)
	}

	return o, nil
}

func (c *config) decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(c)
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return err
	}

	if c.Print.MaxDepth < 0 || c.Print.MaxLength < 0 {
		return errors.New("print limits must not be negative")
	}

	return nil
}
