/*
	runtime configuration

	defaults are compiled in, a toml file may override them and
	command line flags override both.
*/
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Program struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
}

type Config struct {
	Window     Window             `toml:"window"`
	ClearColor [4]float32         `toml:"clear_color"`
	Assets     string             `toml:"assets"`
	Wireframe  bool               `toml:"wireframe"`
	Programs   map[string]Program `toml:"programs"`
}

func Default() *Config {
	return &Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "triangles",
			VSync:  true,
		},
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		Assets:     "assets",
		Programs: map[string]Program{
			"orange": {Vertex: "triangle.vertex", Fragment: "orange.fragment"},
			"yellow": {Vertex: "triangle.vertex", Fragment: "yellow.fragment"},
		},
	}
}

// Load decodes path over the defaults
func Load(path string) (*Config, error) {
	c := Default()

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %q: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	// program tables are decoded from zero, keep default files not given
	for n, d := range Default().Programs {
		p, found := c.Programs[n]
		if !found {
			continue
		}
		if p.Vertex == "" {
			p.Vertex = d.Vertex
		}
		if p.Fragment == "" {
			p.Fragment = d.Fragment
		}
		c.Programs[n] = p
	}

	return c, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.Title == "" {
		errs = append(errs, errors.New("empty window title"))
	}
	if c.Assets == "" {
		errs = append(errs, errors.New("empty asset directory"))
	}

	for i, v := range c.ClearColor {
		if !(v >= 0 && v <= 1) {
			errs = append(errs, fmt.Errorf("clear color component %d out of range: %v", i, v))
		}
	}

	if len(c.Programs) == 0 {
		errs = append(errs, errors.New("no shader programs"))
	}
	for _, n := range c.ProgramNames() {
		p := c.Programs[n]
		if p.Vertex == "" {
			errs = append(errs, fmt.Errorf("program %q: missing vertex shader", n))
		}
		if p.Fragment == "" {
			errs = append(errs, fmt.Errorf("program %q: missing fragment shader", n))
		}
	}

	return errors.Join(errs...)
}

// ProgramNames returns the configured program names in sorted order
func (c *Config) ProgramNames() []string {
	names := make([]string, 0, len(c.Programs))
	for n := range c.Programs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
