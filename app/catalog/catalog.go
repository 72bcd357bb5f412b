package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source is one named feed endpoint.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Catalog is the fixed mapping from publisher name to feed address,
// kept in declaration order. It is static configuration: built once,
// never edited at runtime.
type Catalog struct {
	sources []Source
	byName  map[string]string
}

func New(sources []Source) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]string, len(sources))}

	for i, source := range sources {
		name := strings.TrimSpace(source.Name)
		url := strings.TrimSpace(source.URL)

		if name == "" {
			return nil, fmt.Errorf("source at index %d: name is required", i)
		}
		if url == "" {
			return nil, fmt.Errorf("source %q: URL is required", name)
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return nil, fmt.Errorf("source %q: URL must start with http:// or https://", name)
		}
		if _, dup := c.byName[name]; dup {
			return nil, fmt.Errorf("duplicate source name: %s", name)
		}

		c.sources = append(c.sources, Source{Name: name, URL: url})
		c.byName[name] = url
	}

	return c, nil
}

// Load reads a catalog from a YAML file, replacing the built-in set.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var parsed struct {
		Sources []Source `yaml:"sources"`
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(parsed.Sources) == 0 {
		return nil, fmt.Errorf("no sources defined in %s", path)
	}

	return New(parsed.Sources)
}

// Resolve returns the feed address for a source name.
func (c *Catalog) Resolve(name string) (string, bool) {
	url, ok := c.byName[name]
	return url, ok
}

// Names returns the source names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sources))
	for _, source := range c.sources {
		names = append(names, source.Name)
	}
	return names
}

// Sources returns a copy of the catalog entries in declaration order.
func (c *Catalog) Sources() []Source {
	sources := make([]Source, len(c.sources))
	copy(sources, c.sources)
	return sources
}

func (c *Catalog) Len() int {
	return len(c.sources)
}
