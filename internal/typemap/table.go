package typemap

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Namespace is the SoMDA namespace prefix added to every source type name.
const Namespace = "somda::"

// Table maps qualified UML type names to qualified Java type names.
// It is immutable once loaded.
type Table struct {
	source  string
	entries map[string]string
}

// Resolve returns the Java type mapped to qualifiedName.
func (t *Table) Resolve(qualifiedName string) (string, error) {
	javaType, ok := t.entries[qualifiedName]
	if !ok {
		return "", &UnmappedTypeError{QualifiedName: qualifiedName}
	}

	return javaType, nil
}

// Source returns the identifier of the resource the table was loaded from.
func (t *Table) Source() string {
	return t.source
}

// Len returns the number of mapped source types.
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns the mapped source type names in sorted order.
func (t *Table) Keys() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Entries returns a copy of the mapping.
func (t *Table) Entries() map[string]string {
	return maps.Clone(t.entries)
}

// Normalize prepends the SoMDA namespace to name unless it is already there.
func Normalize(name string) string {
	if strings.HasPrefix(name, Namespace) {
		return name
	}

	return Namespace + name
}

// Option configures how a Table is loaded.
type Option func(*options)

type options struct {
	addNamespace bool
	logger       *slog.Logger
}

func defaultOptions() options {
	return options{
		addNamespace: true,
		logger:       slog.Default(),
	}
}

// WithoutNamespace stores source type names exactly as written.
func WithoutNamespace() Option {
	return func(o *options) {
		o.addNamespace = false
	}
}

// WithLogger sets the logger used while loading. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// yamlTable is the YAML export shape of a Table.
type yamlTable struct {
	Source   string            `yaml:"source,omitempty"`
	Mappings map[string]string `yaml:"mappings"`
}

// Marshal serializes the table to YAML, keys sorted.
func Marshal(t *Table) ([]byte, error) {
	data, err := yaml.Marshal(yamlTable{Source: t.source, Mappings: t.entries})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal type mappings: %w", err)
	}

	return data, nil
}
