// Package output defines the destinations a resolution can be written to
// and a registry of named formats.
package output

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/mapleridge/opsig/internal/model"
)

// Output writes resolved signature sets in one concrete form.
type Output interface {
	Write(ctx context.Context, res model.Resolution) error
	Close() error
}

// Constructor builds an Output over the given writer.
type Constructor func(w io.Writer) Output

var registry = map[string]Constructor{}

// Register adds an output constructor under the given format name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the constructor for the given format name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return ctor, nil
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
