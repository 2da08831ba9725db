// Package config resolves command line flags from a YAML file.
//
// Keys are flag names; underscores and hyphens are interchangeable:
//
//	illegal: ghijk
//	format: table
//	max_line: 4096
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

var ErrUnknownKey = errors.New("unknown configuration key")

// Resolver feeds YAML values to kong for flags missing from the command line.
type Resolver struct {
	values map[string]any
}

var _ kong.Resolver = (*Resolver)(nil)

// YAML is a kong.ConfigurationLoader.
func YAML(r io.Reader) (kong.Resolver, error) {
	raw := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	values := make(map[string]any, len(raw))
	for k, v := range raw {
		values[normalizeKey(k)] = v
	}
	return &Resolver{values: values}, nil
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", "-")
}

func (r *Resolver) Validate(app *kong.Application) error {
	known := make(map[string]bool)
	for _, flag := range app.Flags {
		known[flag.Name] = true
	}

	for key := range r.values {
		if !known[key] {
			return fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}
	return nil
}

func (r *Resolver) Resolve(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
	// Environment variables already bound by kong win over the file.
	for _, env := range flag.Envs {
		if _, set := os.LookupEnv(env); set {
			return nil, nil
		}
	}

	value, ok := r.values[flag.Name]
	if !ok || value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case map[string]any, []any:
		return nil, fmt.Errorf("configuration key %q must be a scalar", flag.Name)
	default:
		return fmt.Sprint(v), nil
	}
}
