// Package staticnames reads display names from a YAML file. The engine
// treats this source as best-effort: read or parse failures surface as
// errors here and are absorbed by the caller.
package staticnames

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrNoNames = errors.New("name file contains no names")

type Provider struct {
	Path string
}

type nameFile struct {
	Names []string `yaml:"names"`
}

func (p Provider) Names(_ context.Context) ([]string, error) {
	b, err := os.ReadFile(filepath.Clean(p.Path))
	if err != nil {
		return nil, err
	}
	var f nameFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	out := f.Names[:0]
	for _, n := range f.Names {
		if n != "" {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoNames
	}
	return out, nil
}
