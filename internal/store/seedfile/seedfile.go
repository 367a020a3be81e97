// Package seedfile reads initial record sets from disk.
//
// Files are read-only input: the store never writes its state back.
// Either a bare list of records or a {name, records} object is accepted,
// as JSON (.json) or YAML (.yaml, .yml).
package seedfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tasks/internal/model"
)

// ErrUnsupportedFormat is returned for a file extension Load cannot decode.
var ErrUnsupportedFormat = errors.New("unsupported seed file format")

// Collection is a named record set.
type Collection struct {
	Name    string         `json:"name" yaml:"name"`
	Records []model.Record `json:"records" yaml:"records"`
}

// Load returns the records in path. A missing file yields an empty list.
func Load(path string) ([]model.Record, error) {
	c, err := LoadCollection(path)
	if err != nil {
		return nil, err
	}
	return c.Records, nil
}

// LoadCollection is Load but keeps the collection name, if the file has one.
func LoadCollection(path string) (Collection, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return Collection{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Collection{Records: []model.Record{}}, nil
		}
		return Collection{}, fmt.Errorf("read file: %w", err)
	}

	var c Collection
	if ext == ".json" {
		c, err = decodeJSON(b)
	} else {
		c, err = decodeYAML(b)
	}
	if err != nil {
		return Collection{}, err
	}
	if c.Records == nil {
		c.Records = []model.Record{}
	}
	return c, nil
}

func decodeJSON(b []byte) (Collection, error) {
	var c Collection
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return c, nil
	}
	if b[0] == '[' {
		if err := json.Unmarshal(b, &c.Records); err != nil {
			return c, fmt.Errorf("json unmarshal: %w", err)
		}
		return c, nil
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("json unmarshal: %w", err)
	}
	return c, nil
}

func decodeYAML(b []byte) (Collection, error) {
	var (
		c   Collection
		doc yaml.Node
	)
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return c, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return c, nil
	}

	root := doc.Content[0]
	var err error
	if root.Kind == yaml.SequenceNode {
		err = root.Decode(&c.Records)
	} else {
		err = root.Decode(&c)
	}
	if err != nil {
		return c, fmt.Errorf("yaml decode: %w", err)
	}
	return c, nil
}
