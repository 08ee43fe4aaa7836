package leveldata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions Load understands.
var Extensions = []string{".json", ".yaml", ".yml", ".tmx"}

// Load reads the level at name within fsys, picking the format from the file
// extension. It takes an fs.FS so callers can pass embed.FS (bundled levels)
// or os.DirFS (files on disk).
func Load(fsys fs.FS, name string) (*Level, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext == ".tmx" {
		return loadTMX(fsys, name)
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, name)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	switch ext {
	case ".json":
		return parseJSON(data, name)
	case ".yaml", ".yml":
		return parseYAML(data, name)
	default:
		return nil, fmt.Errorf("%w: %s: unsupported extension %q", ErrMalformedDocument, name, ext)
	}
}

// LoadFile loads a level from a path on disk.
func LoadFile(p string) (*Level, error) {
	return Load(os.DirFS(filepath.Dir(p)), filepath.Base(p))
}

// List returns the sorted stem names of every level in dir.
func List(fsys fs.FS, dir string) ([]string, error) {
	var names []string
	for _, ext := range Extensions {
		pattern := dir + "/*" + ext
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			names = append(names, path.Base(m))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Resolve finds the file in dir matching name, with or without extension.
func Resolve(fsys fs.FS, dir, name string) (string, bool) {
	names, err := List(fsys, dir)
	if err != nil {
		return "", false
	}
	for _, n := range names {
		if n == name || strings.TrimSuffix(n, path.Ext(n)) == name {
			return dir + "/" + n, true
		}
	}
	return "", false
}

func parseJSON(data []byte, source string) (*Level, error) {
	var doc *document
	if err := json.Unmarshal(data, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, &FieldError{Source: source, Field: typeErr.Field,
				Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, source, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s: empty document", ErrMalformedDocument, source)
	}
	return build(doc, source)
}

func parseYAML(data []byte, source string) (*Level, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s: empty document", ErrMalformedDocument, source)
	}

	var doc *document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, &FieldError{Source: source, Reason: strings.Join(typeErr.Errors, "; ")}
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDocument, source, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: %s: empty document", ErrMalformedDocument, source)
	}
	return build(doc, source)
}
