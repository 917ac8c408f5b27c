package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcashie/fb-web-import/internal/core/domain"
	"github.com/rcashie/fb-web-import/internal/core/ports/driven"
)

// Ensure SourceLoader implements the interface.
var _ driven.SourceLoader = (*SourceLoader)(nil)

// SourceLoader decodes an import source file into a generic map.
// Files ending in .yaml or .yml are read as YAML, everything else as JSON.
// JSON numbers are kept as json.Number so integer stats print without
// a float conversion.
type SourceLoader struct{}

// NewSourceLoader creates a file source loader.
func NewSourceLoader() *SourceLoader {
	return &SourceLoader{}
}

// Load reads and decodes the file at path.
func (l *SourceLoader) Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%s: %w: empty file", path, domain.ErrInvalidInput)
	}

	var result map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		result, err = decodeYAML(data)
	default:
		result, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, domain.ErrInvalidInput, err)
	}
	return result, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var result map[string]any
	if err := dec.Decode(&result); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level object")
	}
	if result == nil {
		return nil, fmt.Errorf("top-level value must be an object")
	}
	return result, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var result map[string]any
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("top-level value must be a mapping")
	}
	return result, nil
}
