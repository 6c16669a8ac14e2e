package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studiowebux/pickli/internal/types"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Supported item-source formats
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatJSONC = "jsonc"
	FormatYAML  = "yaml"
)

// DetectFormat maps a file extension to an item format. Unknown
// extensions fall back to plain lines.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".jsonc":
		return FormatJSONC
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatLines
	}
}

// ParseFile reads and parses an item source file. An empty format means
// detect from the extension.
func ParseFile(path string, format string) ([]types.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if format == "" {
		format = DetectFormat(path)
	}
	return Parse(data, format)
}

// Parse parses raw item-source bytes in the given format
func Parse(data []byte, format string) ([]types.Item, error) {
	switch format {
	case FormatLines:
		return parseLines(data), nil
	case FormatJSON:
		return parseJSON(data)
	case FormatJSONC:
		return parseJSON(jsonc.ToJSON(data))
	case FormatYAML:
		return parseYAML(data)
	default:
		return nil, fmt.Errorf("unknown item format %q", format)
	}
}

// parseLines treats each non-blank line as one item; id and name are the
// trimmed line itself
func parseLines(data []byte) []types.Item {
	var items []types.Item
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, types.Item{ID: line, Name: line})
	}
	return items
}

// rawItem accepts both object entries and bare strings
type rawItem struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Checked bool   `json:"checked" yaml:"checked"`
}

func (r *rawItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.ID = s
		r.Name = s
		return nil
	}
	type alias rawItem
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = rawItem(a)
	return nil
}

func (r *rawItem) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		r.ID = value.Value
		r.Name = value.Value
		return nil
	}
	type alias rawItem
	var a alias
	if err := value.Decode(&a); err != nil {
		return err
	}
	*r = rawItem(a)
	return nil
}

func parseJSON(data []byte) ([]types.Item, error) {
	var raw []rawItem
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON items: %w", err)
	}
	return finalize(raw)
}

func parseYAML(data []byte) ([]types.Item, error) {
	var raw []rawItem
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML items: %w", err)
	}
	return finalize(raw)
}

// finalize fills in the id/name defaults: name falls back to id and id
// falls back to name, so object entries may carry either
func finalize(raw []rawItem) ([]types.Item, error) {
	items := make([]types.Item, 0, len(raw))
	for i, r := range raw {
		if r.ID == "" {
			r.ID = r.Name
		}
		if r.Name == "" {
			r.Name = r.ID
		}
		if r.ID == "" {
			return nil, fmt.Errorf("item %d has neither id nor name", i)
		}
		items = append(items, types.Item{ID: r.ID, Name: r.Name, Checked: r.Checked})
	}
	return items, nil
}
