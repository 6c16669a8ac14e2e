package parser

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
	"github.com/studiowebux/pickli/internal/types"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ParseQuery extracts items from an arbitrary structured document by
// applying a JMESPath expression first. The expression must produce an
// array of strings or of {id, name, checked} objects.
func ParseQuery(data []byte, format string, expr string) ([]types.Item, error) {
	var doc interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON document: %w", err)
		}
	case FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSONC document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML document: %w", err)
		}
	default:
		return nil, fmt.Errorf("--query requires a structured format, got %q", format)
	}

	result, err := jmespath.Search(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to apply query: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("query %q matched nothing", expr)
	}

	// Round-trip through JSON so the result reuses the item decoding rules
	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query result: %w", err)
	}
	items, err := parseJSON(encoded)
	if err != nil {
		return nil, fmt.Errorf("query result is not an item list: %w", err)
	}
	return items, nil
}
