// Package attrs renders the free-form product attribute map for display.
package attrs

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Format formats attributes as a pretty-printed JSON string
func Format(attributes map[string]any) (string, error) {
	if len(attributes) == 0 {
		return "{}", nil
	}

	jsonBytes, err := json.MarshalIndent(attributes, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format attributes: %w", err)
	}

	return string(jsonBytes), nil
}

// Compact formats attributes as compact (single-line) JSON
func Compact(attributes map[string]any) (string, error) {
	if len(attributes) == 0 {
		return "{}", nil
	}

	jsonBytes, err := json.Marshal(attributes)
	if err != nil {
		return "", fmt.Errorf("failed to compact attributes: %w", err)
	}

	return string(jsonBytes), nil
}

// Truncate truncates a JSON string for table display
func Truncate(jsonStr string, maxLen int) string {
	if len(jsonStr) <= maxLen {
		return jsonStr
	}

	// Try to truncate at a reasonable boundary
	truncated := jsonStr[:maxLen-3]

	// Find last space, comma, or bracket
	lastGood := strings.LastIndexAny(truncated, " ,{}[]")
	if lastGood > maxLen/2 {
		truncated = truncated[:lastGood]
	}

	return truncated + "..."
}

// Entry is one flattened attribute for row-by-row display
type Entry struct {
	Path  string // dotted path, e.g. "dimensions.width"
	Value string
}

// Flatten turns a nested attribute map into sorted path/value rows.
// Nested objects use dotted paths, arrays use numeric indexes.
func Flatten(attributes map[string]any) []Entry {
	var entries []Entry
	flattenValue(attributes, "", &entries)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	return entries
}

func flattenValue(value any, path string, entries *[]Entry) {
	switch v := value.(type) {
	case map[string]any:
		for key, val := range v {
			flattenValue(val, joinPath(path, key), entries)
		}
	case []any:
		for i, val := range v {
			flattenValue(val, joinPath(path, strconv.Itoa(i)), entries)
		}
	case nil:
		*entries = append(*entries, Entry{Path: path, Value: "null"})
	case string:
		*entries = append(*entries, Entry{Path: path, Value: v})
	case bool:
		*entries = append(*entries, Entry{Path: path, Value: strconv.FormatBool(v)})
	case float64:
		*entries = append(*entries, Entry{Path: path, Value: strconv.FormatFloat(v, 'f', -1, 64)})
	default:
		*entries = append(*entries, Entry{Path: path, Value: fmt.Sprintf("%v", v)})
	}
}

func joinPath(prefix, part string) string {
	if prefix == "" {
		return part
	}
	return prefix + "." + part
}
