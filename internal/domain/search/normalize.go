package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize maps a tool's loosely-typed arguments onto the exact query
// parameter set the SearXNG /search endpoint expects. It applies the
// documented defaults, copies optional parameters through only when present,
// and joins list-valued parameters into comma-separated strings. Values are
// not range-checked; the backend performs its own validation.
func Normalize(tool Tool, args map[string]any) map[string]string {
	params := map[string]string{
		"q":          StringArg(args, "query", ""),
		"format":     StringArg(args, "format", "json"),
		"categories": tool.Category(),
		"language":   StringArg(args, "language", "en"),
	}

	// Only the general search tool may override its category; the
	// category-specific tools are the override.
	if tool == ToolSearch {
		params["categories"] = StringArg(args, "categories", tool.Category())
	}
	if tool == ToolAdvancedSearch {
		params["q"] = SynthesizeQuery(args)
	}

	if engines := ListArg(args, "engines"); engines != "" {
		params["engines"] = engines
	}
	if pageno, ok := IntArg(args, "pageno"); ok {
		params["pageno"] = strconv.Itoa(pageno)
	}
	if timeRange := StringArg(args, "time_range", ""); timeRange != "" {
		params["time_range"] = timeRange
	}
	if safesearch, ok := IntArg(args, "safesearch"); ok {
		params["safesearch"] = strconv.Itoa(safesearch)
	}
	if newTab, ok := IntArg(args, "results_on_new_tab"); ok {
		params["results_on_new_tab"] = strconv.Itoa(newTab)
	}
	if proxy, ok := BoolArg(args, "image_proxy"); ok {
		params["image_proxy"] = strconv.FormatBool(proxy)
	}
	if autocomplete := StringArg(args, "autocomplete", ""); autocomplete != "" {
		params["autocomplete"] = autocomplete
	}
	if theme := StringArg(args, "theme", ""); theme != "" {
		params["theme"] = theme
	}
	for _, key := range []string{"enabled_plugins", "disabled_plugins", "enabled_engines", "disabled_engines"} {
		if joined := ListArg(args, key); joined != "" {
			params[key] = joined
		}
	}

	return params
}

// StringArg returns the string value for key, or fallback when the key is
// absent, null, or not a string.
func StringArg(args map[string]any, key, fallback string) string {
	if val, ok := args[key]; ok {
		if str, ok := val.(string); ok && str != "" {
			return str
		}
	}
	return fallback
}

// IntArg returns the integer value for key. JSON numbers decode as float64,
// so both representations are accepted.
func IntArg(args map[string]any, key string) (int, bool) {
	switch val := args[key].(type) {
	case float64:
		return int(val), true
	case int:
		return val, true
	default:
		return 0, false
	}
}

// BoolArg returns the boolean value for key when present.
func BoolArg(args map[string]any, key string) (bool, bool) {
	if val, ok := args[key].(bool); ok {
		return val, true
	}
	return false, false
}

// ListArg returns the value for key joined into a comma-separated string.
// Sequences are joined; an already-joined string passes through unchanged.
func ListArg(args map[string]any, key string) string {
	switch val := args[key].(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// StringSliceArg returns the value for key as a string slice, accepting both
// JSON arrays and pre-joined values.
func StringSliceArg(args map[string]any, key string) []string {
	switch val := args[key].(type) {
	case []string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return parts
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}
