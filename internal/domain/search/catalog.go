package search

// ToolSpec describes one catalog entry as exposed over GET /tools and the MCP
// tools/list operation.
type ToolSpec struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func propDefault(typ, desc string, def any) map[string]any {
	return map[string]any{"type": typ, "description": desc, "default": def}
}

func stringList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// commonProperties are the backend parameters accepted by every tool.
func commonProperties() map[string]any {
	return map[string]any{
		"language":    propDefault("string", "Search language code", "en"),
		"max_results": propDefault("integer", "Maximum results to return", 10),
		"pageno":      prop("integer", "Search page number, starts at 1"),
		"time_range":  prop("string", "Filter by time range: day, month or year"),
		"safesearch":  prop("integer", "Safe search level: 0 (off), 1 (moderate), 2 (strict)"),
	}
}

// Catalog returns the fixed tool catalog. Schemas are declared literally so
// the HTTP /tools listing and the MCP tools/list response stay identical.
func Catalog() []ToolSpec {
	searchProps := commonProperties()
	searchProps["query"] = prop("string", "Search query")
	searchProps["categories"] = propDefault("string", "Search categories", "general")
	searchProps["engines"] = stringList("Specific engines to query")
	searchProps["format"] = propDefault("string", "Output format: json, csv or rss", "json")
	searchProps["results_on_new_tab"] = prop("integer", "Open results on a new tab (0 or 1)")
	searchProps["image_proxy"] = prop("boolean", "Proxy image results through the backend")
	searchProps["autocomplete"] = prop("string", "Autocomplete provider name")
	searchProps["theme"] = prop("string", "Interface theme name")
	searchProps["enabled_plugins"] = stringList("Plugins to enable")
	searchProps["disabled_plugins"] = stringList("Plugins to disable")
	searchProps["enabled_engines"] = stringList("Engines to enable")
	searchProps["disabled_engines"] = stringList("Engines to disable")

	advancedProps := commonProperties()
	advancedProps["query"] = prop("string", "Base search query")
	advancedProps["site"] = prop("string", "Restrict results to this site")
	advancedProps["filetype"] = prop("string", "Restrict results to this file type")
	advancedProps["exact_phrase"] = prop("string", "Phrase that must appear verbatim")
	advancedProps["exclude_terms"] = stringList("Terms to exclude from results")
	advancedProps["engines"] = stringList("Specific engines to query")

	categoryProps := func(queryDesc string) map[string]any {
		props := commonProperties()
		props["query"] = prop("string", queryDesc)
		props["engines"] = stringList("Specific engines to query")
		return props
	}

	objectSchema := func(props map[string]any) map[string]any {
		return map[string]any{
			"type":       "object",
			"properties": props,
			"required":   []string{"query"},
		}
	}

	return []ToolSpec{
		{
			Name:        string(ToolSearch),
			Description: "Search the web using the SearXNG metasearch engine",
			InputSchema: objectSchema(searchProps),
		},
		{
			Name:        string(ToolSearchImages),
			Description: "Search for images using SearXNG",
			InputSchema: objectSchema(categoryProps("Image search query")),
		},
		{
			Name:        string(ToolSearchNews),
			Description: "Search for news using SearXNG",
			InputSchema: objectSchema(categoryProps("News search query")),
		},
		{
			Name:        string(ToolSearchVideos),
			Description: "Search for videos using SearXNG",
			InputSchema: objectSchema(categoryProps("Video search query")),
		},
		{
			Name:        string(ToolSearchScience),
			Description: "Search scientific publications using SearXNG",
			InputSchema: objectSchema(categoryProps("Science search query")),
		},
		{
			Name:        string(ToolAdvancedSearch),
			Description: "Web search with site, filetype, exact-phrase and exclusion operators",
			InputSchema: objectSchema(advancedProps),
		},
	}
}
