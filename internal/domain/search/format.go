package search

import (
	"fmt"
	"strings"
)

// FormatResults renders backend result records into a single markdown-like
// text block. Results must already be truncated to the caller's maximum; they
// are rendered in input order. Optional fields that are absent on a record
// are omitted rather than rendered empty.
func FormatResults(results []SearchResult, tool Tool, query string, resp *SearchResponse) string {
	if len(results) == 0 {
		return fmt.Sprintf("No results found for query: %s", query)
	}

	output := []string{fmt.Sprintf("# %s Results for: %s\n", tool.Label(), query)}

	if meta := formatMetadata(query, resp); len(meta) > 0 {
		output = append(output, meta...)
		output = append(output, "")
	}

	limit := tool.SummaryLimit()
	for i, result := range results {
		title := result.Title
		if title == "" {
			title = "No title"
		}
		output = append(output, fmt.Sprintf("## %d. %s", i+1, title))
		output = append(output, fmt.Sprintf("**URL:** %s", result.URL))

		if content := strings.TrimSpace(result.Content); content != "" {
			output = append(output, fmt.Sprintf("**Summary:** %s", truncate(content, limit)))
		}
		if result.PublishedDate != "" {
			output = append(output, fmt.Sprintf("**Published:** %s", result.PublishedDate))
		}
		if result.Thumbnail != "" {
			output = append(output, fmt.Sprintf("**Thumbnail:** %s", result.Thumbnail))
		}
		if result.Length != "" {
			output = append(output, fmt.Sprintf("**Duration:** %s", result.Length))
		}
		if result.ImgSrc != "" {
			output = append(output, fmt.Sprintf("**Image:** %s", result.ImgSrc))
		}
		if result.ImgFormat != "" {
			output = append(output, fmt.Sprintf("**Format:** %s", result.ImgFormat))
		}
		if result.DOI != "" {
			output = append(output, fmt.Sprintf("**DOI:** %s", result.DOI))
		}
		if len(result.Authors) > 0 {
			output = append(output, fmt.Sprintf("**Authors:** %s", strings.Join(result.Authors, ", ")))
		}
		if result.Engine != "" {
			output = append(output, fmt.Sprintf("**Engine:** %s", result.Engine))
		}

		output = append(output, "")
	}

	return strings.Join(output, "\n")
}

// FormatRaw wraps a non-JSON backend body (csv, rss) verbatim under a header
// naming the requested format. The body is not parsed.
func FormatRaw(format Format, tool Tool, query, body string) string {
	return fmt.Sprintf("# %s Results for: %s (%s)\n\n%s", tool.Label(), query, strings.ToUpper(string(format)), body)
}

func formatMetadata(query string, resp *SearchResponse) []string {
	if resp == nil {
		return nil
	}
	var meta []string
	if resp.NumberOfResults > 0 {
		meta = append(meta, fmt.Sprintf("**Total results:** %d", resp.NumberOfResults))
	}
	if resp.Query != "" && resp.Query != query {
		meta = append(meta, fmt.Sprintf("**Processed query:** %s", resp.Query))
	}
	if len(resp.Engines) > 0 {
		meta = append(meta, fmt.Sprintf("**Engines:** %s", strings.Join(resp.Engines, ", ")))
	}
	return meta
}

// truncate cuts text to at most limit runes, appending an ellipsis when a cut
// was made. Text at or under the limit is returned unchanged.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
