package search

import (
	"fmt"
	"strings"
)

// SynthesizeQuery builds the advanced-search query text by concatenating the
// base query with search operators: site:, filetype:, a quoted exact phrase,
// and one -term token per excluded term, in that order, space-joined.
func SynthesizeQuery(args map[string]any) string {
	var parts []string

	if base := strings.TrimSpace(StringArg(args, "query", "")); base != "" {
		parts = append(parts, base)
	}
	if site := strings.TrimSpace(StringArg(args, "site", "")); site != "" {
		parts = append(parts, "site:"+site)
	}
	if filetype := strings.TrimSpace(StringArg(args, "filetype", "")); filetype != "" {
		parts = append(parts, "filetype:"+filetype)
	}
	if phrase := strings.TrimSpace(StringArg(args, "exact_phrase", "")); phrase != "" {
		parts = append(parts, fmt.Sprintf("%q", phrase))
	}
	for _, term := range StringSliceArg(args, "exclude_terms") {
		term = strings.TrimSpace(term)
		if term != "" {
			parts = append(parts, "-"+term)
		}
	}

	return strings.Join(parts, " ")
}
