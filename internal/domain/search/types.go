// Package search holds the transport-agnostic core of the bridge: the tool
// catalog, the parameter normalizer that maps tool arguments onto SearXNG
// query parameters, and the formatter that renders backend results as text.
package search

// Tool identifies one of the exposed search operations.
type Tool string

const (
	ToolSearch         Tool = "search"
	ToolSearchImages   Tool = "search_images"
	ToolSearchNews     Tool = "search_news"
	ToolSearchVideos   Tool = "search_videos"
	ToolSearchScience  Tool = "search_science"
	ToolAdvancedSearch Tool = "advanced_search"
)

// Valid reports whether the tool is part of the catalog.
func (t Tool) Valid() bool {
	switch t {
	case ToolSearch, ToolSearchImages, ToolSearchNews, ToolSearchVideos, ToolSearchScience, ToolAdvancedSearch:
		return true
	default:
		return false
	}
}

// Category returns the SearXNG category the tool searches by default.
func (t Tool) Category() string {
	switch t {
	case ToolSearchImages:
		return "images"
	case ToolSearchNews:
		return "news"
	case ToolSearchVideos:
		return "videos"
	case ToolSearchScience:
		return "science"
	default:
		return "general"
	}
}

// Label returns the human-readable search-type label used in formatted output.
func (t Tool) Label() string {
	switch t {
	case ToolSearchImages:
		return "Image Search"
	case ToolSearchNews:
		return "News Search"
	case ToolSearchVideos:
		return "Video Search"
	case ToolSearchScience:
		return "Science Search"
	case ToolAdvancedSearch:
		return "Advanced Search"
	default:
		return "Web Search"
	}
}

// SummaryLimit returns the maximum summary length for formatted results.
// The advanced variant renders richer blocks and gets a longer limit.
func (t Tool) SummaryLimit() int {
	if t == ToolAdvancedSearch {
		return 300
	}
	return 200
}

// Format is the backend output format requested by the caller. JSON is
// decoded and rendered; anything else passes through verbatim.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatRSS  Format = "rss"
)

// SearchResult is one backend-returned record. No field is guaranteed
// present; absence is not an error.
type SearchResult struct {
	Title         string   `json:"title,omitempty"`
	URL           string   `json:"url,omitempty"`
	Content       string   `json:"content,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Length        string   `json:"length,omitempty"`
	ImgSrc        string   `json:"img_src,omitempty"`
	ImgFormat     string   `json:"img_format,omitempty"`
	DOI           string   `json:"doi,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	Engine        string   `json:"engine,omitempty"`
}

// SearchResponse is the decoded SearXNG /search JSON body. Result ordering is
// whatever the backend returned; the service truncates, never re-ranks.
type SearchResponse struct {
	Query           string         `json:"query,omitempty"`
	NumberOfResults int            `json:"number_of_results,omitempty"`
	Results         []SearchResult `json:"results"`
	Engines         []string       `json:"engines,omitempty"`
	Corrections     []string       `json:"corrections,omitempty"`
	Suggestions     []string       `json:"suggestions,omitempty"`
}
