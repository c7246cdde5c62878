package search

import (
	"testing"
)

func TestNormalizeDefaults(t *testing.T) {
	params := Normalize(ToolSearch, map[string]any{"query": "golang"})

	want := map[string]string{
		"q":          "golang",
		"format":     "json",
		"categories": "general",
		"language":   "en",
	}
	for key, expected := range want {
		if params[key] != expected {
			t.Errorf("param %q = %q, want %q", key, params[key], expected)
		}
	}
	if _, ok := params["pageno"]; ok {
		t.Error("pageno should be absent when not provided")
	}
	if _, ok := params["time_range"]; ok {
		t.Error("time_range should be absent when not provided")
	}
}

func TestNormalizeCategoryPerTool(t *testing.T) {
	cases := []struct {
		tool Tool
		want string
	}{
		{ToolSearch, "general"},
		{ToolSearchImages, "images"},
		{ToolSearchNews, "news"},
		{ToolSearchVideos, "videos"},
		{ToolSearchScience, "science"},
		{ToolAdvancedSearch, "general"},
	}

	for _, tc := range cases {
		params := Normalize(tc.tool, map[string]any{"query": "x"})
		if params["categories"] != tc.want {
			t.Errorf("%s: categories = %q, want %q", tc.tool, params["categories"], tc.want)
		}
	}
}

func TestNormalizeCategoryOverrideOnlyForSearch(t *testing.T) {
	args := map[string]any{"query": "x", "categories": "map"}

	if got := Normalize(ToolSearch, args)["categories"]; got != "map" {
		t.Errorf("search categories = %q, want map", got)
	}
	// Category tools ignore the override; the tool choice is the category.
	if got := Normalize(ToolSearchImages, args)["categories"]; got != "images" {
		t.Errorf("search_images categories = %q, want images", got)
	}
}

func TestNormalizeListJoin(t *testing.T) {
	params := Normalize(ToolSearch, map[string]any{
		"query":            "x",
		"engines":          []any{"google", "bing"},
		"disabled_plugins": []string{"a", "b", "c"},
	})

	if params["engines"] != "google,bing" {
		t.Errorf("engines = %q, want google,bing", params["engines"])
	}
	if params["disabled_plugins"] != "a,b,c" {
		t.Errorf("disabled_plugins = %q, want a,b,c", params["disabled_plugins"])
	}
}

func TestNormalizePassesValuesWithoutRangeCheck(t *testing.T) {
	// Out-of-range values are forwarded untouched; the backend validates.
	params := Normalize(ToolSearch, map[string]any{
		"query":      "x",
		"safesearch": float64(7),
		"pageno":     float64(0),
	})

	if params["safesearch"] != "7" {
		t.Errorf("safesearch = %q, want 7", params["safesearch"])
	}
	if params["pageno"] != "0" {
		t.Errorf("pageno = %q, want 0", params["pageno"])
	}
}

func TestNormalizeScalarConversions(t *testing.T) {
	params := Normalize(ToolSearch, map[string]any{
		"query":       "x",
		"image_proxy": true,
		"pageno":      float64(3),
		"time_range":  "day",
		"language":    "de",
		"format":      "csv",
	})

	want := map[string]string{
		"image_proxy": "true",
		"pageno":      "3",
		"time_range":  "day",
		"language":    "de",
		"format":      "csv",
	}
	for key, expected := range want {
		if params[key] != expected {
			t.Errorf("param %q = %q, want %q", key, params[key], expected)
		}
	}
}

func TestNormalizeMissingQuery(t *testing.T) {
	params := Normalize(ToolSearch, map[string]any{})
	if params["q"] != "" {
		t.Errorf("q = %q, want empty string", params["q"])
	}
}

func TestSynthesizeQueryAllOperators(t *testing.T) {
	query := SynthesizeQuery(map[string]any{
		"query":         "cats",
		"site":          "example.com",
		"filetype":      "pdf",
		"exact_phrase":  "big cat",
		"exclude_terms": []any{"dog"},
	})

	want := `cats site:example.com filetype:pdf "big cat" -dog`
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
}

func TestSynthesizeQueryPartialOperators(t *testing.T) {
	cases := []struct {
		name string
		args map[string]any
		want string
	}{
		{
			name: "base only",
			args: map[string]any{"query": "cats"},
			want: "cats",
		},
		{
			name: "site only",
			args: map[string]any{"query": "cats", "site": "example.com"},
			want: "cats site:example.com",
		},
		{
			name: "multiple exclusions",
			args: map[string]any{"query": "cats", "exclude_terms": []any{"dog", "bird"}},
			want: "cats -dog -bird",
		},
		{
			name: "empty base with operators",
			args: map[string]any{"site": "example.com"},
			want: "site:example.com",
		},
		{
			name: "blank operator values skipped",
			args: map[string]any{"query": "cats", "site": "  ", "filetype": ""},
			want: "cats",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SynthesizeQuery(tc.args); got != tc.want {
				t.Errorf("query = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestListArg(t *testing.T) {
	args := map[string]any{
		"joined": "a,b",
		"slice":  []string{"x", "y"},
		"mixed":  []any{"p", "q"},
		"number": 42,
	}

	cases := []struct {
		key  string
		want string
	}{
		{"joined", "a,b"},
		{"slice", "x,y"},
		{"mixed", "p,q"},
		{"number", ""},
		{"missing", ""},
	}
	for _, tc := range cases {
		if got := ListArg(args, tc.key); got != tc.want {
			t.Errorf("ListArg(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

func TestIntArgAcceptsJSONNumbers(t *testing.T) {
	args := map[string]any{"float": float64(5), "int": 7, "string": "9"}

	if n, ok := IntArg(args, "float"); !ok || n != 5 {
		t.Errorf("IntArg(float) = %d, %v", n, ok)
	}
	if n, ok := IntArg(args, "int"); !ok || n != 7 {
		t.Errorf("IntArg(int) = %d, %v", n, ok)
	}
	if _, ok := IntArg(args, "string"); ok {
		t.Error("IntArg(string) should not convert")
	}
}
