package searxng

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"searxng-bridge/internal/utils/platformerrors"
)

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestSearchSendsQueryParams(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query":"golang","results":[{"title":"Go","url":"https://go.dev","content":"The Go programming language"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Search(context.Background(), map[string]string{
		"q":      "golang",
		"format": "json",
	}, http.MethodGet)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Go", resp.Results[0].Title)
	assert.Equal(t, []string{"golang"}, gotQuery["q"])
	assert.Equal(t, []string{"json"}, gotQuery["format"])
}

func TestSearchPostSendsFormData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "cats site:example.com", r.PostFormValue("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), map[string]string{
		"q": "cats site:example.com",
	}, http.MethodPost)

	require.NoError(t, err)
}

func TestSearchBackendErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), map[string]string{"q": "x"}, http.MethodGet)

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
	assert.Contains(t, err.Error(), "503")
}

func TestSearchInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), map[string]string{"q": "x"}, http.MethodGet)

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
}

func TestSearchBackendUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server.URL)
	_, err := client.Search(context.Background(), map[string]string{"q": "x"}, http.MethodGet)

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
}

func TestSearchRawReturnsBodyVerbatim(t *testing.T) {
	body := "title,url\nGo,https://go.dev\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	got, err := client.SearchRaw(context.Background(), map[string]string{"q": "x", "format": "csv"})

	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	assert.NoError(t, client.Ping(context.Background()))

	server.Close()
	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeExternal))
}
