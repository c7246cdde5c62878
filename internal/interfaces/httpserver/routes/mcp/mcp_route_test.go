package mcp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/mcp", MCPMethodGuard(allowedMCPMethods), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"passed": true})
	})
	return router
}

func postMCP(router *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestMCPMethodGuardAllowsKnownMethods(t *testing.T) {
	router := newGuardedRouter()

	for _, method := range []string{"initialize", "ping", "tools/list", "tools/call", "prompts/list", "resources/list"} {
		w := postMCP(router, `{"jsonrpc":"2.0","method":"`+method+`","id":1}`)
		if w.Code != http.StatusOK {
			t.Errorf("method %s: status = %d, want 200", method, w.Code)
		}
	}
}

func TestMCPMethodGuardRejections(t *testing.T) {
	router := newGuardedRouter()

	cases := []struct {
		name string
		body string
	}{
		{"unsupported method", `{"jsonrpc":"2.0","method":"resources/subscribe","id":1}`},
		{"missing method", `{"jsonrpc":"2.0","id":1}`},
		{"invalid payload", `{not json`},
		{"empty body", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postMCP(router, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestMCPMethodGuardPreservesBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var seen string
	router.POST("/mcp", MCPMethodGuard(allowedMCPMethods), func(c *gin.Context) {
		buf := make([]byte, 1024)
		n, _ := c.Request.Body.Read(buf)
		seen = string(buf[:n])
		c.Status(http.StatusOK)
	})

	body := `{"jsonrpc":"2.0","method":"tools/list","id":7}`
	postMCP(router, body)

	if seen != body {
		t.Errorf("downstream body = %q, want original payload", seen)
	}
}
