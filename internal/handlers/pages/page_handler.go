// internal/handlers/pages/page_handler.go
package pages

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"hrconsole-gateway/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the built console frontend. Unknown page paths fall
// back to index.html so client-side routing can take over.
type PageHandler struct {
	root string
}

// NewPageHandler serves files under root. An empty root disables page
// serving and every request gets a JSON 404.
func NewPageHandler(root string) *PageHandler {
	return &PageHandler{root: root}
}

func (h *PageHandler) Serve(c *gin.Context) {
	if h.root == "" || (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
		response.NotFound(c)
		return
	}

	if strings.Contains(c.Request.URL.Path, "..") {
		response.NotFound(c)
		return
	}

	clean := path.Clean("/" + c.Request.URL.Path)
	file := filepath.Join(h.root, filepath.FromSlash(clean))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}

	// Missing assets are real 404s; only page routes get the SPA shell.
	if path.Ext(clean) != "" || strings.HasPrefix(clean, "/_next/") {
		response.NotFound(c)
		return
	}

	index := filepath.Join(h.root, "index.html")
	if _, err := os.Stat(index); err != nil {
		response.NotFound(c)
		return
	}
	c.File(index)
}
