// Package site serves the embedded browser client.
package site

import (
	"bytes"
	"context"
	"net/http"
	"time"
)

// IndexPath is where the root path redirects.
const IndexPath = "/static/index.html"

// Register attaches the browser client routes to mux.
//
//	GET /          -> 307 to /static/index.html
//	GET /static/*  -> embedded assets
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("GET /{$}", NewRootHandler())
	mux.Handle("GET "+IndexPath, NewIndexHandler())
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(FS())))
}

// RootHandler redirects the bare root to the client entry page.
type RootHandler struct{}

// NewRootHandler creates a new root handler
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
}

// IndexHandler serves the entry page directly. http.FileServer would
// redirect /static/index.html to /static/.
type IndexHandler struct {
	page []byte
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler() *IndexHandler {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		panic("embedded index.html missing: " + err.Error())
	}
	return &IndexHandler{page: page}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(h.page))
}
