package handler

import (
	"net/http"
	"os"
	"path"
)

// SPA serves a single-page app from dir: real files are served as-is and
// every other path falls back to index.html so client-side routing works.
func SPA(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	indexPath := path.Join(dir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqPath := path.Clean(r.URL.Path)
		if reqPath == "/" {
			http.ServeFile(w, r, indexPath)
			return
		}

		if _, err := os.Stat(path.Join(dir, reqPath)); err == nil {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, indexPath)
	})
}
