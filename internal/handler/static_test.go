package handler_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/tinyrecords/tinyrecords-go/internal/handler"
)

func TestSPA_ServesFilesWithIndexFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>index</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}

	spa := handler.SPA(dir)

	cases := []struct {
		path string
		want string
	}{
		{"/", "<html>index</html>"},
		{"/app.js", "console.log(1)"},
		{"/some/client/route", "<html>index</html>"},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		spa.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

		if rr.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", tc.path, rr.Code)
		}
		if rr.Body.String() != tc.want {
			t.Errorf("%s: expected body %q, got %q", tc.path, tc.want, rr.Body.String())
		}
	}
}
