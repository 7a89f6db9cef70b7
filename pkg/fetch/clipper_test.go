package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const page = `<html>
<head><title>Overnight Sourdough</title><script>track();</script></head>
<body>
<nav>Home | Recipes</nav>
<h1>Overnight Sourdough</h1>
<p>Mix flour and water.</p>
<p>Rest   overnight.</p>
<footer>© somewhere</footer>
</body>
</html>`

func TestPageExtractsTitleAndText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	clip, err := Page(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.Title != "Overnight Sourdough" {
		t.Fatalf("unexpected title: %q", clip.Title)
	}
	if !strings.Contains(clip.Text, "Mix flour and water.") {
		t.Fatalf("body text missing: %q", clip.Text)
	}
	if strings.Contains(clip.Text, "track()") {
		t.Fatal("script content should be stripped")
	}
	if strings.Contains(clip.Text, "Home | Recipes") {
		t.Fatal("nav content should be stripped")
	}
	if strings.Contains(clip.Text, "Rest   overnight") {
		t.Fatal("whitespace should be collapsed")
	}
}

func TestPageNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := Page(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}
