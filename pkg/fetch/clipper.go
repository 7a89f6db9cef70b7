// Package fetch retrieves a recipe page and reduces it to usable text.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Clip is the extracted content of a recipe page.
type Clip struct {
	Title string
	Text  string
}

// maxTextLen keeps pathological pages from flooding recipe notes.
const maxTextLen = 4000

// Page fetches url and extracts a title and the cleaned body text.
func Page(ctx context.Context, url string) (*Clip, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch: %s returned status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	// Strip noise before taking the text.
	doc.Find("script, style, nav, footer, iframe").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	text := collapseWhitespace(doc.Find("body").Text())
	if len(text) > maxTextLen {
		text = text[:maxTextLen]
	}

	return &Clip{Title: title, Text: text}, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
