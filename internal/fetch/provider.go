package fetch

import (
	"context"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// ContentProvider answers content queries for a page. InnerText returns the
// inner text of the first element matching a CSS selector, or ok=false when
// the element is absent or the page cannot be fetched. Page returns the page
// title and full body text for callers that need a last-resort degraded view.
type ContentProvider interface {
	InnerText(ctx context.Context, urlStr, selector string) (string, bool)
	Page(ctx context.Context, urlStr string) (title, body string, err error)
}

// HTTPProvider is a ContentProvider backed by plain HTTP fetching and static
// HTML parsing. Fetch outcomes, including failures, are cached per URL so a
// selector fallback chain issues one network request, not one per selector.
type HTTPProvider struct {
	opts *Options

	mu   sync.Mutex
	docs map[string]*pageResult
}

// pageResult is a cached fetch outcome, successful or not.
type pageResult struct {
	doc *goquery.Document
	err error
}

// NewHTTPProvider creates an HTTPProvider. A nil opts uses defaults.
func NewHTTPProvider(opts *Options) *HTTPProvider {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &HTTPProvider{
		opts: opts,
		docs: make(map[string]*pageResult),
	}
}

// InnerText returns the cleaned inner text of the first element matching
// selector. All failures (fetch error, parse error, no match, empty text)
// report ok=false.
func (p *HTTPProvider) InnerText(ctx context.Context, urlStr, selector string) (string, bool) {
	doc, err := p.document(ctx, urlStr)
	if err != nil {
		return "", false
	}
	return selectText(doc, selector)
}

// Page returns the page title and the cleaned body text.
func (p *HTTPProvider) Page(ctx context.Context, urlStr string) (string, string, error) {
	doc, err := p.document(ctx, urlStr)
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	body := cleanWhitespace(doc.Find("body").Text())
	return title, body, nil
}

// document fetches and parses a page, caching the outcome per URL. A failed
// fetch is cached too, so an unreachable URL costs one network attempt for the
// whole selector chain.
func (p *HTTPProvider) document(ctx context.Context, urlStr string) (*goquery.Document, error) {
	p.mu.Lock()
	if cached, ok := p.docs[urlStr]; ok {
		p.mu.Unlock()
		return cached.doc, cached.err
	}
	p.mu.Unlock()

	result := &pageResult{}
	if html, err := fetchHTML(ctx, urlStr, p.opts); err != nil {
		result.err = err
	} else if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err != nil {
		result.err = &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	} else {
		result.doc = doc
	}

	p.mu.Lock()
	p.docs[urlStr] = result
	p.mu.Unlock()

	return result.doc, result.err
}

// selectText extracts the usable text of the first match for selector. Meta
// elements carry their text in the content attribute rather than inner text.
func selectText(doc *goquery.Document, selector string) (string, bool) {
	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", false
	}

	first := selection.First()
	if goquery.NodeName(first) == "meta" {
		content, exists := first.Attr("content")
		content = strings.TrimSpace(content)
		return content, exists && content != ""
	}

	text := cleanWhitespace(first.Text())
	if text == "" {
		return "", false
	}
	return text, true
}
