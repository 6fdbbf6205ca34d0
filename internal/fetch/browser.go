package fetch

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// MinRenderedLength is the minimum body text length to consider a plain HTTP
// fetch sufficient. Shorter content suggests a JavaScript-rendered SPA that
// needs the browser provider instead.
const MinRenderedLength = 500

// ShouldUseBrowser reports whether the extracted text is too short,
// indicating the page is likely a JavaScript-rendered SPA.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinRenderedLength
}

// BrowserProvider is a ContentProvider that renders pages in a headless
// browser before answering selector queries. Requires Chrome/Chromium on the
// host. Rendered documents are cached per URL.
type BrowserProvider struct {
	timeout time.Duration

	mu   sync.Mutex
	docs map[string]*goquery.Document
}

// NewBrowserProvider creates a BrowserProvider with the given render timeout.
// A zero timeout uses DefaultTimeout.
func NewBrowserProvider(timeout time.Duration) *BrowserProvider {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &BrowserProvider{
		timeout: timeout,
		docs:    make(map[string]*goquery.Document),
	}
}

// InnerText returns the cleaned inner text of the first element matching
// selector in the rendered page. All failures report ok=false.
func (p *BrowserProvider) InnerText(ctx context.Context, urlStr, selector string) (string, bool) {
	doc, err := p.document(ctx, urlStr)
	if err != nil {
		return "", false
	}
	return selectText(doc, selector)
}

// Page returns the rendered page title and cleaned body text.
func (p *BrowserProvider) Page(ctx context.Context, urlStr string) (string, string, error) {
	doc, err := p.document(ctx, urlStr)
	if err != nil {
		return "", "", err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	body := cleanWhitespace(doc.Find("body").Text())
	return title, body, nil
}

// document renders and parses a page, caching the result per URL.
func (p *BrowserProvider) document(ctx context.Context, urlStr string) (*goquery.Document, error) {
	p.mu.Lock()
	if doc, ok := p.docs[urlStr]; ok {
		p.mu.Unlock()
		return doc, nil
	}
	p.mu.Unlock()

	html, err := renderPage(ctx, urlStr, p.timeout)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "browser rendering failed", Cause: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to parse rendered HTML", Cause: err}
	}

	p.mu.Lock()
	p.docs[urlStr] = doc
	p.mu.Unlock()

	return doc, nil
}

// renderPage loads a URL in a headless browser and returns the rendered HTML.
func renderPage(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to populate the posting body.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss common cookie banners; ignore failures.
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}
