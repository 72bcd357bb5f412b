package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Standalone article-body extraction for Republika pages. Never called
// by the ingestion pipeline.

var (
	ErrUnrecognizedStructure = errors.New("page structure not recognized")
	ErrContentTooShort       = errors.New("extracted content too short")
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	acceptLanguage   = "id,en;q=0.7"
	minContentLength = 50
)

// Selectors tried inside the main container when the primary article
// block is absent.
var fallbackSelectors = []string{
	".article-body",
	".content",
	".post-content",
	`[itemprop="articleBody"]`,
	".detail-text",
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	junkCharPattern   = regexp.MustCompile(`[^\w\s.,!?;:()\-]`)
)

type Scraper struct {
	httpClient *http.Client
	timeout    time.Duration
}

func NewScraper(httpClient *http.Client, timeout time.Duration) *Scraper {
	return &Scraper{httpClient: httpClient, timeout: timeout}
}

// Run fetches an article page and extracts its body text. Any failure
// comes back as a descriptive error value, never a panic.
func (s *Scraper) Run(ctx context.Context, url string) (string, error) {
	data, err := s.download(ctx, url)
	if err != nil {
		return "", err
	}

	text, err := s.extract(data)
	if err != nil {
		return "", err
	}

	text = sanitize(text)
	if len(text) < minContentLength {
		return "", fmt.Errorf("%w: %d characters", ErrContentTooShort, len(text))
	}

	return text, nil
}

func (s *Scraper) download(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}

	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", acceptLanguage)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("network error: HTTP %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}

	return data, nil
}

// extract locates the known Republika container and pulls its text,
// working through the fallback selector chain. When the container is
// missing entirely a whole-document readability pass is the last
// resort before giving up.
func (s *Scraper) extract(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnrecognizedStructure, err)
	}

	container := doc.Find("div.main-content__left").First()
	if container.Length() == 0 {
		if text, ok := s.extractGeneric(data); ok {
			return text, nil
		}
		return "", fmt.Errorf("%w: missing div.main-content__left", ErrUnrecognizedStructure)
	}

	if block := container.Find("div.article-content").First(); block.Length() > 0 {
		return block.Text(), nil
	}

	for _, selector := range fallbackSelectors {
		if block := container.Find(selector).First(); block.Length() > 0 {
			return block.Text(), nil
		}
	}

	return container.Text(), nil
}

func (s *Scraper) extractGeneric(data []byte) (string, bool) {
	article, err := readability.FromReader(bytes.NewReader(data), nil)
	if err != nil {
		slog.Debug("Readability extraction failed", "error", err)
		return "", false
	}

	text := strings.TrimSpace(article.TextContent)
	return text, text != ""
}

func sanitize(text string) string {
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = junkCharPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
