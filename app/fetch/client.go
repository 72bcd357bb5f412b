package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/wartalab/warta/app/feed"
)

var _ feed.Fetcher = (*Client)(nil)

// Client retrieves a feed over HTTP and parses it into raw entries.
type Client struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	userAgent  string
	timeout    time.Duration
}

func NewClient(httpClient *http.Client, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: httpClient,
		parser:     gofeed.NewParser(),
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

func (c *Client) Fetch(ctx context.Context, url string) ([]feed.RawEntry, error) {
	data, err := c.download(ctx, url)
	if err != nil {
		return nil, err
	}

	parsed, err := c.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]feed.RawEntry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, toRawEntry(item))
	}

	return entries, nil
}

func (c *Client) download(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

// toRawEntry maps a gofeed item onto the collaborator contract. gofeed
// folds RSS <description> and Atom <summary> into a single field, which
// lands in the entry's Summary slot.
func toRawEntry(item *gofeed.Item) feed.RawEntry {
	entry := feed.RawEntry{
		Title:      item.Title,
		Link:       item.Link,
		Published:  item.Published,
		ParsedTime: item.PublishedParsed,
		Summary:    item.Description,
		Content:    item.Content,
	}

	if len(item.Authors) > 0 && item.Authors[0] != nil {
		entry.Author = item.Authors[0].Name
	}

	return entry
}
