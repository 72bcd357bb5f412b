package api

import (
	"sync"
	"time"

	"github.com/wartalab/warta/app/catalog"
	"github.com/wartalab/warta/app/feed"
	"github.com/wartalab/warta/app/scrape"
)

// Handler owns the session state: the current full record collection,
// replaced wholesale on every ingest and never mutated in place.
type Handler struct {
	catalog  *catalog.Catalog
	ingestor *feed.Ingestor
	filterer *feed.Filterer
	scraper  *scrape.Scraper

	mu         sync.RWMutex
	records    []feed.Record
	ingestedAt *time.Time
}

type ingestRequest struct {
	Sources []string `json:"sources"`
}

type scrapeRequest struct {
	URL string `json:"url"`
}

type articleJSON struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Published    string `json:"published,omitempty"` // RFC3339, absent when unparsable
	PublishedRaw string `json:"published_raw,omitempty"`
	Summary      string `json:"summary"`
	Author       string `json:"author,omitempty"`
}

type articleDetailJSON struct {
	articleJSON
	Body string `json:"body,omitempty"`
}

func toArticleJSON(r feed.Record) articleJSON {
	a := articleJSON{
		ID:           r.ID,
		Source:       r.SourceName,
		Title:        r.Title,
		URL:          r.URL,
		PublishedRaw: r.PublishedRaw,
		Summary:      r.Summary,
		Author:       r.Author,
	}
	if r.PublishedAt != nil {
		a.Published = r.PublishedAt.Format(time.RFC3339)
	}
	return a
}

func toArticleList(records []feed.Record) []articleJSON {
	articles := make([]articleJSON, 0, len(records))
	for _, r := range records {
		articles = append(articles, toArticleJSON(r))
	}
	return articles
}
