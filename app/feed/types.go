package feed

import (
	"context"
	"sort"
	"time"
)

// Pipeline types

// RawEntry is one loosely structured unit returned by the fetch
// collaborator. Any field may be empty.
type RawEntry struct {
	Title       string
	Link        string
	Published   string     // raw publication string, preserved verbatim
	ParsedTime  *time.Time // feed-library structured time, when available
	Summary     string
	Description string
	Content     string
	Author      string
}

// Record is the canonical article row used throughout the pipeline.
// Title, URL and Summary are never absent, only empty or placeholder.
type Record struct {
	ID           string
	SourceName   string
	Title        string
	URL          string
	PublishedRaw string
	PublishedAt  *time.Time
	Summary      string
	Body         string
	Author       string
	Combined     string // title plus body-or-summary, the expanded search corpus
}

// PublishedDate returns the calendar date derived from PublishedAt.
// It is nil exactly when PublishedAt is nil.
func (r Record) PublishedDate() *time.Time {
	if r.PublishedAt == nil {
		return nil
	}
	d := time.Date(r.PublishedAt.Year(), r.PublishedAt.Month(), r.PublishedAt.Day(),
		0, 0, 0, 0, r.PublishedAt.Location())
	return &d
}

// Fetcher retrieves and parses one feed address into raw entries.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]RawEntry, error)
}

// Catalog resolves a source name to its feed address.
type Catalog interface {
	Resolve(name string) (string, bool)
}

// SortByRecency orders records by PublishedAt descending. Records
// without a timestamp sort after all dated ones, keeping their
// relative order.
func SortByRecency(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].PublishedAt, records[j].PublishedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
