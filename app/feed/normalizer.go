package feed

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	placeholderTitle   = "No Title"
	placeholderSummary = "No summary available"
)

var markupPattern = regexp.MustCompile(`<[^<]+?>`)

// Fixed layouts matching the RSS pubDate convention
// "<weekday>, <day> <month> <year> <hour>:<minute>:<second> <zone>".
var publishedLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Run converts one raw entry into a canonical record. It never fails:
// missing fields degrade to placeholders and unparsable dates to a nil
// timestamp.
func (n *Normalizer) Run(entry RawEntry) Record {
	record := Record{
		Title:        entry.Title,
		URL:          entry.Link,
		PublishedRaw: entry.Published,
		Author:       strings.TrimSpace(entry.Author),
	}

	if record.Title == "" {
		record.Title = placeholderTitle
	}

	summary := entry.Summary
	if summary == "" {
		summary = entry.Description
	}
	if summary == "" {
		summary = placeholderSummary
	}
	record.Summary = stripMarkup(summary)
	record.Body = stripMarkup(entry.Content)

	if record.Body != "" {
		record.Combined = record.Title + ". " + record.Body
	} else {
		record.Combined = record.Title + ". " + record.Summary
	}

	record.PublishedAt = n.parsePublished(entry)
	record.ID = n.generateID(record)

	return record
}

// parsePublished derives a timestamp with ordered fallback strategies,
// first success wins: the feed library's structured time, the fixed RSS
// layouts, then a lenient catch-all pass. All failures degrade to nil.
func (n *Normalizer) parsePublished(entry RawEntry) *time.Time {
	if entry.ParsedTime != nil {
		t := *entry.ParsedTime
		return &t
	}

	raw := strings.TrimSpace(entry.Published)
	if raw == "" {
		return nil
	}

	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	if t, err := dateparse.ParseAny(raw); err == nil {
		return &t
	}

	return nil
}

func (n *Normalizer) generateID(record Record) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%s", record.Title, record.URL)))
	return hex.EncodeToString(hash[:])
}

func stripMarkup(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(markupPattern.ReplaceAllString(s, ""))
}
