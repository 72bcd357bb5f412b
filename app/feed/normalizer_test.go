package feed

import (
	"testing"
	"time"
)

func TestNormalizer_MissingTitle(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{Link: "https://example.com/a"})

	if record.Title != "No Title" {
		t.Errorf("Expected placeholder title 'No Title', got: %s", record.Title)
	}
	if record.URL != "https://example.com/a" {
		t.Errorf("Expected URL to be preserved, got: %s", record.URL)
	}
}

func TestNormalizer_MissingLink(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{Title: "Headline"})

	if record.URL != "" {
		t.Errorf("Expected empty URL, got: %s", record.URL)
	}
}

func TestNormalizer_SummaryFallbackToDescription(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{
		Title:       "Headline",
		Summary:     "",
		Description: "<p>Fallback <b>description</b></p>",
	})

	if record.Summary != "Fallback description" {
		t.Errorf("Expected markup-stripped description fallback, got: %q", record.Summary)
	}
}

func TestNormalizer_SummaryPlaceholder(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{Title: "Headline"})

	if record.Summary != "No summary available" {
		t.Errorf("Expected placeholder summary, got: %q", record.Summary)
	}
}

func TestNormalizer_StripsMarkupFromSummary(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{
		Title:   "Headline",
		Summary: `<div class="lead"><a href="/x">Linked</a> text</div>`,
	})

	if record.Summary != "Linked text" {
		t.Errorf("Expected tags removed, got: %q", record.Summary)
	}
}

func TestNormalizer_BodyAndCombined(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{
		Title:   "Headline",
		Summary: "Short summary",
		Content: "<p>Full body text</p>",
	})

	if record.Body != "Full body text" {
		t.Errorf("Expected stripped body, got: %q", record.Body)
	}
	if record.Combined != "Headline. Full body text" {
		t.Errorf("Expected combined to prefer body, got: %q", record.Combined)
	}
}

func TestNormalizer_CombinedFallsBackToSummary(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{
		Title:   "Headline",
		Summary: "Short summary",
	})

	if record.Combined != "Headline. Short summary" {
		t.Errorf("Expected combined to use summary when body is empty, got: %q", record.Combined)
	}
}

func TestNormalizer_UsesParsedTimeFirst(t *testing.T) {
	normalizer := NewNormalizer()

	parsed := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)
	record := normalizer.Run(RawEntry{
		Title:      "Headline",
		Published:  "Mon, 03 Jul 2023 12:00:00 GMT", // deliberately different
		ParsedTime: &parsed,
	})

	if record.PublishedAt == nil {
		t.Fatal("Expected PublishedAt to be set")
	}
	if !record.PublishedAt.Equal(parsed) {
		t.Errorf("Expected structured time to win, got: %v", record.PublishedAt)
	}
}

func TestNormalizer_ParsesRSSDateString(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{
		Title:     "Headline",
		Published: "Mon, 03 Jul 2023 10:30:00 GMT",
	})

	if record.PublishedAt == nil {
		t.Fatal("Expected PublishedAt to be parsed from the raw string")
	}
	if record.PublishedAt.Year() != 2023 || record.PublishedAt.Month() != time.July {
		t.Errorf("Unexpected parsed time: %v", record.PublishedAt)
	}
	if record.PublishedRaw != "Mon, 03 Jul 2023 10:30:00 GMT" {
		t.Errorf("Expected raw string preserved, got: %q", record.PublishedRaw)
	}
}

func TestNormalizer_UnparsableDate(t *testing.T) {
	normalizer := NewNormalizer()

	record := normalizer.Run(RawEntry{
		Title:     "Headline",
		Published: "sometime around lunch",
	})

	if record.PublishedAt != nil {
		t.Errorf("Expected nil PublishedAt, got: %v", record.PublishedAt)
	}
	if record.PublishedDate() != nil {
		t.Errorf("Expected nil PublishedDate, got: %v", record.PublishedDate())
	}
	if record.PublishedRaw != "sometime around lunch" {
		t.Errorf("Expected original string unchanged, got: %q", record.PublishedRaw)
	}
}

func TestNormalizer_PublishedDateDerivation(t *testing.T) {
	normalizer := NewNormalizer()

	parsed := time.Date(2023, 7, 3, 23, 45, 12, 0, time.UTC)
	record := normalizer.Run(RawEntry{Title: "Headline", ParsedTime: &parsed})

	date := record.PublishedDate()
	if date == nil {
		t.Fatal("Expected a derived calendar date")
	}
	expected := time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC)
	if !date.Equal(expected) {
		t.Errorf("Expected %v, got: %v", expected, date)
	}
}

func TestNormalizer_GeneratesID(t *testing.T) {
	normalizer := NewNormalizer()

	first := normalizer.Run(RawEntry{Title: "Headline", Link: "https://example.com/a"})
	same := normalizer.Run(RawEntry{Title: "Headline", Link: "https://example.com/a"})
	other := normalizer.Run(RawEntry{Title: "Headline", Link: "https://example.com/b"})

	if first.ID == "" {
		t.Fatal("Expected ID to be generated")
	}
	if first.ID != same.ID {
		t.Error("Expected identical entries to share an ID")
	}
	if first.ID == other.ID {
		t.Error("Expected different links to produce different IDs")
	}
}
