package feed

import (
	"context"
	"fmt"
	"log/slog"
)

// ProgressFunc reports per-source ingestion progress to the caller. It
// is an observational side channel, not part of the return contract.
type ProgressFunc func(done, total int, source string)

// SourceError records a recoverable per-source fetch failure.
type SourceError struct {
	Source string
	Err    error
}

func (e SourceError) Error() string {
	return fmt.Sprintf("source %q: %v", e.Source, e.Err)
}

type IngestSummary struct {
	Requested int
	Fetched   int // sources that returned entries successfully
	Total     int // records assembled
	Errors    []SourceError
	Message   string
}

type Ingestor struct {
	catalog    Catalog
	fetcher    Fetcher
	normalizer *Normalizer
	progress   ProgressFunc
}

func NewIngestor(catalog Catalog, fetcher Fetcher, progress ProgressFunc) *Ingestor {
	return &Ingestor{
		catalog:    catalog,
		fetcher:    fetcher,
		normalizer: NewNormalizer(),
		progress:   progress,
	}
}

// Run fetches every selected source in the order given, normalizes the
// entries, tags each record with its source name and assembles one
// collection sorted by recency. Unknown names are skipped silently; a
// failing source is recorded in the summary and never aborts the run.
func (g *Ingestor) Run(ctx context.Context, sources []string) ([]Record, IngestSummary) {
	summary := IngestSummary{Requested: len(sources)}

	if len(sources) == 0 {
		summary.Message = "select at least one source"
		return []Record{}, summary
	}

	records := make([]Record, 0)
	for i, name := range sources {
		url, ok := g.catalog.Resolve(name)
		if !ok {
			slog.Debug("Unknown source, skipping", "source", name)
			g.report(i+1, len(sources), name)
			continue
		}

		entries, err := g.fetcher.Fetch(ctx, url)
		if err != nil {
			slog.Warn("Source fetch failed", "source", name, "error", err)
			summary.Errors = append(summary.Errors, SourceError{Source: name, Err: err})
			g.report(i+1, len(sources), name)
			continue
		}

		for _, entry := range entries {
			record := g.normalizer.Run(entry)
			record.SourceName = name
			records = append(records, record)
		}
		summary.Fetched++
		g.report(i+1, len(sources), name)
	}

	SortByRecency(records)

	summary.Total = len(records)
	if len(records) == 0 {
		summary.Message = "no articles found"
	} else {
		summary.Message = fmt.Sprintf("%d articles from %d sources", summary.Total, summary.Fetched)
	}

	return records, summary
}

func (g *Ingestor) report(done, total int, source string) {
	if g.progress != nil {
		g.progress(done, total, source)
	}
}
