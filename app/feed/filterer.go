package feed

import (
	"fmt"
	"strings"
	"time"
)

// Window names a recency filter applied relative to the current day.
type Window string

const (
	WindowAll       Window = "all"
	WindowToday     Window = "today"
	WindowYesterday Window = "yesterday"
	WindowLastWeek  Window = "last_7_days"
	WindowLastMonth Window = "last_30_days"
	WindowCustom    Window = "custom"
)

// ParseWindow maps a wire value onto a known window. Empty input means
// no time constraint. The second return value reports whether the value
// was recognized.
func ParseWindow(s string) (Window, bool) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case WindowAll, WindowToday, WindowYesterday, WindowLastWeek, WindowLastMonth, WindowCustom:
		return w, true
	case "":
		return WindowAll, true
	default:
		return WindowAll, false
	}
}

type Options struct {
	Query      string
	Window     Window
	CustomDays int
	SearchBody bool // extend the keyword match over the article body
}

type FilterSummary struct {
	Total      int
	Matched    int
	Query      string
	Window     Window
	CustomDays int
	Message    string
}

type Filterer struct {
	now func() time.Time
}

func NewFilterer() *Filterer {
	return &Filterer{now: time.Now}
}

// Run returns the subset of records satisfying both the keyword and the
// time-window predicate, re-sorted by recency. Records without a
// timestamp are excluded by any window narrower than all.
func (f *Filterer) Run(records []Record, opts Options) ([]Record, FilterSummary) {
	summary := FilterSummary{
		Total:      len(records),
		Query:      strings.TrimSpace(opts.Query),
		Window:     opts.Window,
		CustomDays: opts.CustomDays,
	}
	if summary.Window == "" {
		summary.Window = WindowAll
	}

	if len(records) == 0 {
		summary.Message = "no data available"
		return []Record{}, summary
	}

	start, end, bounded := f.windowBounds(summary.Window, opts.CustomDays)
	query := strings.ToLower(summary.Query)

	matched := make([]Record, 0, len(records))
	for _, record := range records {
		if query != "" && !matchesQuery(record, query, opts.SearchBody) {
			continue
		}
		if bounded {
			if record.PublishedAt == nil {
				continue
			}
			if record.PublishedAt.Before(start) || record.PublishedAt.After(end) {
				continue
			}
		}
		matched = append(matched, record)
	}

	SortByRecency(matched)

	summary.Matched = len(matched)
	summary.Message = describe(summary)

	return matched, summary
}

func matchesQuery(record Record, query string, searchBody bool) bool {
	if strings.Contains(strings.ToLower(record.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(record.Summary), query) {
		return true
	}
	return searchBody && strings.Contains(strings.ToLower(record.Body), query)
}

// windowBounds returns the inclusive [start, end] range for a window.
// The yesterday window spans from the start of yesterday to the end of
// today, matching the dashboard's historical behavior. A custom window
// without a positive day count applies no constraint.
func (f *Filterer) windowBounds(window Window, customDays int) (time.Time, time.Time, bool) {
	now := f.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1).Add(-time.Nanosecond)

	switch window {
	case WindowToday:
		return startOfDay, endOfDay, true
	case WindowYesterday:
		return startOfDay.AddDate(0, 0, -1), endOfDay, true
	case WindowLastWeek:
		return startOfDay.AddDate(0, 0, -7), endOfDay, true
	case WindowLastMonth:
		return startOfDay.AddDate(0, 0, -30), endOfDay, true
	case WindowCustom:
		if customDays > 0 {
			return startOfDay.AddDate(0, 0, -customDays), endOfDay, true
		}
	}

	return time.Time{}, time.Time{}, false
}

func describe(summary FilterSummary) string {
	var active []string
	if summary.Query != "" {
		active = append(active, fmt.Sprintf("query %q", summary.Query))
	}
	switch summary.Window {
	case WindowAll:
	case WindowCustom:
		if summary.CustomDays > 0 {
			active = append(active, fmt.Sprintf("last %d days", summary.CustomDays))
		}
	default:
		active = append(active, fmt.Sprintf("window %s", summary.Window))
	}

	if len(active) == 0 {
		return fmt.Sprintf("%d articles", summary.Matched)
	}
	if summary.Matched == 0 {
		return "no articles match " + strings.Join(active, " and ")
	}
	return fmt.Sprintf("%d articles match %s", summary.Matched, strings.Join(active, " and "))
}
