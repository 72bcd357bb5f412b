package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wartalab/warta/app/catalog"
	"github.com/wartalab/warta/app/feed"
	"github.com/wartalab/warta/app/scrape"
)

func NewHandler(cat *catalog.Catalog, ingestor *feed.Ingestor, filterer *feed.Filterer,
	scraper *scrape.Scraper) *Handler {
	return &Handler{
		catalog:  cat,
		ingestor: ingestor,
		filterer: filterer,
		scraper:  scraper,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	health := gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"sources":   h.catalog.Len(),
		"articles":  len(h.records),
	}
	if h.ingestedAt != nil {
		health["last_ingest_at"] = h.ingestedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetSources(c *gin.Context) {
	names := h.catalog.Names()
	c.JSON(http.StatusOK, gin.H{
		"sources": names,
		"total":   len(names),
	})
}

func (h *Handler) Ingest(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	records, summary := h.ingestor.Run(c.Request.Context(), req.Sources)

	if summary.Requested == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": summary.Message})
		return
	}

	now := time.Now()
	h.mu.Lock()
	h.records = records
	h.ingestedAt = &now
	h.mu.Unlock()

	diagnostics := make([]gin.H, 0, len(summary.Errors))
	for _, sourceErr := range summary.Errors {
		diagnostics = append(diagnostics, gin.H{
			"source": sourceErr.Source,
			"error":  sourceErr.Err.Error(),
		})
	}

	slog.Info("Ingest completed", "requested", summary.Requested,
		"fetched", summary.Fetched, "articles", summary.Total,
		"failed_sources", len(summary.Errors))

	c.JSON(http.StatusOK, gin.H{
		"message":   summary.Message,
		"requested": summary.Requested,
		"fetched":   summary.Fetched,
		"total":     summary.Total,
		"errors":    diagnostics,
	})
}

func (h *Handler) ListArticles(c *gin.Context) {
	h.mu.RLock()
	records := h.records
	h.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"articles": toArticleList(records),
		"total":    len(records),
	})
}

func (h *Handler) SearchArticles(c *gin.Context) {
	window, ok := feed.ParseWindow(c.Query("window"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown time window: " + c.Query("window")})
		return
	}

	customDays := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid days value: " + raw})
			return
		}
		customDays = parsed
	}

	opts := feed.Options{
		Query:      c.Query("q"),
		Window:     window,
		CustomDays: customDays,
		SearchBody: c.Query("body") == "true",
	}

	h.mu.RLock()
	records := h.records
	h.mu.RUnlock()

	matched, summary := h.filterer.Run(records, opts)

	c.JSON(http.StatusOK, gin.H{
		"articles": toArticleList(matched),
		"message":  summary.Message,
		"matched":  summary.Matched,
		"total":    summary.Total,
		"query":    summary.Query,
		"window":   summary.Window,
	})
}

func (h *Handler) GetArticle(c *gin.Context) {
	id := c.Param("id")

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, record := range h.records {
		if record.ID == id {
			detail := articleDetailJSON{
				articleJSON: toArticleJSON(record),
				Body:        record.Body,
			}
			c.JSON(http.StatusOK, detail)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
}

func (h *Handler) Scrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing article URL"})
		return
	}

	text, err := h.scraper.Run(c.Request.Context(), req.URL)
	if err != nil {
		slog.Warn("Scrape failed", "url", req.URL, "error", err)

		status := http.StatusBadGateway
		if errors.Is(err, scrape.ErrUnrecognizedStructure) || errors.Is(err, scrape.ErrContentTooShort) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":    req.URL,
		"text":   text,
		"length": len(text),
	})
}
