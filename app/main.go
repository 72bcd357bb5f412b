package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wartalab/warta/app/api"
	"github.com/wartalab/warta/app/catalog"
	"github.com/wartalab/warta/app/cfg"
	"github.com/wartalab/warta/app/feed"
	"github.com/wartalab/warta/app/fetch"
	"github.com/wartalab/warta/app/scrape"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Warta server", "version", appCfg.Version)

	cat := catalog.Default()
	if appCfg.SourcesFile != "" {
		cat, err = catalog.Load(appCfg.SourcesFile)
		if err != nil {
			slog.Error("Failed to load feed catalog", "file", appCfg.SourcesFile, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Feed catalog loaded", "sources", cat.Len())

	httpClient := &http.Client{}
	fetcher := fetch.NewClient(httpClient, appCfg.UserAgent, time.Duration(appCfg.FetchTimeout)*time.Second)

	progress := func(done, total int, source string) {
		slog.Debug("Ingest progress", "done", done, "total", total, "source", source)
	}

	ingestor := feed.NewIngestor(cat, fetcher, progress)
	filterer := feed.NewFilterer()
	scraper := scrape.NewScraper(httpClient, time.Duration(appCfg.ScrapeTimeout)*time.Second)

	handler := api.NewHandler(cat, ingestor, filterer, scraper)
	server := api.NewServer(handler, appCfg.Version)

	httpServer := &http.Server{
		Addr:        ":" + appCfg.Port,
		Handler:     server,
		ReadTimeout: 30 * time.Second,
		// Ingestion fetches sources sequentially within one request, so
		// the write timeout has to cover a full catalog pass.
		WriteTimeout: 15 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Warta server shutdown complete")
}
