package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler, version string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for the browser dashboard
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler, version)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler, version string) {
	r.GET("/health", handler.GetHealth)
	r.GET("/sources", handler.GetSources)

	r.POST("/ingest", handler.Ingest)

	r.GET("/articles", handler.ListArticles)
	r.GET("/articles/search", handler.SearchArticles)
	r.GET("/articles/:id", handler.GetArticle)

	r.POST("/scrape", handler.Scrape)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Warta",
			"version":     version,
			"description": "Indonesian news dashboard backend: feed ingestion, keyword and recency filtering",
			"endpoints": map[string]string{
				"sources": "/sources",
				"ingest":  "/ingest (POST)",
				"all":     "/articles",
				"search":  "/articles/search?q=<keyword>&window=<all|today|yesterday|last_7_days|last_30_days|custom>&days=<n>",
				"detail":  "/articles/<id>",
				"scrape":  "/scrape (POST)",
				"health":  "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
