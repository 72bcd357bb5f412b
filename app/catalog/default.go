package catalog

// The built-in catalog of Indonesian news publishers.
var defaultSources = []Source{
	{Name: "ANTARA - Top News", URL: "https://www.antaranews.com/rss/top-news"},
	{Name: "ANTARA - Ekonomi", URL: "https://www.antaranews.com/rss/ekonomi"},
	{Name: "Detik - Berita", URL: "https://news.detik.com/berita/rss"},
	{Name: "Detik - Finance", URL: "https://finance.detik.com/rss"},
	{Name: "Kompas", URL: "https://rss.kompas.com/api/feed/social?apikey=bc58c81819dff4b8d5c53540a2fc7ffd83e6314a"},
	{Name: "Kontan - Keuangan", URL: "https://rss.kontan.co.id/news/keuangan"},
	{Name: "Kontan - Nasional", URL: "https://rss.kontan.co.id/news/nasional"},
	{Name: "Suara - Bisnis", URL: "https://www.suara.com/rss/bisnis"},
	{Name: "Suara - News", URL: "https://www.suara.com/rss/news"},
	{Name: "Liputan 6", URL: "https://feed.liputan6.com/rss/news"},
	{Name: "Tempo - Nasional", URL: "http://rss.tempo.co/nasional"},
	{Name: "Tempo - Bisnis", URL: "http://rss.tempo.co/bisnis"},
	{Name: "CNN Indonesia - Ekonomi", URL: "https://www.cnnindonesia.com/ekonomi/rss"},
	{Name: "CNN Indonesia - Nasional", URL: "https://www.cnnindonesia.com/nasional/rss"},
	{Name: "CNBC Indonesia - News", URL: "https://www.cnbcindonesia.com/news/rss"},
	{Name: "CNBC Indonesia - Market", URL: "https://www.cnbcindonesia.com/market/rss/"},
	{Name: "Republika Online", URL: "https://www.republika.co.id/rss"},
	{Name: "Media Indonesia", URL: "https://mediaindonesia.com/feed"},
	{Name: "JawaPos - Nasional", URL: "https://www.jawapos.com/nasional/rss"},
	{Name: "JawaPos - Ekonomi", URL: "https://www.jawapos.com/ekonomi/rss"},
	{Name: "Kumparan", URL: "https://lapi.kumparan.com/v2.0/rss/"},
	{Name: "Tirto", URL: "https://tirto.id/sitemap/r/google-discover"},
	{Name: "VICE Indonesia", URL: "https://www.vice.com/id_id/rss"},
	{Name: "Coconuts Jakarta", URL: "http://coconuts.co/jakarta/feed/"},
}

// Default returns the built-in publisher catalog.
func Default() *Catalog {
	c, err := New(defaultSources)
	if err != nil {
		// The built-in set is validated by its own tests.
		panic(err)
	}
	return c
}
