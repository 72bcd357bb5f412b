package cfg

// Cfg is the resolved application configuration.
type Cfg struct {
	Port          string
	SourcesFile   string
	FetchTimeout  int // seconds
	ScrapeTimeout int // seconds
	UserAgent     string
	Timezone      string
	Debug         bool
	Version       string
}
