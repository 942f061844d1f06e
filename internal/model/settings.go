package model

// AppSettings holds the persisted workshop configuration: the catalog and
// rates new quotes start from, plus the recently opened quote files.
type AppSettings struct {
	Catalog      Catalog    `json:"catalog"`
	Rates        RateConfig `json:"rates"`
	RecentQuotes []string   `json:"recent_quotes"`
}

// DefaultAppSettings returns settings populated with the default catalog
// and rate card.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Catalog:      DefaultCatalog(),
		Rates:        DefaultRateConfig(),
		RecentQuotes: []string{},
	}
}

// AddRecentQuote prepends a quote file path to the recent list, removing
// duplicates and capping the list at ten entries.
func (s *AppSettings) AddRecentQuote(path string) {
	recent := []string{path}
	for _, p := range s.RecentQuotes {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	s.RecentQuotes = recent
}
