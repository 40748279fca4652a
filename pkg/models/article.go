package models

import "time"

// NewsArticle is one story pulled from a financial news RSS feed. It is
// richer than a provider Headline: feeds carry a summary and a publish
// timestamp.
type NewsArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// Headline converts an article to the provider headline shape used by
// the news resolver.
func (a NewsArticle) Headline() Headline {
	return Headline{
		Title:     a.Title,
		Publisher: a.Source,
		Link:      a.URL,
	}
}
