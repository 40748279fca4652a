// Package datasource holds supplemental data feeds that sit beside the
// primary market-data provider. Today that is RSS-based financial news,
// used to enrich domestic tickers whose provider headlines run thin.
package datasource

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/stockinsight/internal/infra"
	"github.com/seenimoa/stockinsight/pkg/models"
	"github.com/seenimoa/stockinsight/pkg/utils"
)

// NewsSource is one financial news RSS feed.
type NewsSource struct {
	Name    string
	RSSURL  string
	BaseURL string
}

// DefaultNewsSources lists the Indian financial news feeds consulted for
// domestic tickers.
var DefaultNewsSources = []NewsSource{
	{
		Name:    "Moneycontrol",
		RSSURL:  "https://www.moneycontrol.com/rss/marketreports.xml",
		BaseURL: "https://www.moneycontrol.com",
	},
	{
		Name:    "Economic Times Markets",
		RSSURL:  "https://economictimes.indiatimes.com/markets/rssfeeds/1977021501.cms",
		BaseURL: "https://economictimes.indiatimes.com",
	},
	{
		Name:    "LiveMint Markets",
		RSSURL:  "https://www.livemint.com/rss/markets",
		BaseURL: "https://www.livemint.com",
	},
	{
		Name:    "Business Standard Markets",
		RSSURL:  "https://www.business-standard.com/rss/markets-106.rss",
		BaseURL: "https://www.business-standard.com",
	},
}

// RSSNews aggregates articles across the configured feeds.
type RSSNews struct {
	sources []NewsSource
	cache   *infra.Cache
	limiter *infra.RateLimiter
	parser  *gofeed.Parser
}

// NewRSSNews creates a news source over the default feeds.
func NewRSSNews() *RSSNews {
	return NewRSSNewsWithSources(DefaultNewsSources)
}

// NewRSSNewsWithSources creates a news source over custom feeds.
func NewRSSNewsWithSources(sources []NewsSource) *RSSNews {
	return &RSSNews{
		sources: sources,
		cache:   infra.NewCache(10 * time.Minute),
		limiter: infra.NewRateLimiter(2, time.Second), // conservative: 2 req/s
		parser:  gofeed.NewParser(),
	}
}

// MarketNews returns recent market news across all feeds, newest first.
func (n *RSSNews) MarketNews(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	cacheKey := fmt.Sprintf("news:market:%d", limit)
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	var all []models.NewsArticle
	for _, src := range n.sources {
		articles, err := n.fetchRSS(ctx, src)
		if err != nil {
			// Non-critical: skip failed feeds.
			continue
		}
		all = append(all, articles...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	n.cache.Set(cacheKey, all)
	return all, nil
}

// TickerNews filters market news down to articles mentioning the ticker
// or the company name the provider reported for it.
func (n *RSSNews) TickerNews(ctx context.Context, ticker, companyName string, limit int) ([]models.NewsArticle, error) {
	symbol := utils.NormalizeTicker(ticker)

	cacheKey := fmt.Sprintf("news:ticker:%s:%d", symbol, limit)
	if cached, ok := n.cache.Get(cacheKey); ok {
		return cached.([]models.NewsArticle), nil
	}

	all, err := n.MarketNews(ctx, 0)
	if err != nil {
		return nil, err
	}

	keywords := newsKeywords(symbol, companyName)
	var filtered []models.NewsArticle
	for _, a := range all {
		if matchesAny(a.Title+" "+a.Summary, keywords) {
			filtered = append(filtered, a)
		}
	}

	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	n.cache.Set(cacheKey, filtered)
	return filtered, nil
}

// fetchRSS parses one RSS feed into articles.
func (n *RSSNews) fetchRSS(ctx context.Context, src NewsSource) ([]models.NewsArticle, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := n.parser.ParseURLWithContext(src.RSSURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse RSS %s: %w", src.Name, err)
	}

	articles := make([]models.NewsArticle, 0, len(feed.Items))
	for _, item := range feed.Items {
		a := models.NewsArticle{
			Title:   item.Title,
			URL:     item.Link,
			Source:  src.Name,
			Summary: cleanHTML(item.Description),
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// cleanHTML strips HTML tags from feed summaries using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.TrimSpace(doc.Text())
}

// corporate suffixes stripped when matching a company name in headlines.
var corpSuffixes = []string{" limited", " ltd", " inc", " corporation", " corp", " plc"}

// newsKeywords returns the lowercased search terms for a ticker:
// its base symbol plus the company name with and without the corporate
// suffix ("Infosys Limited" also matches plain "infosys").
func newsKeywords(symbol, companyName string) []string {
	keywords := []string{strings.ToLower(utils.BaseSymbol(symbol))}

	name := strings.ToLower(strings.TrimSpace(companyName))
	if name != "" {
		keywords = append(keywords, name)
		for _, suf := range corpSuffixes {
			if trimmed := strings.TrimSuffix(name, suf); trimmed != name {
				keywords = append(keywords, trimmed)
				break
			}
		}
	}
	return keywords
}

// matchesAny checks whether text contains any keyword, case-insensitive.
func matchesAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
