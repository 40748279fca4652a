package compare

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/seenimoa/stockinsight/internal/config"
	"github.com/seenimoa/stockinsight/pkg/models"
)

// newsResolver turns raw provider headlines into display-ready items
// whose links are guaranteed to be valid absolute URLs.
type newsResolver struct {
	cfg config.NewsConfig
}

// resolve applies the link resolution rules:
//
//  1. Domestic tickers always link to the research portal's search page
//     for the company, discarding the provider's per-article link.
//  2. Foreign tickers keep the provider link.
//  3. A link that is not an absolute non-loopback URL is replaced by a
//     web search for the headline title.
//  4. Missing titles become "<company> News"; missing publishers get
//     the portal name (domestic) or the generic default.
//  5. At most MaxItems items; a domestic ticker with no headlines gets
//     exactly one synthesized portal item, a foreign one gets none.
func (r newsResolver) resolve(headlines []models.Headline, market models.Market, company string) []models.NewsItem {
	domestic := market == models.MarketDomestic

	if len(headlines) == 0 {
		if !domestic {
			return nil
		}
		return []models.NewsItem{{
			Title:            company + " News",
			Link:             r.portalURL(company),
			Publisher:        r.cfg.PortalName,
			IsResearchPortal: true,
		}}
	}

	max := r.cfg.MaxItems
	if max <= 0 {
		max = 3
	}
	if len(headlines) > max {
		headlines = headlines[:max]
	}

	items := make([]models.NewsItem, 0, len(headlines))
	for _, h := range headlines {
		title := strings.TrimSpace(h.Title)
		if title == "" {
			title = company + " News"
		}

		publisher := strings.TrimSpace(h.Publisher)
		if publisher == "" {
			if domestic {
				publisher = r.cfg.PortalName
			} else {
				publisher = r.cfg.DefaultPublisher
			}
		}

		link := h.Link
		if domestic {
			link = r.portalURL(company)
		}
		if !isValidLink(link) {
			link = r.fallbackURL(title)
		}

		items = append(items, models.NewsItem{
			Title:            title,
			Link:             link,
			Publisher:        publisher,
			IsResearchPortal: domestic,
		})
	}
	return items
}

// portalURL builds the research-portal search URL for a company name.
func (r newsResolver) portalURL(company string) string {
	q := url.QueryEscape(company)
	return fmt.Sprintf(r.cfg.PortalSearchURL, q, q)
}

// fallbackURL builds the guaranteed-valid web-search URL for a title.
func (r newsResolver) fallbackURL(title string) string {
	return fmt.Sprintf(r.cfg.FallbackSearch, url.QueryEscape(title))
}

// isValidLink reports whether link is an absolute URL with a scheme and
// a non-loopback host.
func isValidLink(link string) bool {
	if strings.TrimSpace(link) == "" {
		return false
	}
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return false
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return false
	}
	return true
}
