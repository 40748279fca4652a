package compare

import (
	"strings"
	"testing"

	"github.com/seenimoa/stockinsight/internal/config"
	"github.com/seenimoa/stockinsight/pkg/models"
)

func testNewsConfig() config.NewsConfig {
	return config.NewsConfig{
		PortalName:       "Moneycontrol",
		PortalSearchURL:  "https://www.moneycontrol.com/stocks/cptmarket/compsearchnew.php?search_data=%s&topsearch_type=1&search_str=%s",
		FallbackSearch:   "https://www.google.com/search?q=%s",
		DefaultPublisher: "Market News",
		MaxItems:         3,
	}
}

func TestResolveDomesticOverridesLink(t *testing.T) {
	r := newsResolver{cfg: testNewsConfig()}

	items := r.resolve([]models.Headline{
		{Title: "Tata Motors results", Publisher: "ET", Link: "http://localhost/x"},
	}, models.MarketDomestic, "Tata Motors Limited")

	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	it := items[0]
	if !strings.HasPrefix(it.Link, "https://www.moneycontrol.com/stocks/cptmarket/compsearchnew.php?search_data=Tata+Motors+Limited") {
		t.Errorf("Link = %q, want research portal URL", it.Link)
	}
	if !it.IsResearchPortal {
		t.Error("IsResearchPortal not set for domestic item")
	}
	if it.Publisher != "ET" {
		t.Errorf("Publisher = %q, provider value must be kept", it.Publisher)
	}
}

func TestResolveForeignKeepsValidLink(t *testing.T) {
	r := newsResolver{cfg: testNewsConfig()}

	items := r.resolve([]models.Headline{
		{Title: "Apple launches", Publisher: "Reuters", Link: "https://example.com/apple"},
	}, models.MarketForeign, "Apple Inc.")

	if items[0].Link != "https://example.com/apple" {
		t.Errorf("Link = %q, want provider link", items[0].Link)
	}
	if items[0].IsResearchPortal {
		t.Error("IsResearchPortal set for foreign item")
	}
}

func TestResolveInvalidLinkFallsBackToSearch(t *testing.T) {
	r := newsResolver{cfg: testNewsConfig()}

	tests := []string{
		"",
		"not a url",
		"/relative/path",
		"http://localhost/story",
		"http://127.0.0.1:8080/story",
	}
	for _, link := range tests {
		items := r.resolve([]models.Headline{
			{Title: "Some headline", Link: link},
		}, models.MarketForeign, "Acme")

		want := "https://www.google.com/search?q=Some+headline"
		if items[0].Link != want {
			t.Errorf("link %q resolved to %q, want %q", link, items[0].Link, want)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	r := newsResolver{cfg: testNewsConfig()}

	items := r.resolve([]models.Headline{{}}, models.MarketForeign, "Acme Corp")
	if items[0].Title != "Acme Corp News" {
		t.Errorf("Title = %q", items[0].Title)
	}
	if items[0].Publisher != "Market News" {
		t.Errorf("Publisher = %q", items[0].Publisher)
	}

	items = r.resolve([]models.Headline{{}}, models.MarketDomestic, "Acme Corp")
	if items[0].Publisher != "Moneycontrol" {
		t.Errorf("domestic default Publisher = %q", items[0].Publisher)
	}
}

func TestResolveLimitsToMaxItems(t *testing.T) {
	r := newsResolver{cfg: testNewsConfig()}

	headlines := make([]models.Headline, 6)
	for i := range headlines {
		headlines[i] = models.Headline{Title: "h", Link: "https://example.com/a"}
	}
	items := r.resolve(headlines, models.MarketForeign, "Acme")
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestResolveZeroHeadlines(t *testing.T) {
	r := newsResolver{cfg: testNewsConfig()}

	// A domestic ticker always gets one synthesized portal item.
	items := r.resolve(nil, models.MarketDomestic, "Tata Motors Limited")
	if len(items) != 1 {
		t.Fatalf("domestic: got %d items, want 1", len(items))
	}
	if items[0].Title != "Tata Motors Limited News" {
		t.Errorf("Title = %q", items[0].Title)
	}
	if !items[0].IsResearchPortal || items[0].Publisher != "Moneycontrol" {
		t.Errorf("synthesized item = %+v", items[0])
	}

	// A foreign ticker legitimately shows none.
	if items := r.resolve(nil, models.MarketForeign, "Apple Inc."); len(items) != 0 {
		t.Errorf("foreign: got %d items, want 0", len(items))
	}
}

func TestIsValidLink(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"https://example.com/a", true},
		{"http://news.example.com", true},
		{"", false},
		{"example.com/a", false},
		{"http://localhost/x", false},
		{"http://LOCALHOST/x", false},
		{"http://127.0.0.1/x", false},
		{"http://[::1]/x", false},
	}
	for _, tt := range tests {
		if got := isValidLink(tt.link); got != tt.want {
			t.Errorf("isValidLink(%q) = %v, want %v", tt.link, got, tt.want)
		}
	}
}
