package feeds

// Default scan settings.
const (
	DefaultPreset = "bbc"
	DefaultCount  = 5
	MaxCount      = 20
)

// FeedPresets maps friendly names to RSS feed URLs.
var FeedPresets = map[string]string{
	"bbc":     "https://feeds.bbci.co.uk/news/rss.xml",
	"reuters": "https://www.reutersagency.com/feed/",
	"cna":     "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"hn":      "https://hnrss.org/newest",
}

// ResolveFeedURL resolves a feed identifier to a URL. A preset name
// maps to its URL; anything else is assumed to be a direct URL.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}
