package bang

import "strings"

// DefaultProvider is used when neither the user nor the config names a
// known search provider.
const DefaultProvider = "duckduckgo"

var searchProviders = map[string]string{
	"duckduckgo": "https://duckduckgo.com/?q=",
	"google":     "https://www.google.com/search?q=",
	"bing":       "https://www.bing.com/search?q=",
	"brave":      "https://search.brave.com/search?q=",
	"startpage":  "https://www.startpage.com/do/search?q=",
	"ecosia":     "https://www.ecosia.org/search?q=",
	"kagi":       "https://kagi.com/search?q=",
	"qwant":      "https://www.qwant.com/?q=",
	"yahoo":      "https://search.yahoo.com/search?p=",
	"perplexity": "https://www.perplexity.ai/search?q=",
}

// IsKnownProvider reports whether provider names a supported search engine.
func IsKnownProvider(provider string) bool {
	_, ok := searchProviders[strings.ToLower(strings.TrimSpace(provider))]
	return ok
}

// SearchProviderURL returns the search URL for term on provider.
// Unknown providers fall back to DefaultProvider.
func SearchProviderURL(provider, term string) string {
	prefix, ok := searchProviders[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		prefix = searchProviders[DefaultProvider]
	}
	return prefix + EncodeSearchTerm(term)
}
