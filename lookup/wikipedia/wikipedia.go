// Package wikipedia implements textreact.Lookup against the MediaWiki API.
//
// A lookup first asks for the page whose title is exactly the query,
// following redirects. When that page does not exist it searches for the
// best-matching title and fetches that page instead. The article HTML is
// converted to Markdown and cut to the configured number of characters.
package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/rickchristie/textreact"
)

const (
	// DefaultBaseURL is the English Wikipedia API endpoint.
	DefaultBaseURL = "https://en.wikipedia.org/w/api.php"
	// DefaultUserAgent identifies the client, as required by the Wikimedia API policy.
	DefaultUserAgent = "textreact/1.0 (https://github.com/rickchristie/textreact)"
	// DefaultReturnChars is the snippet length in characters.
	DefaultReturnChars = 1000
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxBodySize caps how much of an API response is read.
	MaxBodySize = 10 * 1024 * 1024

	dialTimeout = 10 * time.Second
)

// Config configures a Lookup.
type Config struct {
	// BaseURL is the api.php endpoint of the wiki.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" json:"user_agent"`

	// ReturnChars is the maximum snippet length in characters (code points).
	ReturnChars int `yaml:"return_chars" json:"return_chars"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// DefaultConfig returns the configuration for English Wikipedia with
// 1000 character snippets.
func DefaultConfig() Config {
	return Config{
		BaseURL:     DefaultBaseURL,
		UserAgent:   DefaultUserAgent,
		ReturnChars: DefaultReturnChars,
		Timeout:     DefaultTimeout,
	}
}

// Lookup fetches article snippets from a MediaWiki API.
// It is safe for concurrent use.
type Lookup struct {
	cfg    Config
	client *http.Client
}

// New creates a Lookup. Empty fields of cfg take their defaults, except
// ReturnChars where zero means an empty snippet.
func New(cfg Config) *Lookup {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Lookup{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   dialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   dialTimeout,
				ResponseHeaderTimeout: dialTimeout,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConnsPerHost:   10,
				ForceAttemptHTTP2:     true,
			},
		},
	}
}

// WithHTTPClient replaces the HTTP client.
func (l *Lookup) WithHTTPClient(client *http.Client) *Lookup {
	l.client = client
	return l
}

// Config returns the effective configuration.
func (l *Lookup) Config() Config {
	return l.cfg
}

// Lookup implements textreact.Lookup.
//
// The exact title is tried first. If it does not exist, the top search result
// is fetched. If neither resolves, the error wraps textreact.ErrLookupNotFound.
func (l *Lookup) Lookup(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("empty query: %w", textreact.ErrLookupNotFound)
	}

	page, found, err := l.fetchPage(ctx, query)
	if err != nil {
		return "", err
	}
	if !found {
		title, ok, err := l.searchTitle(ctx, query)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("no page or search result for %q: %w", query, textreact.ErrLookupNotFound)
		}
		page, found, err = l.fetchPage(ctx, title)
		if err != nil {
			return "", err
		}
		if !found {
			return "", fmt.Errorf("search result %q for %q has no page: %w", title, query, textreact.ErrLookupNotFound)
		}
	}

	text, err := htmlToText(page.Extract)
	if err != nil {
		return "", fmt.Errorf("failed to convert %q: %w", page.Title, err)
	}
	return Truncate(text, l.cfg.ReturnChars), nil
}

// ----------------------------------------------------------------------------
// API calls
// ----------------------------------------------------------------------------

type page struct {
	Title   string `json:"title"`
	Missing bool   `json:"missing"`
	Invalid bool   `json:"invalid"`
	Extract string `json:"extract"`
}

type queryResponse struct {
	Query struct {
		Pages  []page `json:"pages"`
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

func (l *Lookup) fetchPage(ctx context.Context, title string) (page, bool, error) {
	var resp queryResponse
	err := l.get(ctx, url.Values{
		"prop":      {"extracts"},
		"redirects": {"1"},
		"titles":    {title},
	}, &resp)
	if err != nil {
		return page{}, false, err
	}
	for _, p := range resp.Query.Pages {
		if !p.Missing && !p.Invalid {
			return p, true, nil
		}
	}
	return page{}, false, nil
}

func (l *Lookup) searchTitle(ctx context.Context, query string) (string, bool, error) {
	var resp queryResponse
	err := l.get(ctx, url.Values{
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {"1"},
	}, &resp)
	if err != nil {
		return "", false, err
	}
	if len(resp.Query.Search) == 0 {
		return "", false, nil
	}
	return resp.Query.Search[0].Title, true, nil
}

func (l *Lookup) get(ctx context.Context, params url.Values, out *queryResponse) error {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", l.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("wikipedia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if out.Error != nil {
		return fmt.Errorf("wikipedia api error %s: %s", out.Error.Code, out.Error.Info)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Text
// ----------------------------------------------------------------------------

func htmlToText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}

// Truncate returns at most n characters (code points) of s. n <= 0 gives "".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// Compile-time check that Lookup implements textreact.Lookup.
var _ textreact.Lookup = (*Lookup)(nil)
