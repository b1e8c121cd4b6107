package ultimateguitar

import (
	"compress/gzip"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/seancorc/AugmentedChords/internal/logger"
)

const searchBaseURL = "https://www.ultimate-guitar.com/search.php?search_type=title&value="

// Client represents the HTTP client for Ultimate Guitar requests
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new Ultimate Guitar HTTP client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: false,
					MinVersion:         tls.VersionTLS12,
					MaxVersion:         tls.VersionTLS13,
				},
				DisableCompression: false,
			},
		},
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36",
	}
}

func searchURL(songName string) string {
	return searchBaseURL + url.QueryEscape(songName)
}

// absoluteTabURL turns the tab_url of a search result into an absolute URL:
// results carry protocol-relative or site-relative links.
func absoluteTabURL(tabURL string) string {
	switch {
	case strings.HasPrefix(tabURL, "http"):
		return tabURL
	case strings.HasPrefix(tabURL, "//"):
		return "https:" + tabURL
	default:
		return "https://www.ultimate-guitar.com" + tabURL
	}
}

// FetchPage fetches the HTML content from the given URL
func (c *Client) FetchPage(fetchURL string) (string, error) {
	req, err := http.NewRequest("GET", fetchURL, nil)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to create HTTP request\nURL: %s\nError: %v", fetchURL, err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	req.Header.Set("Referer", "https://www.ultimate-guitar.com/")
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to fetch page\nURL: %s\nError: %v", fetchURL, err))
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error(fmt.Sprintf("HTTP error fetching page\nURL: %s\nStatus: %d", fetchURL, resp.StatusCode))
		return "", fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	var reader io.Reader = resp.Body

	// Handle gzip decompression
	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			logger.Error(fmt.Sprintf("Failed to create gzip reader\nURL: %s\nError: %v", fetchURL, err))
			return "", fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to read response body\nURL: %s\nError: %v", fetchURL, err))
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
