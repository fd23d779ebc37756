// Package adstxt fetches the well-known ads.txt resource used for site
// ownership verification.
package adstxt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Bodies larger than this are cut off; a real ads.txt is a few KB.
const maxBodySize = 1 << 20

// Fetcher retrieves https://{domain}/ads.txt with a bounded timeout. It
// implements port.AdsTxtFetcher.
type Fetcher struct {
	client *http.Client
	scheme string
}

// NewFetcher returns a Fetcher whose every request is bounded by timeout,
// covering DNS resolution, TLS handshake and body read.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		scheme: "https",
	}
}

// FetchAdsTxt returns the response body for the domain's ads.txt. A
// transport failure or a status other than 200 is returned as an error;
// callers treat any error as "not verified this attempt".
func (f *Fetcher) FetchAdsTxt(ctx context.Context, domainName string) (string, error) {
	url := fmt.Sprintf("%s://%s/ads.txt", f.scheme, domainName)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
