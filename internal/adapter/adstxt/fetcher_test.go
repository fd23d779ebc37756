package adstxt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// testFetcher points the fetcher at an httptest server instead of the
// real https://{domain} scheme.
func testFetcher(srv *httptest.Server) (*Fetcher, string) {
	u, _ := url.Parse(srv.URL)
	return &Fetcher{client: srv.Client(), scheme: u.Scheme}, u.Host
}

func TestFetchAdsTxtOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ads.txt" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("adboard-verification=tok-123\n"))
	}))
	defer srv.Close()

	f, host := testFetcher(srv)
	body, err := f.FetchAdsTxt(context.Background(), host)
	if err != nil {
		t.Fatalf("FetchAdsTxt error: %v", err)
	}
	if !strings.Contains(body, "tok-123") {
		t.Fatalf("body missing token: %q", body)
	}
}

func TestFetchAdsTxtNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f, host := testFetcher(srv)
	if _, err := f.FetchAdsTxt(context.Background(), host); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchAdsTxtConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	f, host := testFetcher(srv)
	srv.Close()

	if _, err := f.FetchAdsTxt(context.Background(), host); err == nil {
		t.Fatal("expected connection error")
	}
}

func TestFetchAdsTxtTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	u, _ := url.Parse(srv.URL)
	f := &Fetcher{client: &http.Client{Timeout: 50 * time.Millisecond}, scheme: u.Scheme}
	if _, err := f.FetchAdsTxt(context.Background(), u.Host); err == nil {
		t.Fatal("expected timeout error")
	}
}
