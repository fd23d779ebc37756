package usecase

import (
	"context"
	"errors"
	"testing"

	"adboard/internal/core/domain"
	"adboard/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestCreateSiteGeneratesToken ensures a fresh registration stores a
// URL-safe token with at least 128 bits of entropy.
func TestCreateSiteGeneratesToken(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	sites.EXPECT().
		FindSiteByDomain(mock.Anything, "example.com").
		Return(nil, nil)
	sites.EXPECT().
		CreateSite(mock.Anything, mock.AnythingOfType("*domain.Site")).
		Run(func(ctx context.Context, site *domain.Site) {
			site.ID = 7
		}).
		Return(nil)

	svc := NewSiteUseCase(sites, fetcher)

	site, err := svc.CreateSite(context.Background(), 1, "My Blog", "example.com")
	if err != nil {
		t.Fatalf("CreateSite error: %v", err)
	}
	if site.ID != 7 {
		t.Fatalf("expected site id 7, got %d", site.ID)
	}
	// base64 raw-url encoding of 32 bytes is 43 characters
	if len(site.VerificationToken) != 43 {
		t.Fatalf("unexpected token length %d: %q", len(site.VerificationToken), site.VerificationToken)
	}
	if site.Verified {
		t.Fatal("new site must start unverified")
	}
}

// TestCreateSiteIdempotentForSameOwner ensures re-registering the same
// (owner, domain) returns the existing site id without inserting.
func TestCreateSiteIdempotentForSameOwner(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	existing := &domain.Site{ID: 3, OwnerID: 1, Domain: "example.com", VerificationToken: "tok"}
	sites.EXPECT().
		FindSiteByDomain(mock.Anything, "example.com").
		Return(existing, nil).
		Twice()

	svc := NewSiteUseCase(sites, fetcher)

	first, err := svc.CreateSite(context.Background(), 1, "My Blog", "example.com")
	if err != nil {
		t.Fatalf("first CreateSite error: %v", err)
	}
	second, err := svc.CreateSite(context.Background(), 1, "My Blog", "example.com")
	if err != nil {
		t.Fatalf("second CreateSite error: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same site id, got %d and %d", first.ID, second.ID)
	}
}

// TestCreateSiteDuplicateDomainOtherOwner ensures a domain held by
// another user fails with ErrDuplicateDomain.
func TestCreateSiteDuplicateDomainOtherOwner(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	existing := &domain.Site{ID: 3, OwnerID: 2, Domain: "example.com"}
	sites.EXPECT().
		FindSiteByDomain(mock.Anything, "example.com").
		Return(existing, nil)

	svc := NewSiteUseCase(sites, fetcher)

	_, err := svc.CreateSite(context.Background(), 1, "My Blog", "example.com")
	if !errors.Is(err, domain.ErrDuplicateDomain) {
		t.Fatalf("expected ErrDuplicateDomain, got %v", err)
	}
}

// TestVerifySiteSuccess ensures a 200 body containing the token persists
// verified=true.
func TestVerifySiteSuccess(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	site := &domain.Site{ID: 5, OwnerID: 1, Domain: "example.com", VerificationToken: "tok-abc"}
	fetcher.EXPECT().
		FetchAdsTxt(mock.Anything, "example.com").
		Return("google.com, pub-1, DIRECT\nadboard-verification=tok-abc\n", nil)
	sites.EXPECT().
		MarkVerified(mock.Anything, int64(5)).
		Return(nil)

	svc := NewSiteUseCase(sites, fetcher)

	if !svc.VerifySite(context.Background(), site) {
		t.Fatal("expected verification to succeed")
	}
	if !site.Verified {
		t.Fatal("expected verified flag to be set")
	}
}

// TestVerifySiteTokenAbsent ensures a 200 body without the token reports
// false and never touches the verified flag.
func TestVerifySiteTokenAbsent(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	site := &domain.Site{ID: 5, OwnerID: 1, Domain: "example.com", VerificationToken: "tok-abc"}
	fetcher.EXPECT().
		FetchAdsTxt(mock.Anything, "example.com").
		Return("nothing to see here", nil)

	svc := NewSiteUseCase(sites, fetcher)

	if svc.VerifySite(context.Background(), site) {
		t.Fatal("expected verification to fail")
	}
	if site.Verified {
		t.Fatal("verified flag must stay false")
	}
}

// TestVerifySiteFetchError ensures network failures collapse to false.
func TestVerifySiteFetchError(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	site := &domain.Site{ID: 5, OwnerID: 1, Domain: "down.example.com", VerificationToken: "tok"}
	fetcher.EXPECT().
		FetchAdsTxt(mock.Anything, "down.example.com").
		Return("", errors.New("dial tcp: connection refused"))

	svc := NewSiteUseCase(sites, fetcher)

	if svc.VerifySite(context.Background(), site) {
		t.Fatal("expected verification to fail")
	}
}

// TestVerifySiteAlreadyVerified ensures a verified site is confirmed
// without re-persisting the flag.
func TestVerifySiteAlreadyVerified(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	site := &domain.Site{ID: 5, OwnerID: 1, Domain: "example.com", VerificationToken: "tok", Verified: true}
	fetcher.EXPECT().
		FetchAdsTxt(mock.Anything, "example.com").
		Return("tok", nil)

	svc := NewSiteUseCase(sites, fetcher)

	if !svc.VerifySite(context.Background(), site) {
		t.Fatal("expected verification to succeed")
	}
}

// TestVerifyUserSitesIsolatesFailures runs a batch of three sites where
// one fetch blows up; the result must hold all three domains with exactly
// one false.
func TestVerifyUserSitesIsolatesFailures(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	owned := []domain.Site{
		{ID: 1, OwnerID: 9, Domain: "a.example.com", VerificationToken: "tok-a"},
		{ID: 2, OwnerID: 9, Domain: "b.example.com", VerificationToken: "tok-b"},
		{ID: 3, OwnerID: 9, Domain: "c.example.com", VerificationToken: "tok-c"},
	}
	sites.EXPECT().
		FindSitesByOwner(mock.Anything, int64(9)).
		Return(owned, nil)

	fetcher.EXPECT().FetchAdsTxt(mock.Anything, "a.example.com").Return("tok-a", nil)
	fetcher.EXPECT().FetchAdsTxt(mock.Anything, "b.example.com").Return("", errors.New("dns failure"))
	fetcher.EXPECT().FetchAdsTxt(mock.Anything, "c.example.com").Return("tok-c", nil)

	sites.EXPECT().MarkVerified(mock.Anything, int64(1)).Return(nil)
	sites.EXPECT().MarkVerified(mock.Anything, int64(3)).Return(nil)

	svc := NewSiteUseCase(sites, fetcher)

	result, err := svc.VerifyUserSites(context.Background(), 9)
	if err != nil {
		t.Fatalf("VerifyUserSites error: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(result))
	}
	if !result["a.example.com"] || result["b.example.com"] || !result["c.example.com"] {
		t.Fatalf("unexpected results: %v", result)
	}
}

// TestVerifySiteByIDForeignSite ensures another user's site is reported
// as not found.
func TestVerifySiteByIDForeignSite(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	fetcher := mocks.NewMockAdsTxtFetcher(t)

	sites.EXPECT().
		FindSiteByID(mock.Anything, int64(5)).
		Return(&domain.Site{ID: 5, OwnerID: 2}, nil)

	svc := NewSiteUseCase(sites, fetcher)

	_, err := svc.VerifySiteByID(context.Background(), 1, 5)
	if !errors.Is(err, domain.ErrSiteNotFound) {
		t.Fatalf("expected ErrSiteNotFound, got %v", err)
	}
}
