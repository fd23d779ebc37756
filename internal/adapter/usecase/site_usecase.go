package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// verificationTokenBytes is the raw entropy of a verification token.
// 32 bytes gives 256 bits, well above the 128-bit floor.
const verificationTokenBytes = 32

// SiteUseCase implements site registration and ownership verification.
type SiteUseCase struct {
	sites   port.SiteRepository
	fetcher port.AdsTxtFetcher
}

// NewSiteUseCase creates a new site usecase.
func NewSiteUseCase(sites port.SiteRepository, fetcher port.AdsTxtFetcher) *SiteUseCase {
	return &SiteUseCase{sites: sites, fetcher: fetcher}
}

// CreateSite registers domainName for ownerID with a fresh verification
// token. Re-registering a domain the same owner already holds returns the
// existing site unchanged; a domain held by another owner fails with
// domain.ErrDuplicateDomain.
func (u *SiteUseCase) CreateSite(ctx context.Context, ownerID int64, name, domainName string) (*domain.Site, error) {
	existing, err := u.sites.FindSiteByDomain(ctx, domainName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.OwnerID == ownerID {
			return existing, nil
		}
		return nil, domain.ErrDuplicateDomain
	}

	token, err := newVerificationToken()
	if err != nil {
		return nil, err
	}
	site := &domain.Site{
		OwnerID:           ownerID,
		Name:              name,
		Domain:            domainName,
		VerificationToken: token,
	}
	if err = u.sites.CreateSite(ctx, site); err != nil {
		// Lost a race on the unique domain index; apply the same
		// idempotence rule against the row that won.
		if errors.Is(err, domain.ErrDuplicateDomain) {
			winner, findErr := u.sites.FindSiteByDomain(ctx, domainName)
			if findErr == nil && winner != nil && winner.OwnerID == ownerID {
				return winner, nil
			}
		}
		return nil, err
	}
	return site, nil
}

// VerifySite fetches the site's ads.txt and reports whether it proves
// ownership. On success the verified flag is persisted; on any network
// failure, non-200 status or missing token it reports false and leaves
// the flag untouched, so an already-verified site is never downgraded.
func (u *SiteUseCase) VerifySite(ctx context.Context, site *domain.Site) bool {
	body, err := u.fetcher.FetchAdsTxt(ctx, site.Domain)
	if err != nil {
		return false
	}
	if !strings.Contains(body, site.VerificationToken) {
		return false
	}
	if !site.Verified {
		if err = u.sites.MarkVerified(ctx, site.ID); err != nil {
			return false
		}
		site.Verified = true
	}
	return true
}

// VerifySiteByID runs VerifySite for one site owned by ownerID. A site
// that does not exist or belongs to another user fails with
// domain.ErrSiteNotFound.
func (u *SiteUseCase) VerifySiteByID(ctx context.Context, ownerID, siteID int64) (*port.VerificationCheck, error) {
	site, err := u.sites.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site == nil || site.OwnerID != ownerID {
		return nil, domain.ErrSiteNotFound
	}
	verified := u.VerifySite(ctx, site)
	return &port.VerificationCheck{
		Domain:            site.Domain,
		VerificationToken: site.VerificationToken,
		Verified:          verified || site.Verified,
	}, nil
}

// VerifyUserSites attempts verification of every site the owner holds and
// maps each domain to its outcome. Attempts are independent: a fetch
// failure on one domain records false for that domain and never aborts
// the rest.
func (u *SiteUseCase) VerifyUserSites(ctx context.Context, ownerID int64) (map[string]bool, error) {
	sites, err := u.sites.FindSitesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	result := make(map[string]bool, len(sites))
	for i := range sites {
		result[sites[i].Domain] = u.VerifySite(ctx, &sites[i])
	}
	return result, nil
}

// ListSites returns the owner's sites in creation order.
func (u *SiteUseCase) ListSites(ctx context.Context, ownerID int64) ([]domain.Site, error) {
	return u.sites.FindSitesByOwner(ctx, ownerID)
}

// newVerificationToken returns a URL-safe random token.
func newVerificationToken() (string, error) {
	buf := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
