package port

import (
	"context"
	"time"

	"adboard/internal/core/domain"
)

// UserRepository persists user accounts. It is an outbound port in
// hexagonal architecture. Find methods return (nil, nil) when no row
// matches.
type UserRepository interface {
	// CreateUser stores a new user and returns it with ID and CreatedAt
	// set. Returns domain.ErrEmailTaken when the email is already in use.
	CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error)
	// FindUserByEmail returns the user with the given email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindUserByID returns the user with the given id.
	FindUserByID(ctx context.Context, id int64) (*domain.User, error)
}

// SiteRepository persists registered sites. Implementations must enforce
// the system-wide uniqueness of domains and verification tokens.
type SiteRepository interface {
	// CreateSite inserts site and fills in its ID and CreatedAt. Returns
	// domain.ErrDuplicateDomain when the domain is already registered.
	CreateSite(ctx context.Context, site *domain.Site) error
	// FindSiteByID returns the site with the given id.
	FindSiteByID(ctx context.Context, id int64) (*domain.Site, error)
	// FindSiteByDomain returns the site registered for the given domain.
	FindSiteByDomain(ctx context.Context, domainName string) (*domain.Site, error)
	// FindSitesByOwner returns all sites owned by the given user in
	// creation order.
	FindSitesByOwner(ctx context.Context, ownerID int64) ([]domain.Site, error)
	// MarkVerified sets the site's verified flag to true. It never clears
	// an already-set flag.
	MarkVerified(ctx context.Context, siteID int64) error
}

// EventRepository persists ad events. Events are append-only; there are
// no update or delete operations.
type EventRepository interface {
	// CreateEvent inserts one event row and returns it with its ID set.
	CreateEvent(ctx context.Context, siteID int64, eventType domain.EventType, at time.Time) (*domain.AdEvent, error)
	// CountEventsBySite returns the site's impression and click counts
	// from a single consistent snapshot.
	CountEventsBySite(ctx context.Context, siteID int64) (impressions, clicks int64, err error)
}

// AdsTxtFetcher retrieves the ads.txt resource for a domain. It is the
// only network-facing outbound port; implementations must bound each
// fetch with a timeout.
type AdsTxtFetcher interface {
	// FetchAdsTxt returns the body of https://{domain}/ads.txt. Any
	// transport failure or non-200 status is returned as an error.
	FetchAdsTxt(ctx context.Context, domainName string) (string, error)
}
