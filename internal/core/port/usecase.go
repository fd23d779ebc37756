package port

import (
	"context"

	"adboard/internal/core/domain"
)

// AuthUseCase handles account registration and login. These are the
// primary ports the transport layer calls before any site or event
// operation; all other authenticated operations receive the resolved
// user id as an explicit argument.
type AuthUseCase interface {
	// Register creates an account and returns it with a fresh session
	// token. Returns domain.ErrEmailTaken when the email is in use.
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	// Login verifies credentials and returns the account with a fresh
	// session token. Returns domain.ErrInvalidCredentials on unknown
	// email or wrong password, indistinguishably.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	User  *domain.User
	Token string
}

// SiteUseCase handles site registration and ownership verification.
type SiteUseCase interface {
	// CreateSite registers a domain for the owner and generates its
	// verification token. Re-registering a domain the same owner already
	// holds returns the existing site; a domain held by another owner
	// fails with domain.ErrDuplicateDomain.
	CreateSite(ctx context.Context, ownerID int64, name, domainName string) (*domain.Site, error)
	// VerifySite fetches the site's ads.txt and, when it contains the
	// verification token, persists verified=true. It returns the current
	// verification outcome; network failures and missing tokens report
	// false without error and never downgrade a verified site.
	VerifySite(ctx context.Context, site *domain.Site) bool
	// VerifySiteByID runs VerifySite for one site owned by ownerID.
	// Returns domain.ErrSiteNotFound when the site does not exist or
	// belongs to someone else.
	VerifySiteByID(ctx context.Context, ownerID, siteID int64) (*VerificationCheck, error)
	// VerifyUserSites runs VerifySite independently for every site the
	// owner holds and maps each domain to its outcome. One unreachable
	// domain never aborts the rest of the batch.
	VerifyUserSites(ctx context.Context, ownerID int64) (map[string]bool, error)
	// ListSites returns the owner's sites in creation order.
	ListSites(ctx context.Context, ownerID int64) ([]domain.Site, error)
}

// VerificationCheck is the verification state exposed to the UI.
type VerificationCheck struct {
	Domain            string `json:"domain"`
	VerificationToken string `json:"verification_token"`
	Verified          bool   `json:"verified"`
}

// EventUseCase records tracked ad events and aggregates per-site stats.
type EventUseCase interface {
	// RecordEvent appends one immutable event for a verified site. Fails
	// with domain.ErrInvalidEventType, domain.ErrSiteNotFound or
	// domain.ErrSiteNotVerified; on those failures nothing is persisted.
	// Recording is not idempotent: every call inserts a new row.
	RecordEvent(ctx context.Context, siteID int64, eventType domain.EventType) (*domain.AdEvent, error)
	// SiteStats returns the site's current event counts and estimated
	// revenue as a read-only snapshot.
	SiteStats(ctx context.Context, siteID int64) (*domain.SiteStats, error)
	// DashboardStats returns one report per site owned by the user.
	DashboardStats(ctx context.Context, ownerID int64) ([]SiteReport, error)
}

// SiteReport combines a site with its aggregated stats for display.
type SiteReport struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Domain            string  `json:"domain"`
	Verified          bool    `json:"verified"`
	VerificationToken string  `json:"verification_token"`
	Impressions       int64   `json:"impressions"`
	Clicks            int64   `json:"clicks"`
	Revenue           float64 `json:"revenue"`
}
