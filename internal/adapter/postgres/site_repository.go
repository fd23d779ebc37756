package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
)

// SiteRepository implements port.SiteRepository using pgxpool. Domain and
// verification-token uniqueness are enforced by unique indexes.
type SiteRepository struct {
	pool *pgxpool.Pool
}

// NewSiteRepository returns a new repository instance.
func NewSiteRepository(pool *pgxpool.Pool) *SiteRepository {
	return &SiteRepository{pool: pool}
}

// CreateSite inserts a site row and fills in its ID and CreatedAt. A
// unique violation maps to domain.ErrDuplicateDomain.
func (r *SiteRepository) CreateSite(ctx context.Context, site *domain.Site) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO websites (owner_id, name, domain, verification_token)
		 VALUES ($1, $2, $3, $4) RETURNING id, verified, created_at`,
		site.OwnerID, site.Name, site.Domain, site.VerificationToken).
		Scan(&site.ID, &site.Verified, &site.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateDomain
	}
	return err
}

// FindSiteByID returns the site with the given id, or nil when absent.
func (r *SiteRepository) FindSiteByID(ctx context.Context, id int64) (*domain.Site, error) {
	var site domain.Site
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, domain, verification_token, verified, created_at
		 FROM websites WHERE id = $1`, id).
		Scan(&site.ID, &site.OwnerID, &site.Name, &site.Domain, &site.VerificationToken, &site.Verified, &site.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// FindSiteByDomain returns the site registered for the given domain, or
// nil when absent.
func (r *SiteRepository) FindSiteByDomain(ctx context.Context, domainName string) (*domain.Site, error) {
	var site domain.Site
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, name, domain, verification_token, verified, created_at
		 FROM websites WHERE domain = $1`, domainName).
		Scan(&site.ID, &site.OwnerID, &site.Name, &site.Domain, &site.VerificationToken, &site.Verified, &site.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// FindSitesByOwner returns all sites owned by ownerID in creation order.
func (r *SiteRepository) FindSitesByOwner(ctx context.Context, ownerID int64) ([]domain.Site, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, name, domain, verification_token, verified, created_at
		 FROM websites WHERE owner_id = $1 ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Site, error) {
		var site domain.Site
		err = row.Scan(&site.ID, &site.OwnerID, &site.Name, &site.Domain,
			&site.VerificationToken, &site.Verified, &site.CreatedAt)
		return site, err
	})
}

// MarkVerified sets verified=true for the site. The statement only ever
// raises the flag; nothing in the schema or the code path clears it.
func (r *SiteRepository) MarkVerified(ctx context.Context, siteID int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE websites SET verified = TRUE WHERE id = $1`, siteID)
	return err
}
