package usecase

import (
	"context"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// EventUseCase implements event recording and per-site stats aggregation.
type EventUseCase struct {
	sites  port.SiteRepository
	events port.EventRepository
}

// NewEventUseCase creates a new event usecase.
func NewEventUseCase(sites port.SiteRepository, events port.EventRepository) *EventUseCase {
	return &EventUseCase{sites: sites, events: events}
}

// RecordEvent appends one immutable event for a verified site. The event
// type is checked first, so an invalid type fails with
// domain.ErrInvalidEventType regardless of site state; an unknown site
// fails with domain.ErrSiteNotFound and an unverified one with
// domain.ErrSiteNotVerified. Nothing is persisted on failure. Calls are
// not deduplicated: each one inserts its own row.
func (u *EventUseCase) RecordEvent(ctx context.Context, siteID int64, eventType domain.EventType) (*domain.AdEvent, error) {
	if !eventType.Valid() {
		return nil, domain.ErrInvalidEventType
	}
	site, err := u.sites.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrSiteNotFound
	}
	if !site.Verified {
		return nil, domain.ErrSiteNotVerified
	}
	return u.events.CreateEvent(ctx, siteID, eventType, time.Now().UTC())
}

// SiteStats returns the site's current event counts and estimated
// revenue. The counts come from a single aggregate query, so the snapshot
// is internally consistent; nothing is mutated.
func (u *EventUseCase) SiteStats(ctx context.Context, siteID int64) (*domain.SiteStats, error) {
	site, err := u.sites.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrSiteNotFound
	}
	impressions, clicks, err := u.events.CountEventsBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return &domain.SiteStats{
		Impressions: impressions,
		Clicks:      clicks,
		Revenue:     domain.EstimateRevenue(impressions, clicks),
	}, nil
}

// DashboardStats returns one report per site owned by the user, in site
// creation order.
func (u *EventUseCase) DashboardStats(ctx context.Context, ownerID int64) ([]port.SiteReport, error) {
	sites, err := u.sites.FindSitesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	reports := make([]port.SiteReport, 0, len(sites))
	for _, site := range sites {
		impressions, clicks, err := u.events.CountEventsBySite(ctx, site.ID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, port.SiteReport{
			ID:                site.ID,
			Name:              site.Name,
			Domain:            site.Domain,
			Verified:          site.Verified,
			VerificationToken: site.VerificationToken,
			Impressions:       impressions,
			Clicks:            clicks,
			Revenue:           domain.EstimateRevenue(impressions, clicks),
		})
	}
	return reports, nil
}
