package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"adboard/internal/core/domain"
	"adboard/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

// TestRecordEventInvalidType ensures an unknown event type fails before
// any repository access, regardless of site state.
func TestRecordEventInvalidType(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	events := mocks.NewMockEventRepository(t)

	svc := NewEventUseCase(sites, events)

	_, err := svc.RecordEvent(context.Background(), 1, "banner")
	if !errors.Is(err, domain.ErrInvalidEventType) {
		t.Fatalf("expected ErrInvalidEventType, got %v", err)
	}
}

// TestRecordEventSiteNotFound ensures an unknown site id fails and
// persists nothing.
func TestRecordEventSiteNotFound(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	events := mocks.NewMockEventRepository(t)

	sites.EXPECT().
		FindSiteByID(mock.Anything, int64(404)).
		Return(nil, nil)

	svc := NewEventUseCase(sites, events)

	_, err := svc.RecordEvent(context.Background(), 404, domain.EventImpression)
	if !errors.Is(err, domain.ErrSiteNotFound) {
		t.Fatalf("expected ErrSiteNotFound, got %v", err)
	}
}

// TestRecordEventUnverifiedSite ensures an unverified site always fails
// with ErrSiteNotVerified and persists nothing.
func TestRecordEventUnverifiedSite(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	events := mocks.NewMockEventRepository(t)

	sites.EXPECT().
		FindSiteByID(mock.Anything, int64(2)).
		Return(&domain.Site{ID: 2, Verified: false}, nil)

	svc := NewEventUseCase(sites, events)

	_, err := svc.RecordEvent(context.Background(), 2, domain.EventClick)
	if !errors.Is(err, domain.ErrSiteNotVerified) {
		t.Fatalf("expected ErrSiteNotVerified, got %v", err)
	}
}

// TestRecordEventSuccess ensures a verified site gets one row per call.
func TestRecordEventSuccess(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	events := mocks.NewMockEventRepository(t)

	sites.EXPECT().
		FindSiteByID(mock.Anything, int64(2)).
		Return(&domain.Site{ID: 2, Verified: true}, nil)
	events.EXPECT().
		CreateEvent(mock.Anything, int64(2), domain.EventImpression, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(ctx context.Context, siteID int64, eventType domain.EventType, at time.Time) (*domain.AdEvent, error) {
			return &domain.AdEvent{ID: 11, SiteID: siteID, Type: eventType, CreatedAt: at}, nil
		})

	svc := NewEventUseCase(sites, events)

	event, err := svc.RecordEvent(context.Background(), 2, domain.EventImpression)
	if err != nil {
		t.Fatalf("RecordEvent error: %v", err)
	}
	if event.ID != 11 || event.Type != domain.EventImpression {
		t.Fatalf("unexpected event: %+v", event)
	}
}

// TestSiteStats ensures the snapshot combines the counts with the
// revenue estimate.
func TestSiteStats(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	events := mocks.NewMockEventRepository(t)

	sites.EXPECT().
		FindSiteByID(mock.Anything, int64(2)).
		Return(&domain.Site{ID: 2, Verified: true}, nil)
	events.EXPECT().
		CountEventsBySite(mock.Anything, int64(2)).
		Return(int64(1000), int64(50), nil)

	svc := NewEventUseCase(sites, events)

	stats, err := svc.SiteStats(context.Background(), 2)
	if err != nil {
		t.Fatalf("SiteStats error: %v", err)
	}
	if stats.Impressions != 1000 || stats.Clicks != 50 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Revenue != 4.50 {
		t.Fatalf("expected revenue 4.50, got %v", stats.Revenue)
	}
}

// TestDashboardStats ensures one report per owned site in order.
func TestDashboardStats(t *testing.T) {
	sites := mocks.NewMockSiteRepository(t)
	events := mocks.NewMockEventRepository(t)

	sites.EXPECT().
		FindSitesByOwner(mock.Anything, int64(9)).
		Return([]domain.Site{
			{ID: 1, OwnerID: 9, Name: "A", Domain: "a.example.com", Verified: true},
			{ID: 2, OwnerID: 9, Name: "B", Domain: "b.example.com"},
		}, nil)
	events.EXPECT().CountEventsBySite(mock.Anything, int64(1)).Return(int64(100), int64(0), nil)
	events.EXPECT().CountEventsBySite(mock.Anything, int64(2)).Return(int64(0), int64(0), nil)

	svc := NewEventUseCase(sites, events)

	reports, err := svc.DashboardStats(context.Background(), 9)
	if err != nil {
		t.Fatalf("DashboardStats error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].Domain != "a.example.com" || reports[0].Revenue != 0.20 {
		t.Fatalf("unexpected first report: %+v", reports[0])
	}
	if reports[1].Revenue != 0 {
		t.Fatalf("expected zero revenue for empty site, got %v", reports[1].Revenue)
	}
}
