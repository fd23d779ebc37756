package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adboard/internal/core/domain"
)

// EventRepository implements port.EventRepository using pgxpool. Each
// insert is a single statement, so concurrent recorders serialize on the
// storage engine without any locking here.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository returns a new repository instance.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// CreateEvent appends one event row and returns it with its ID set.
func (r *EventRepository) CreateEvent(ctx context.Context, siteID int64, eventType domain.EventType, at time.Time) (*domain.AdEvent, error) {
	event := domain.AdEvent{SiteID: siteID, Type: eventType, CreatedAt: at}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO ad_events (website_id, event_type, created_at) VALUES ($1, $2, $3) RETURNING id`,
		siteID, string(eventType), at).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CountEventsBySite counts the site's events partitioned by type in one
// query, so both counts reflect the same point in time.
func (r *EventRepository) CountEventsBySite(ctx context.Context, siteID int64) (impressions, clicks int64, err error) {
	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(count(*) FILTER (WHERE event_type = 'impression'), 0),
		        COALESCE(count(*) FILTER (WHERE event_type = 'click'), 0)
		 FROM ad_events WHERE website_id = $1`, siteID).
		Scan(&impressions, &clicks)
	return impressions, clicks, err
}
