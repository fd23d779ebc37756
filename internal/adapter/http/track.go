package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adboard/internal/core/domain"
)

type trackRequest struct {
	EventType string `json:"event_type"`
	WebsiteID int64  `json:"website_id"`
}

type trackResponse struct {
	Status    string `json:"status"`
	WebsiteID int64  `json:"website_id"`
	EventType string `json:"event_type"`
	AdEventID int64  `json:"ad_event_id"`
}

// handleTrack records one impression or click for a verified site. An
// invalid event type results in HTTP 400; an unknown or unverified site
// results in HTTP 404. On success it returns the persisted event id.
func (h *Handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	event, err := h.events.RecordEvent(r.Context(), req.WebsiteID, domain.EventType(req.EventType))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidEventType):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrSiteNotFound), errors.Is(err, domain.ErrSiteNotVerified):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			h.logger.Error("track error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	resp := trackResponse{
		Status:    "success",
		WebsiteID: event.SiteID,
		EventType: string(event.Type),
		AdEventID: event.ID,
	}
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
