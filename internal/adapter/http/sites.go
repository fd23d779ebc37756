package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/domain"
)

type createSiteRequest struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
}

type siteResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Domain            string    `json:"domain"`
	VerificationToken string    `json:"verification_token"`
	Verified          bool      `json:"verified"`
	CreatedAt         time.Time `json:"created_at"`
}

// handleCreateSite registers a domain for the authenticated user and
// returns the site with its verification token. Re-registering the
// caller's own domain returns the existing site; a domain held by another
// user results in HTTP 409.
func (h *Handler) handleCreateSite(w http.ResponseWriter, r *http.Request) {
	var req createSiteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Domain == "" {
		http.Error(w, "name and domain are required", http.StatusBadRequest)
		return
	}
	site, err := h.sites.CreateSite(r.Context(), userID(r), req.Name, req.Domain)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateDomain) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.logger.Error("create site error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	resp := siteResponse{
		ID:                site.ID,
		Name:              site.Name,
		Domain:            site.Domain,
		VerificationToken: site.VerificationToken,
		Verified:          site.Verified,
		CreatedAt:         site.CreatedAt,
	}
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleVerifySites attempts verification of every site the caller owns
// and returns a domain→outcome mapping. Individual fetch failures show up
// as false entries; the batch itself never fails on them.
func (h *Handler) handleVerifySites(w http.ResponseWriter, r *http.Request) {
	result, err := h.sites.VerifyUserSites(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("verify sites error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleVerifySite attempts verification of one site owned by the caller.
// A site that does not exist or belongs to someone else results in
// HTTP 404.
func (h *Handler) handleVerifySite(w http.ResponseWriter, r *http.Request) {
	siteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid site id", http.StatusBadRequest)
		return
	}
	check, err := h.sites.VerifySiteByID(r.Context(), userID(r), siteID)
	if err != nil {
		if errors.Is(err, domain.ErrSiteNotFound) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("verify site error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(check); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
