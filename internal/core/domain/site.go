package domain

import "time"

// Site is a domain a user claims to own. A domain maps to at most one
// Site across all users. VerificationToken is the random secret the owner
// publishes in https://{domain}/ads.txt to prove control.
//
// Verified transitions false→true exactly once. There is no automatic
// re-check and a verified site never reverts, even if the token is later
// removed from the domain.
type Site struct {
	ID                int64
	OwnerID           int64
	Name              string
	Domain            string
	VerificationToken string
	Verified          bool
	CreatedAt         time.Time
}
