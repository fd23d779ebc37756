package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Seed inserts demo data: one account, three sites (two verified) and a
// spread of impression/click events over the last week. Password for the
// demo account is "password".
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	var userID int64
	err = pool.QueryRow(ctx, `INSERT INTO users (email, password_hash)
VALUES ($1, $2) ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email RETURNING id`,
		"demo@adboard.local", string(hash)).Scan(&userID)
	if err != nil {
		return err
	}

	sites := []struct {
		name     string
		domain   string
		verified bool
	}{
		{"Demo Blog", "blog.example.com", true},
		{"Demo Shop", "shop.example.com", true},
		{"Pending Site", "pending.example.com", false},
	}
	for _, s := range sites {
		var siteID int64
		err = pool.QueryRow(ctx, `INSERT INTO websites (owner_id, name, domain, verification_token, verified)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (domain) DO UPDATE SET name = EXCLUDED.name RETURNING id`,
			userID, s.name, s.domain, uuid.NewString(), s.verified).Scan(&siteID)
		if err != nil {
			return err
		}
		if !s.verified {
			continue
		}
		// events spread over the last 7 days, roughly 5% CTR
		impressions := 200 + r.Intn(800)
		for i := 0; i < impressions; i++ {
			at := time.Now().UTC().Add(-time.Duration(r.Intn(7*24)) * time.Hour)
			eventType := "impression"
			if r.Intn(20) == 0 {
				eventType = "click"
			}
			_, err = pool.Exec(ctx, `INSERT INTO ad_events (website_id, event_type, created_at)
VALUES ($1, $2, $3)`, siteID, eventType, at)
			if err != nil {
				return fmt.Errorf("seed events for %s: %w", s.domain, err)
			}
		}
	}
	return nil
}
