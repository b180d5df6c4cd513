package db

import (
	"context"
	"fmt"
	"time"
)

type seedCandidate struct {
	name     string
	avatar   string
	rating   float64
	stage    string
	role     string
	files    int
	email    string
	rejected bool
}

const sampleAvatar = "https://fastly.picsum.photos/id/1/5000/3333.jpg?hmac=Asv2DU3rA_5D1xSe22xZK47WEAN0wjWeFOhzd13ujW4"

// sampleCandidates is demo data inserted on first boot so a fresh install
// has something to show.
var sampleCandidates = []seedCandidate{
	{name: "Charlie Kristen", avatar: sampleAvatar, rating: 4.0, stage: "Design Challenge", role: "Sr. UX Designer", files: 3, email: "charlie.k@gmail.com"},
	{name: "Malaika Brown", avatar: sampleAvatar, rating: 3.5, stage: "Screening", role: "Growth Manager", files: 1, email: "malaika.br@gmail.com"},
	{name: "Simon Minter", avatar: sampleAvatar, rating: 2.8, stage: "Design Challenge", role: "Financial Analyst", files: 2, email: "simon.m@gmail.com"},
	{name: "Ashley Brooks", avatar: sampleAvatar, rating: 4.5, stage: "HR Round", role: "Financial Analyst", files: 3, email: "ashley.b@gmail.com"},
	{name: "Nishant Talwar", avatar: sampleAvatar, rating: 5.0, stage: "Round 2 Interview", role: "Sr. UX Designer", files: 2, email: "nishant.t@gmail.com"},
	{name: "Mark Jacobs", avatar: sampleAvatar, rating: 2.0, stage: "Rejected", role: "Growth Manager", files: 1, email: "mark.j@gmail.com", rejected: true},
}

// Seed inserts the sample candidates when the store is empty. It is the
// explicit first-boot bootstrap: the count guard makes it idempotent, so
// running it on every startup is safe.
func Seed(ctx context.Context, d *DB) error {
	var count int64
	row := d.QueryRow(ctx, `SELECT COUNT(1) FROM candidates`)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("count candidates: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC().UnixMilli()
	for _, c := range sampleCandidates {
		if _, err := d.Exec(ctx,
			`INSERT INTO candidates (name, avatar, rating, stage, role, date, files, email, rejected) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.name, c.avatar, c.rating, c.stage, c.role, now, c.files, c.email, c.rejected,
		); err != nil {
			return fmt.Errorf("seed candidate %q: %w", c.name, err)
		}
	}

	return nil
}
