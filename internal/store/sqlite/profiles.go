package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marketplace/internal/domain"
)

// SaveProfile inserts or replaces the cached profile.
func (db *DB) SaveProfile(ctx context.Context, p domain.Profile) error {
	_, err := db.sql.ExecContext(ctx, `
		INSERT INTO profiles (
		   id, username, email, phone, first_name, last_name,
		   city, street, number, zipcode, geo_lat, geo_long
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
		   username = excluded.username,
		   email = excluded.email,
		   phone = excluded.phone,
		   first_name = excluded.first_name,
		   last_name = excluded.last_name,
		   city = excluded.city,
		   street = excluded.street,
		   number = excluded.number,
		   zipcode = excluded.zipcode,
		   geo_lat = excluded.geo_lat,
		   geo_long = excluded.geo_long`,
		p.ID, p.Username, p.Email, p.Phone, p.Name.First, p.Name.Last,
		p.Address.City, p.Address.Street, p.Address.Number, p.Address.Zipcode,
		p.Address.Geo.Lat, p.Address.Geo.Long,
	)
	if err != nil {
		return fmt.Errorf("save profile %d: %w", p.ID, err)
	}
	return nil
}

// Profile returns the cached profile for id and whether it exists.
func (db *DB) Profile(ctx context.Context, id domain.UserID) (domain.Profile, bool, error) {
	var p domain.Profile
	err := db.sql.QueryRowContext(ctx, `
		SELECT id, username, email, phone, first_name, last_name,
		       city, street, number, zipcode, geo_lat, geo_long
		FROM profiles WHERE id = ?`, id,
	).Scan(
		&p.ID, &p.Username, &p.Email, &p.Phone, &p.Name.First, &p.Name.Last,
		&p.Address.City, &p.Address.Street, &p.Address.Number, &p.Address.Zipcode,
		&p.Address.Geo.Lat, &p.Address.Geo.Long,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, fmt.Errorf("query profile %d: %w", id, err)
	}
	return p, true, nil
}

// DeleteProfile removes the cached profile for id, if any.
func (db *DB) DeleteProfile(ctx context.Context, id domain.UserID) error {
	if _, err := db.sql.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete profile %d: %w", id, err)
	}
	return nil
}

// Compile-time assertion that DB implements domain.ProfileStore.
var _ domain.ProfileStore = (*DB)(nil)
