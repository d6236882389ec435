package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/domain"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Price,
		&p.Description,
		&p.Category,
		&p.Image,
		&p.Rating.Rate,
		&p.Rating.Count,
	)
	return p, err
}

// UpsertProducts inserts products, replacing rows with the same id.
func (db *DB) UpsertProducts(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert products: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			price = excluded.price,
			description = excluded.description,
			category = excluded.category,
			image = excluded.image,
			rating_rate = excluded.rating_rate,
			rating_count = excluded.rating_count`)
	if err != nil {
		return fmt.Errorf("prepare upsert products: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Title, p.Price, p.Description, p.Category, p.Image, p.Rating.Rate, p.Rating.Count,
		); err != nil {
			return fmt.Errorf("upsert product %d: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// Product returns the cached product with id and whether it exists.
func (db *DB) Product(ctx context.Context, id domain.ProductID) (domain.Product, bool, error) {
	row := db.sql.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("query product %d: %w", id, err)
	}
	return p, true, nil
}

// Products returns the cached products matching filter.
func (db *DB) Products(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query, args, err := BuildProductQuery(filter)
	if err != nil {
		return nil, err
	}
	return db.queryProducts(ctx, query, args...)
}

// ProductsByIDs returns the cached products whose id is in ids, ordered by id.
func (db *DB) ProductsByIDs(ctx context.Context, ids []domain.ProductID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return db.queryProducts(ctx,
		"SELECT "+productColumns+" FROM products WHERE id IN ("+placeholders+") ORDER BY id", args...)
}

// Categories returns the distinct categories of cached products, sorted.
func (db *DB) Categories(ctx context.Context) ([]string, error) {
	rows, err := db.sql.QueryContext(ctx, "SELECT category FROM products GROUP BY category ORDER BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}

func (db *DB) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}

// Compile-time assertion that DB implements domain.ProductStore.
var _ domain.ProductStore = (*DB)(nil)
