package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/domain"
)

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

// AddItem inserts item or, when the product already has a line, adds to its
// quantity. The existing line keeps its original timestamp.
func (db *DB) AddItem(ctx context.Context, item domain.CartItem) error {
	if item.Quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add cart item: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var existing int
	err = tx.QueryRowContext(ctx,
		"SELECT quantity FROM cart WHERE product_id = ?", item.ProductID,
	).Scan(&existing)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			"INSERT INTO cart (product_id, quantity, added_at) VALUES (?, ?, ?)",
			item.ProductID, item.Quantity, toMillis(item.AddedAt),
		)
	case err == nil:
		_, err = tx.ExecContext(ctx,
			"UPDATE cart SET quantity = ? WHERE product_id = ?",
			existing+item.Quantity, item.ProductID,
		)
	}
	if err != nil {
		return fmt.Errorf("add cart item %d: %w", item.ProductID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add cart item %d: %w", item.ProductID, err)
	}
	db.cart.publish()
	return nil
}

// Item returns the cart line for id and whether it exists.
func (db *DB) Item(ctx context.Context, id domain.ProductID) (domain.CartItem, bool, error) {
	var (
		item    domain.CartItem
		addedAt int64
	)
	err := db.sql.QueryRowContext(ctx,
		"SELECT product_id, quantity, added_at FROM cart WHERE product_id = ?", id,
	).Scan(&item.ProductID, &item.Quantity, &addedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CartItem{}, false, nil
	}
	if err != nil {
		return domain.CartItem{}, false, fmt.Errorf("query cart item %d: %w", id, err)
	}
	item.AddedAt = fromMillis(addedAt)
	return item, true, nil
}

// Items returns every cart line, newest first.
func (db *DB) Items(ctx context.Context) ([]domain.CartItem, error) {
	rows, err := db.sql.QueryContext(ctx,
		"SELECT product_id, quantity, added_at FROM cart ORDER BY added_at DESC, product_id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	var out []domain.CartItem
	for rows.Next() {
		var (
			item    domain.CartItem
			addedAt int64
		)
		if err := rows.Scan(&item.ProductID, &item.Quantity, &addedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.AddedAt = fromMillis(addedAt)
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}

// Count returns the number of cart lines.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := db.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM cart").Scan(&n); err != nil {
		return 0, fmt.Errorf("count cart: %w", err)
	}
	return n, nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less deletes the line. Missing lines yield domain.ErrNotInCart.
func (db *DB) UpdateQuantity(ctx context.Context, id domain.ProductID, quantity int) error {
	if quantity <= 0 {
		return db.DeleteItem(ctx, id)
	}
	res, err := db.sql.ExecContext(ctx, "UPDATE cart SET quantity = ? WHERE product_id = ?", quantity, id)
	if err != nil {
		return fmt.Errorf("update cart item %d: %w", id, err)
	}
	return db.afterCartWrite(res)
}

// DeleteItem removes the line for id. Missing lines yield domain.ErrNotInCart.
func (db *DB) DeleteItem(ctx context.Context, id domain.ProductID) error {
	res, err := db.sql.ExecContext(ctx, "DELETE FROM cart WHERE product_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete cart item %d: %w", id, err)
	}
	return db.afterCartWrite(res)
}

// DeleteAll empties the cart.
func (db *DB) DeleteAll(ctx context.Context) error {
	if _, err := db.sql.ExecContext(ctx, "DELETE FROM cart"); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	db.cart.publish()
	return nil
}

// Changes signals after every committed cart write until ctx is done.
// Writes through this handle signal immediately; commits from other
// connections to the same file are picked up by polling.
func (db *DB) Changes(ctx context.Context) <-chan struct{} {
	ch := db.cart.subscribe(ctx)
	last, err := db.dataVersion(ctx)
	if err != nil {
		last = -1
	}
	go db.watchExternal(ctx, &db.cart, last)
	return ch
}

func (db *DB) afterCartWrite(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotInCart
	}
	db.cart.publish()
	return nil
}

// Compile-time assertion that DB implements domain.CartStore.
var _ domain.CartStore = (*DB)(nil)
