package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type FavoritesRepo struct{ db *sqlx.DB }

func NewFavoritesRepo(db *sqlx.DB) *FavoritesRepo { return &FavoritesRepo{db: db} }

// Ensure returns the favorites list of a session, creating it on first use.
func (r *FavoritesRepo) Ensure(sessionID string) (string, error) {
	var id string
	err := r.db.Get(&id, `SELECT id FROM favorite_lists WHERE session_id=?`, sessionID)
	switch {
	case err == nil:
		return id, nil
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("load favorites list: %w", err)
	}
	_, err = r.db.Exec(`INSERT INTO favorite_lists(id,session_id,updated_at) VALUES(?,?,?)
	  ON CONFLICT(session_id) DO NOTHING`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// Add reports whether the product was newly added.
func (r *FavoritesRepo) Add(listID string, productID int) (bool, error) {
	res, err := r.db.Exec(`
	  INSERT INTO favorite_items(list_id, product_id, created_at)
	  VALUES(?, ?, ?)
	  ON CONFLICT(list_id, product_id) DO NOTHING
	`, listID, productID, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("favorites rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *FavoritesRepo) Remove(listID string, productID int) error {
	_, err := r.db.Exec(`DELETE FROM favorite_items WHERE list_id=? AND product_id=?`, listID, productID)
	return err
}

type FavoriteRow struct {
	ProductID int    `db:"product_id"`
	CreatedAt string `db:"created_at"`
}

// List returns the saved products, oldest first.
func (r *FavoritesRepo) List(listID string) ([]FavoriteRow, error) {
	var out []FavoriteRow
	err := r.db.Select(&out, `
	  SELECT product_id, created_at
	  FROM favorite_items
	  WHERE list_id = ?
	  ORDER BY rowid
	`, listID)
	return out, err
}
