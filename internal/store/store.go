// Package store is the persistence layer of the pricing calculator. It owns
// the SQL for materials, monthly costs, the labor schedule singleton, and
// products with their material line items.
package store

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// withTx runs fn inside a transaction, rolling back on error. Multi-step
// writes (product add/edit) must go through here so a partial failure never
// leaves an orphaned line item or a missing quantity row.
func (s *Store) withTx(fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// lessNameID is the listing order used across the catalog pages:
// case-insensitive name ascending, ties broken by id. The folding happens
// here instead of in SQL so the order does not depend on sqlite collations.
func lessNameID(nameA string, idA int64, nameB string, idB int64) bool {
	la, lb := strings.ToLower(nameA), strings.ToLower(nameB)
	if la != lb {
		return la < lb
	}
	return idA < idB
}
