// Package seed performs the idempotent startup initialization the rest of
// the application assumes has happened, most importantly the salary_info
// singleton row the labor schedule queries depend on.
package seed

import (
	"database/sql"
	"fmt"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureSalaryInfo(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureSalaryInfo(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM salary_info WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check salary info existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO salary_info (id, salary, sunday, monday, tuesday, wednesday, thursday, friday, saturday)
		VALUES (1, 0, 0, 0, 0, 0, 0, 0, 0)
	`); err != nil {
		return fmt.Errorf("insert salary info singleton: %w", err)
	}
	stats.Inserts++
	return nil
}
