package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/villela/precificador/internal/model"
)

type costRow struct {
	ID    int64   `db:"id"`
	Name  string  `db:"name"`
	Value float64 `db:"value"`
}

func (r costRow) toModel() model.MonthlyCost {
	return model.MonthlyCost{ID: r.ID, Name: r.Name, Value: r.Value}
}

// AddCost inserts a monthly fixed cost and returns its id.
func (s *Store) AddCost(name string, value float64) (int64, error) {
	if name == "" {
		return 0, validationErrorf("cost name must not be empty")
	}

	res, err := s.db.Exec(`INSERT INTO monthly_cost (name, value) VALUES (?, ?)`, name, value)
	if err != nil {
		return 0, fmt.Errorf("insert monthly cost: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("monthly cost insert id: %w", err)
	}
	return id, nil
}

// ListCosts returns every monthly cost sorted by case-insensitive name.
func (s *Store) ListCosts() ([]model.MonthlyCost, error) {
	var rows []costRow
	err := s.db.Select(&rows, `SELECT id, name, value FROM monthly_cost ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query monthly costs: %w", err)
	}

	costs := make([]model.MonthlyCost, 0, len(rows))
	for _, r := range rows {
		costs = append(costs, r.toModel())
	}

	sort.Slice(costs, func(i, j int) bool {
		return lessNameID(costs[i].Name, costs[i].ID, costs[j].Name, costs[j].ID)
	})
	return costs, nil
}

// GetCost returns the monthly cost or nil when the id does not exist.
func (s *Store) GetCost(id int64) (*model.MonthlyCost, error) {
	var row costRow
	err := s.db.Get(&row, `SELECT id, name, value FROM monthly_cost WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query monthly cost %d: %w", id, err)
	}

	cost := row.toModel()
	return &cost, nil
}

// UpdateCost replaces name and value of an existing monthly cost.
func (s *Store) UpdateCost(id int64, name string, value float64) error {
	if name == "" {
		return validationErrorf("cost name must not be empty")
	}

	res, err := s.db.Exec(`UPDATE monthly_cost SET name = ?, value = ? WHERE id = ?`, name, value, id)
	if err != nil {
		return fmt.Errorf("update monthly cost %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update monthly cost %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("monthly cost %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteCost removes a monthly cost.
func (s *Store) DeleteCost(id int64) error {
	res, err := s.db.Exec(`DELETE FROM monthly_cost WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete monthly cost %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete monthly cost %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("monthly cost %d: %w", id, ErrNotFound)
	}
	return nil
}
