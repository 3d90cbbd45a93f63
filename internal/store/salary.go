package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/villela/precificador/internal/model"
)

type salaryRow struct {
	Salary    float64 `db:"salary"`
	Sunday    int     `db:"sunday"`
	Monday    int     `db:"monday"`
	Tuesday   int     `db:"tuesday"`
	Wednesday int     `db:"wednesday"`
	Thursday  int     `db:"thursday"`
	Friday    int     `db:"friday"`
	Saturday  int     `db:"saturday"`
}

// SalaryInfo loads the shop-wide labor schedule. Exactly one row must exist;
// a missing row means the database was never initialized and is not
// recoverable here.
func (s *Store) SalaryInfo() (model.SalaryInfo, error) {
	var row salaryRow
	err := s.db.Get(&row, `
		SELECT salary, sunday, monday, tuesday, wednesday, thursday, friday, saturday
		FROM salary_info
		WHERE id = 1
	`)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SalaryInfo{}, fmt.Errorf("salary_info singleton row is missing")
	}
	if err != nil {
		return model.SalaryInfo{}, fmt.Errorf("query salary info: %w", err)
	}

	return model.SalaryInfo{
		Salary: row.Salary,
		Week: model.WorkWeek{
			Days: [7]model.WorkDay{
				{Day: model.Sunday, Minutes: row.Sunday},
				{Day: model.Monday, Minutes: row.Monday},
				{Day: model.Tuesday, Minutes: row.Tuesday},
				{Day: model.Wednesday, Minutes: row.Wednesday},
				{Day: model.Thursday, Minutes: row.Thursday},
				{Day: model.Friday, Minutes: row.Friday},
				{Day: model.Saturday, Minutes: row.Saturday},
			},
		},
	}, nil
}

// UpdateSalaryInfo overwrites the singleton: the weekly wage base plus the
// minutes for all seven weekdays, Sunday first.
func (s *Store) UpdateSalaryInfo(salary float64, minutes [7]int) error {
	res, err := s.db.Exec(`
		UPDATE salary_info
		SET salary = ?, sunday = ?, monday = ?, tuesday = ?, wednesday = ?, thursday = ?, friday = ?, saturday = ?
		WHERE id = 1
	`, salary, minutes[0], minutes[1], minutes[2], minutes[3], minutes[4], minutes[5], minutes[6])
	if err != nil {
		return fmt.Errorf("update salary info: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update salary info: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("salary_info singleton row is missing")
	}
	return nil
}
