package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/villela/precificador/internal/model"
)

type materialRow struct {
	ID          int64         `db:"id"`
	Name        string        `db:"name"`
	Note        string        `db:"note"`
	MeasureType int           `db:"measure_type"`
	Price       float64       `db:"price"`
	BaseWidth   sql.NullInt64 `db:"base_width"`
	BaseLength  sql.NullInt64 `db:"base_length"`
}

func (r materialRow) toModel() (model.Material, error) {
	mt, err := model.MeasureTypeFromInt(r.MeasureType)
	if err != nil {
		return model.Material{}, fmt.Errorf("material %d: %w", r.ID, err)
	}

	m := model.Material{
		ID:          r.ID,
		Name:        r.Name,
		Note:        r.Note,
		MeasureType: mt,
		Price:       r.Price,
	}
	// Base dimensions only mean something for area materials.
	if mt == model.MeasureArea {
		if r.BaseWidth.Valid {
			w := r.BaseWidth.Int64
			m.BaseWidth = &w
		}
		if r.BaseLength.Valid {
			l := r.BaseLength.Int64
			m.BaseLength = &l
		}
	}
	return m, nil
}

// AddMaterial inserts a catalog entry and returns its id. Base dimensions are
// required for area materials and discarded for every other measure type.
func (s *Store) AddMaterial(name, note string, measureType model.MeasureType, price float64, baseWidth, baseLength *int64) (int64, error) {
	if err := s.validateMaterial(name, price, 0); err != nil {
		return 0, err
	}

	baseWidth, baseLength, err := normalizeBaseDims(measureType, baseWidth, baseLength)
	if err != nil {
		return 0, err
	}

	res, err := s.db.Exec(`
		INSERT INTO material (name, note, measure_type, price, base_width, base_length)
		VALUES (?, ?, ?, ?, ?, ?)
	`, name, note, int(measureType), price, baseWidth, baseLength)
	if err != nil {
		return 0, fmt.Errorf("insert material: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("material insert id: %w", err)
	}
	return id, nil
}

// ListMaterials returns every material sorted by case-insensitive name.
func (s *Store) ListMaterials() ([]model.Material, error) {
	var rows []materialRow
	err := s.db.Select(&rows, `
		SELECT id, name, note, measure_type, price, base_width, base_length
		FROM material
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}

	materials := make([]model.Material, 0, len(rows))
	for _, r := range rows {
		m, err := r.toModel()
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}

	sort.Slice(materials, func(i, j int) bool {
		return lessNameID(materials[i].Name, materials[i].ID, materials[j].Name, materials[j].ID)
	})
	return materials, nil
}

// GetMaterial returns the material or nil when the id does not exist.
func (s *Store) GetMaterial(id int64) (*model.Material, error) {
	var row materialRow
	err := s.db.Get(&row, `
		SELECT id, name, note, measure_type, price, base_width, base_length
		FROM material
		WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query material %d: %w", id, err)
	}

	m, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMaterial replaces name, note, price and base dimensions. The measure
// type is immutable after creation; base dimensions are interpreted against
// the stored type.
func (s *Store) UpdateMaterial(id int64, name, note string, price float64, baseWidth, baseLength *int64) error {
	current, err := s.GetMaterial(id)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("material %d: %w", id, ErrNotFound)
	}

	if err := s.validateMaterial(name, price, id); err != nil {
		return err
	}

	baseWidth, baseLength, err = normalizeBaseDims(current.MeasureType, baseWidth, baseLength)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		UPDATE material
		SET name = ?, note = ?, price = ?, base_width = ?, base_length = ?
		WHERE id = ?
	`, name, note, price, baseWidth, baseLength, id)
	if err != nil {
		return fmt.Errorf("update material %d: %w", id, err)
	}
	return nil
}

// DeleteMaterial removes a material. Deletion is refused while any product
// line item still references the material, so products never end up pointing
// at a hole in the catalog.
func (s *Store) DeleteMaterial(id int64) error {
	var inUse bool
	err := s.db.Get(&inUse, `SELECT EXISTS(SELECT 1 FROM product_materials WHERE material_id = ?)`, id)
	if err != nil {
		return fmt.Errorf("check material references: %w", err)
	}
	if inUse {
		return fmt.Errorf("material %d: %w", id, ErrMaterialInUse)
	}

	res, err := s.db.Exec(`DELETE FROM material WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete material %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete material %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("material %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) validateMaterial(name string, price float64, selfID int64) error {
	if name == "" {
		return validationErrorf("material name must not be empty")
	}
	if price < 0 {
		return validationErrorf("material price must not be negative")
	}

	var taken bool
	err := s.db.Get(&taken, `SELECT EXISTS(SELECT 1 FROM material WHERE name = ? AND id <> ?)`, name, selfID)
	if err != nil {
		return fmt.Errorf("check material name: %w", err)
	}
	if taken {
		return validationErrorf("material name %q is already in use", name)
	}
	return nil
}

func normalizeBaseDims(measureType model.MeasureType, baseWidth, baseLength *int64) (*int64, *int64, error) {
	if measureType != model.MeasureArea {
		return nil, nil, nil
	}
	if baseWidth == nil || *baseWidth <= 0 || baseLength == nil || *baseLength <= 0 {
		return nil, nil, validationErrorf("area materials need positive base width and base length")
	}
	return baseWidth, baseLength, nil
}
