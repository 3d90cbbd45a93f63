package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/villela/precificador/internal/model"
)

// ProductInput carries the user-supplied fields of a product add or edit.
// Quantity is kept as the raw form string: for area materials it must look
// like "<width>x<length>", for everything else it is a single number.
type ProductInput struct {
	Name          string
	Description   string
	MinutesNeeded int
	ProfitPercent int
	Materials     []ProductMaterialInput
}

type ProductMaterialInput struct {
	MaterialID int64
	Quantity   string
}

// ListProductSummaries returns the listing rows sorted by case-insensitive name.
func (s *Store) ListProductSummaries() ([]model.ProductSummary, error) {
	var rows []struct {
		ID          int64  `db:"id"`
		Name        string `db:"name"`
		Description string `db:"description"`
	}
	err := s.db.Select(&rows, `
		SELECT id, name, COALESCE(description, '') AS description
		FROM product
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query product summaries: %w", err)
	}

	summaries := make([]model.ProductSummary, 0, len(rows))
	for _, r := range rows {
		summaries = append(summaries, model.ProductSummary{ID: r.ID, Name: r.Name, Description: r.Description})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return lessNameID(summaries[i].Name, summaries[i].ID, summaries[j].Name, summaries[j].ID)
	})
	return summaries, nil
}

// GetProduct returns a product with its line items resolved against the
// material catalog, ordered by line-item id, or nil when the id does not exist.
func (s *Store) GetProduct(id int64) (*model.Product, error) {
	var head struct {
		Name          string `db:"name"`
		Description   string `db:"description"`
		MinutesNeeded int    `db:"minutes_needed"`
		Profit        int    `db:"profit"`
	}
	err := s.db.Get(&head, `
		SELECT name, COALESCE(description, '') AS description, minutes_needed, profit
		FROM product
		WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product %d: %w", id, err)
	}

	var lineRows []struct {
		LineID      int64         `db:"line_id"`
		MaterialID  int64         `db:"material_id"`
		Name        string        `db:"name"`
		Price       float64       `db:"price"`
		MeasureType int           `db:"measure_type"`
		BaseWidth   sql.NullInt64 `db:"base_width"`
		BaseLength  sql.NullInt64 `db:"base_length"`
	}
	err = s.db.Select(&lineRows, `
		SELECT pm.id AS line_id, m.id AS material_id, m.name, m.price, m.measure_type, m.base_width, m.base_length
		FROM product_materials pm
		JOIN material m ON m.id = pm.material_id
		WHERE pm.product_id = ?
		ORDER BY pm.id ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query product %d line items: %w", id, err)
	}

	items := make([]model.LineItem, 0, len(lineRows))
	for _, r := range lineRows {
		mt, err := model.MeasureTypeFromInt(r.MeasureType)
		if err != nil {
			return nil, fmt.Errorf("product %d line %d: %w", id, r.LineID, err)
		}

		var quantities []float64
		err = s.db.Select(&quantities, `
			SELECT quantity
			FROM product_material_quantities
			WHERE product_material_id = ?
			ORDER BY id ASC
		`, r.LineID)
		if err != nil {
			return nil, fmt.Errorf("query line %d quantities: %w", r.LineID, err)
		}

		item := model.LineItem{
			ID:           r.LineID,
			MaterialID:   r.MaterialID,
			MaterialName: r.Name,
			UnitPrice:    r.Price,
			Kind:         mt,
		}
		switch mt {
		case model.MeasureArea:
			if len(quantities) != 2 || !r.BaseWidth.Valid || !r.BaseLength.Valid {
				return nil, fmt.Errorf("product %d line %d: inconsistent area data", id, r.LineID)
			}
			item.Width = quantities[0]
			item.Length = quantities[1]
			item.BaseWidth = float64(r.BaseWidth.Int64)
			item.BaseLength = float64(r.BaseLength.Int64)
		default:
			if len(quantities) != 1 {
				return nil, fmt.Errorf("product %d line %d: expected one quantity, found %d", id, r.LineID, len(quantities))
			}
			item.Quantity = quantities[0]
		}
		items = append(items, item)
	}

	return &model.Product{
		ID:            id,
		Name:          head.Name,
		Description:   head.Description,
		MinutesNeeded: head.MinutesNeeded,
		ProfitPercent: head.Profit,
		Materials:     items,
	}, nil
}

// AddProduct inserts the product row, its line items and their quantity rows
// in one transaction and returns the new product id.
func (s *Store) AddProduct(input ProductInput) (int64, error) {
	if err := s.validateProduct(input.Name, 0); err != nil {
		return 0, err
	}

	var id int64
	err := s.withTx(func(tx *sqlx.Tx) error {
		res, err := tx.Exec(`
			INSERT INTO product (name, description, minutes_needed, profit)
			VALUES (?, ?, ?, ?)
		`, input.Name, input.Description, input.MinutesNeeded, input.ProfitPercent)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("product insert id: %w", err)
		}
		return insertLineItems(tx, id, input.Materials)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// EditProduct is a full replace: the scalar fields are updated in place and
// the entire material list is deleted and rebuilt from input, all in one
// transaction.
func (s *Store) EditProduct(id int64, input ProductInput) error {
	if err := s.validateProduct(input.Name, id); err != nil {
		return err
	}

	return s.withTx(func(tx *sqlx.Tx) error {
		res, err := tx.Exec(`
			UPDATE product
			SET name = ?, description = ?, minutes_needed = ?, profit = ?
			WHERE id = ?
		`, input.Name, input.Description, input.MinutesNeeded, input.ProfitPercent, id)
		if err != nil {
			return fmt.Errorf("update product %d: %w", id, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update product %d: %w", id, err)
		}
		if affected == 0 {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}

		// Quantity rows cascade with their line items.
		if _, err := tx.Exec(`DELETE FROM product_materials WHERE product_id = ?`, id); err != nil {
			return fmt.Errorf("clear product %d line items: %w", id, err)
		}
		return insertLineItems(tx, id, input.Materials)
	})
}

// DeleteProduct removes the product; line items and quantity rows cascade.
func (s *Store) DeleteProduct(id int64) error {
	res, err := s.db.Exec(`DELETE FROM product WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) validateProduct(name string, selfID int64) error {
	if name == "" {
		return validationErrorf("product name must not be empty")
	}

	var taken bool
	err := s.db.Get(&taken, `SELECT EXISTS(SELECT 1 FROM product WHERE name = ? AND id <> ?)`, name, selfID)
	if err != nil {
		return fmt.Errorf("check product name: %w", err)
	}
	if taken {
		return validationErrorf("product name %q is already in use", name)
	}
	return nil
}

func insertLineItems(tx *sqlx.Tx, productID int64, lines []ProductMaterialInput) error {
	for _, line := range lines {
		var measureType int
		err := tx.Get(&measureType, `SELECT measure_type FROM material WHERE id = ?`, line.MaterialID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("material %d: %w", line.MaterialID, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("resolve material %d: %w", line.MaterialID, err)
		}

		mt, err := model.MeasureTypeFromInt(measureType)
		if err != nil {
			return fmt.Errorf("material %d: %w", line.MaterialID, err)
		}

		quantities, err := parseQuantities(mt, line.Quantity)
		if err != nil {
			return err
		}

		res, err := tx.Exec(`
			INSERT INTO product_materials (product_id, material_id)
			VALUES (?, ?)
		`, productID, line.MaterialID)
		if err != nil {
			return fmt.Errorf("insert line item: %w", err)
		}
		lineID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("line item insert id: %w", err)
		}

		for _, q := range quantities {
			if _, err := tx.Exec(`
				INSERT INTO product_material_quantities (product_material_id, quantity)
				VALUES (?, ?)
			`, lineID, q); err != nil {
				return fmt.Errorf("insert line item quantity: %w", err)
			}
		}
	}
	return nil
}

// parseQuantities interprets the raw quantity spec for a material of the
// given measure type. Area materials take "<width>x<length>" and yield two
// values, width first; every other type takes a single number.
func parseQuantities(measureType model.MeasureType, spec string) ([]float64, error) {
	if measureType == model.MeasureArea {
		parts := strings.Split(spec, "x")
		if len(parts) != 2 {
			return nil, QuantitySpecError{Spec: spec, Reason: `expected exactly one "x" separator`}
		}
		width, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, QuantitySpecError{Spec: spec, Reason: "width is not numeric"}
		}
		length, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, QuantitySpecError{Spec: spec, Reason: "length is not numeric"}
		}
		return []float64{width, length}, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(spec), 64)
	if err != nil {
		return nil, QuantitySpecError{Spec: spec, Reason: "quantity is not numeric"}
	}
	return []float64{value}, nil
}
