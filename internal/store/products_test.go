package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villela/precificador/internal/model"
)

func TestAddProductRoundTrip(t *testing.T) {
	s := newTestStore(t)
	materialID := addUnitMaterial(t, s, "material 1", 1.2)

	id, err := s.AddProduct(ProductInput{
		Name:          "test product",
		Description:   "test description",
		MinutesNeeded: 60,
		ProfitPercent: 50,
		Materials:     []ProductMaterialInput{{MaterialID: materialID, Quantity: "5"}},
	})
	require.NoError(t, err)

	p, err := s.GetProduct(id)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, id, p.ID)
	assert.Equal(t, "test product", p.Name)
	assert.Equal(t, "test description", p.Description)
	assert.Equal(t, 60, p.MinutesNeeded)
	assert.Equal(t, 50, p.ProfitPercent)

	require.Len(t, p.Materials, 1)
	item := p.Materials[0]
	assert.Equal(t, model.MeasureUnit, item.Kind)
	assert.Equal(t, materialID, item.MaterialID)
	assert.Equal(t, "material 1", item.MaterialName)
	assert.Equal(t, 1.2, item.UnitPrice)
	assert.EqualValues(t, 5, item.Quantity)
}

func TestAddProductUnknownMaterial(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddProduct(ProductInput{
		Name:          "test product",
		MinutesNeeded: 60,
		ProfitPercent: 50,
		Materials:     []ProductMaterialInput{{MaterialID: 42, Quantity: "5"}},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed transaction must not leave the product row behind.
	summaries, err := s.ListProductSummaries()
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestAddProductAreaQuantitySpec(t *testing.T) {
	s := newTestStore(t)
	materialID := addAreaMaterial(t, s, "material 2", 1.0, 100, 120)

	input := func(spec string) ProductInput {
		return ProductInput{
			Name:          "test product",
			MinutesNeeded: 60,
			ProfitPercent: 50,
			Materials:     []ProductMaterialInput{{MaterialID: materialID, Quantity: spec}},
		}
	}

	_, err := s.AddProduct(input("10"))
	assert.ErrorAs(t, err, &QuantitySpecError{}, "missing separator")

	_, err = s.AddProduct(input("ax9"))
	assert.ErrorAs(t, err, &QuantitySpecError{}, "non-numeric side")

	_, err = s.AddProduct(input("10x9x3"))
	assert.ErrorAs(t, err, &QuantitySpecError{}, "too many separators")

	id, err := s.AddProduct(input("10x9"))
	require.NoError(t, err)

	p, err := s.GetProduct(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Len(t, p.Materials, 1)

	item := p.Materials[0]
	assert.Equal(t, model.MeasureArea, item.Kind)
	assert.EqualValues(t, 10, item.Width)
	assert.EqualValues(t, 9, item.Length)
	assert.EqualValues(t, 100, item.BaseWidth)
	assert.EqualValues(t, 120, item.BaseLength)
}

func TestAddProductValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddProduct(ProductInput{Name: ""})
	assert.ErrorAs(t, err, &ValidationError{})

	_, err = s.AddProduct(ProductInput{Name: "caixa"})
	require.NoError(t, err)
	_, err = s.AddProduct(ProductInput{Name: "caixa"})
	assert.ErrorAs(t, err, &ValidationError{}, "duplicate name")
}

func TestListProductSummariesSortsByCaseInsensitiveName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"B2 product", "A product", "b1 product"} {
		_, err := s.AddProduct(ProductInput{Name: name, MinutesNeeded: 60, ProfitPercent: 50})
		require.NoError(t, err)
	}

	summaries, err := s.ListProductSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "A product", summaries[0].Name)
	assert.Equal(t, "b1 product", summaries[1].Name)
	assert.Equal(t, "B2 product", summaries[2].Name)
}

func TestGetProductAbsentReturnsNil(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetProduct(3)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetProductSortsLineItemsByID(t *testing.T) {
	s := newTestStore(t)
	aID := addUnitMaterial(t, s, "A material", 1.2)
	bID := addUnitMaterial(t, s, "B material", 1.2)

	id, err := s.AddProduct(ProductInput{
		Name:          "test product",
		MinutesNeeded: 60,
		ProfitPercent: 50,
		Materials: []ProductMaterialInput{
			{MaterialID: bID, Quantity: "5"},
			{MaterialID: aID, Quantity: "5"},
		},
	})
	require.NoError(t, err)

	p, err := s.GetProduct(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Len(t, p.Materials, 2)
	assert.Equal(t, "B material", p.Materials[0].MaterialName)
	assert.Equal(t, "A material", p.Materials[1].MaterialName)
}

func TestEditProductReplacesEverything(t *testing.T) {
	s := newTestStore(t)
	unitID := addUnitMaterial(t, s, "material 1", 1.2)
	areaID := addAreaMaterial(t, s, "material 2", 1.0, 100, 120)

	id, err := s.AddProduct(ProductInput{
		Name:          "test product",
		MinutesNeeded: 60,
		ProfitPercent: 50,
		Materials:     []ProductMaterialInput{{MaterialID: unitID, Quantity: "5"}},
	})
	require.NoError(t, err)

	require.NoError(t, s.EditProduct(id, ProductInput{
		Name:          "new test product name",
		Description:   "fancy description",
		MinutesNeeded: 3,
		ProfitPercent: 1,
		Materials:     []ProductMaterialInput{{MaterialID: areaID, Quantity: "10x9"}},
	}))

	p, err := s.GetProduct(id)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "new test product name", p.Name)
	assert.Equal(t, "fancy description", p.Description)
	assert.Equal(t, 3, p.MinutesNeeded)
	assert.Equal(t, 1, p.ProfitPercent)

	require.Len(t, p.Materials, 1, "old line items must be gone")
	item := p.Materials[0]
	assert.Equal(t, model.MeasureArea, item.Kind)
	assert.Equal(t, "material 2", item.MaterialName)
	assert.EqualValues(t, 10, item.Width)
	assert.EqualValues(t, 9, item.Length)
}

func TestEditProductNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.EditProduct(7, ProductInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditProductKeepsOldLinesOnFailure(t *testing.T) {
	s := newTestStore(t)
	unitID := addUnitMaterial(t, s, "material 1", 1.2)

	id, err := s.AddProduct(ProductInput{
		Name:          "test product",
		MinutesNeeded: 60,
		ProfitPercent: 50,
		Materials:     []ProductMaterialInput{{MaterialID: unitID, Quantity: "5"}},
	})
	require.NoError(t, err)

	err = s.EditProduct(id, ProductInput{
		Name:          "renamed",
		MinutesNeeded: 1,
		ProfitPercent: 1,
		Materials:     []ProductMaterialInput{{MaterialID: 42, Quantity: "1"}},
	})
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := s.GetProduct(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "test product", p.Name, "failed edit must roll back")
	require.Len(t, p.Materials, 1)
	assert.Equal(t, "material 1", p.Materials[0].MaterialName)
}

func TestDeleteProductCascades(t *testing.T) {
	s := newTestStore(t)
	materialID := addUnitMaterial(t, s, "material 1", 1.2)

	id, err := s.AddProduct(ProductInput{
		Name:          "test product",
		MinutesNeeded: 60,
		ProfitPercent: 50,
		Materials:     []ProductMaterialInput{{MaterialID: materialID, Quantity: "5"}},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(id))

	p, err := s.GetProduct(id)
	require.NoError(t, err)
	assert.Nil(t, p)

	assert.ErrorIs(t, s.DeleteProduct(id), ErrNotFound)

	// Line items are gone, so the material is free again.
	assert.NoError(t, s.DeleteMaterial(materialID))
}

func TestParseQuantities(t *testing.T) {
	got, err := parseQuantities(model.MeasureUnit, " 5 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, got)

	got, err = parseQuantities(model.MeasureArea, "10x9")
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 9}, got)

	_, err = parseQuantities(model.MeasureLength, "abc")
	assert.ErrorAs(t, err, &QuantitySpecError{})

	_, err = parseQuantities(model.MeasureArea, "x9")
	assert.ErrorAs(t, err, &QuantitySpecError{})
}
