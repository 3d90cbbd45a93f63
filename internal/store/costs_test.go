package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCostRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddCost("aluguel", 1.2)
	require.NoError(t, err)

	cost, err := s.GetCost(id)
	require.NoError(t, err)
	require.NotNil(t, cost)
	assert.Equal(t, "aluguel", cost.Name)
	assert.Equal(t, 1.2, cost.Value)
}

func TestAddCostEmptyName(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddCost("", 1)
	assert.ErrorAs(t, err, &ValidationError{})
}

func TestListCostsSortsByCaseInsensitiveName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddCost("B2 cost", 1)
	require.NoError(t, err)
	_, err = s.AddCost("A cost", 1)
	require.NoError(t, err)
	_, err = s.AddCost("b1 cost", 1)
	require.NoError(t, err)

	costs, err := s.ListCosts()
	require.NoError(t, err)
	require.Len(t, costs, 3)
	assert.Equal(t, "A cost", costs[0].Name)
	assert.Equal(t, "b1 cost", costs[1].Name)
	assert.Equal(t, "B2 cost", costs[2].Name)
}

func TestGetCostAbsentReturnsNil(t *testing.T) {
	s := newTestStore(t)
	_, err := s.AddCost("cost 1", 1)
	require.NoError(t, err)

	cost, err := s.GetCost(4)
	require.NoError(t, err)
	assert.Nil(t, cost)
}

func TestUpdateCost(t *testing.T) {
	s := newTestStore(t)
	id, err := s.AddCost("cost 1", 1)
	require.NoError(t, err)

	require.NoError(t, s.UpdateCost(id, "new cost name", 123))

	cost, err := s.GetCost(id)
	require.NoError(t, err)
	require.NotNil(t, cost)
	assert.Equal(t, "new cost name", cost.Name)
	assert.EqualValues(t, 123, cost.Value)

	assert.ErrorIs(t, s.UpdateCost(99, "x", 1), ErrNotFound)
}

func TestDeleteCost(t *testing.T) {
	s := newTestStore(t)
	id, err := s.AddCost("cost 1", 1)
	require.NoError(t, err)

	require.NoError(t, s.DeleteCost(id))

	cost, err := s.GetCost(id)
	require.NoError(t, err)
	assert.Nil(t, cost)

	assert.ErrorIs(t, s.DeleteCost(id), ErrNotFound)
}
