package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetInventoryQuery_Valid(t *testing.T) {
	query := queries.NewGetInventoryQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetInventoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetInventoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetInventoryQueryIsNotConstructed)
}
