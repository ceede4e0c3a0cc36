package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPackedParcelsQuery_Valid(t *testing.T) {
	query := queries.NewGetPackedParcelsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPackedParcelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPackedParcelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPackedParcelsQueryIsNotConstructed)
}
