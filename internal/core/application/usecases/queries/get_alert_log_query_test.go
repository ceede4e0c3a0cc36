package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAlertLogQuery_Valid(t *testing.T) {
	query := queries.NewGetAlertLogQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAlertLogQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAlertLogQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAlertLogQueryIsNotConstructed)
}
