package guard_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("ledger not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// The guard is embedded by value everywhere, so copies must validate the
// same way the original does.
func TestConstructorGuard_CopySemantics(t *testing.T) {
	g := guard.NewConstructorGuard()
	cp := g

	require.NoError(t, g.Validate(nil))
	require.NoError(t, cp.Validate(nil))
}

func TestConstructorGuard_EmbeddedUsage(t *testing.T) {
	errNotConstructed := errors.New("Parcel must be created via NewParcel")

	type parcel struct {
		code  string
		guard guard.ConstructorGuard
	}

	built := parcel{code: "A3", guard: guard.NewConstructorGuard()}
	var zero parcel

	require.NoError(t, built.guard.Validate(errNotConstructed))

	err := zero.guard.Validate(errNotConstructed)
	require.Error(t, err)
	assert.Equal(t, errNotConstructed, err)
}
