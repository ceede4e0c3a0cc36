package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackOrderCommand(t *testing.T) {
	cmd, err := commands.NewPackOrderCommand("A1, B5")
	require.NoError(t, err)
	assert.Equal(t, "A1, B5", cmd.Order())
	assert.NoError(t, cmd.Validate())
}

func TestNewPackOrderCommand_EmptyOrderIsLegal(t *testing.T) {
	cmd, err := commands.NewPackOrderCommand("")
	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
}

func TestPackOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.PackOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrPackOrderCommandIsNotConstructed)
}
