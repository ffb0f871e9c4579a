package commands_test

import (
	"testing"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateProductCommand_ValidInput(t *testing.T) {
	productID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewUpdateProductCommand(productID, "Milk 1L", "Dairy", "1L", 5800, 12, false, true, actorID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, int64(5800), cmd.Price())
	assert.Equal(t, 12, cmd.AvailableQty())
	assert.False(t, cmd.NewlyLaunched())
	assert.True(t, cmd.Active())
	assert.Equal(t, actorID, cmd.ActorID())
}

func TestNewUpdateProductCommand_InvalidProductID(t *testing.T) {
	_, err := commands.NewUpdateProductCommand(kernel.UUID{}, "Milk 1L", "Dairy", "1L", 5800, 12, false, true, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateProductCommand_NotConstructed(t *testing.T) {
	var cmd commands.UpdateProductCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateProductCommandIsNotConstructed)
}
