package partner_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPartner(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi", "ravi@example.com")
	require.NoError(t, err)
	return p
}

func TestNewPartner(t *testing.T) {
	t.Run("should create partner off shift and free", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := partner.NewPartner(id, "Ravi", "ravi@example.com")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Ravi", p.Name())
		assert.Equal(t, "ravi@example.com", p.Email())
		assert.False(t, p.ShiftOn())
		assert.False(t, p.IsBusy())
		assert.False(t, p.IsAvailable())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "", "ravi@example.com")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, partner.ErrNameIsRequired)
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := partner.NewPartner(invalidID, "Ravi", "ravi@example.com")

		require.Error(t, err)
		assert.Nil(t, p)
	})
}

func TestPartner_Validate(t *testing.T) {
	var p partner.Partner

	require.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)
}

func TestPartner_Shift(t *testing.T) {
	t.Run("shift on makes a free partner available", func(t *testing.T) {
		p := newPartner(t)

		p.SetShift(true)

		assert.True(t, p.ShiftOn())
		assert.True(t, p.IsAvailable())
	})

	t.Run("shift off makes the partner unavailable", func(t *testing.T) {
		p := newPartner(t)
		p.SetShift(true)

		p.SetShift(false)

		assert.False(t, p.IsAvailable())
	})
}

func TestPartner_MarkBusy(t *testing.T) {
	t.Run("on-shift free partner becomes busy", func(t *testing.T) {
		p := newPartner(t)
		p.SetShift(true)

		require.NoError(t, p.MarkBusy())

		assert.True(t, p.IsBusy())
		assert.False(t, p.IsAvailable())
	})

	t.Run("off-shift partner cannot take a trip", func(t *testing.T) {
		p := newPartner(t)

		err := p.MarkBusy()

		require.ErrorIs(t, err, partner.ErrPartnerIsOffShift)
		assert.False(t, p.IsBusy())
	})

	t.Run("busy partner cannot take a second trip", func(t *testing.T) {
		p := newPartner(t)
		p.SetShift(true)
		require.NoError(t, p.MarkBusy())

		err := p.MarkBusy()

		require.ErrorIs(t, err, partner.ErrPartnerIsBusy)
	})
}

func TestPartner_Free(t *testing.T) {
	p := newPartner(t)
	p.SetShift(true)
	require.NoError(t, p.MarkBusy())

	p.Free()

	assert.False(t, p.IsBusy())
	assert.True(t, p.IsAvailable())
}

func TestRestorePartner(t *testing.T) {
	id := kernel.NewUUID()

	p, err := partner.RestorePartner(id, "Ravi", "ravi@example.com", true, true)

	require.NoError(t, err)
	assert.True(t, p.ShiftOn())
	assert.True(t, p.IsBusy())
	assert.False(t, p.IsAvailable())
}
