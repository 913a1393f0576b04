package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func destination(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("US", "Austin", "TX", "78701", []string{"100 Congress Ave"})
	require.NoError(t, err)
	return addr
}

func TestNewShipment(t *testing.T) {
	t.Run("starts waiting and unsaved", func(t *testing.T) {
		trackingID := kernel.NewTrackingID()
		dest := destination(t)
		normalized := kernel.RestoreAddress("US", "Austin", "TX", "78701-1234", []string{"100 Congress Ave"})

		s, err := shipment.NewShipment(trackingID, 7, 2.5, " 30x20x10 ", "books", dest, &normalized)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Waiting, s.Status())
		assert.False(t, s.IsPersisted())
		assert.True(t, s.TrackingID().IsEqual(trackingID))
		assert.Equal(t, int64(7), s.UserID())
		assert.InDelta(t, 2.5, s.Weight(), 1e-9)
		assert.Equal(t, "30x20x10", s.Dimensions())
		assert.Equal(t, "books", s.ProductType())
		assert.True(t, s.DestinationAddress().IsEqual(dest))
		require.NotNil(t, s.NormalizedAddress())
		assert.Equal(t, "78701-1234", s.NormalizedAddress().PostalCode())
	})

	t.Run("normalized address is optional", func(t *testing.T) {
		s, err := shipment.NewShipment(kernel.NewTrackingID(), 7, 1, "", "", destination(t), nil)
		require.NoError(t, err)
		assert.Nil(t, s.NormalizedAddress())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name       string
			trackingID kernel.TrackingID
			userID     int64
			weight     float64
			dest       kernel.Address
			want       error
		}{
			{"zero tracking id", kernel.TrackingID{}, 7, 1, destination(t), kernel.ErrTrackingIDIsNotConstructed},
			{"missing user", kernel.NewTrackingID(), 0, 1, destination(t), errs.ErrValueIsRequired},
			{"zero weight", kernel.NewTrackingID(), 7, 0, destination(t), errs.ErrValueIsInvalid},
			{"negative weight", kernel.NewTrackingID(), 7, -3, destination(t), errs.ErrValueIsInvalid},
			{"zero address", kernel.NewTrackingID(), 7, 1, kernel.Address{}, kernel.ErrAddressIsNotConstructed},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				s, err := shipment.NewShipment(tt.trackingID, tt.userID, tt.weight, "", "", tt.dest, nil)
				require.ErrorIs(t, err, tt.want)
				assert.Nil(t, s)
			})
		}
	})
}

func TestRestoreShipment(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	trackingID, _ := kernel.TrackingIDFromString("COORD_0000ABCD")

	s, err := shipment.RestoreShipment(42, trackingID, 7, 0, "", "", destination(t), nil, "CUSTOMS_HOLD", createdAt)

	require.NoError(t, err)
	assert.Equal(t, int64(42), s.ID())
	assert.True(t, s.IsPersisted())
	assert.Equal(t, shipment.Status("CUSTOMS_HOLD"), s.Status())
	assert.Equal(t, createdAt, s.CreatedAt())
	assert.Zero(t, s.Weight())

	_, err = shipment.RestoreShipment(0, trackingID, 7, 1, "", "", destination(t), nil, shipment.Waiting, createdAt)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = shipment.RestoreShipment(1, trackingID, 7, 1, "", "", destination(t), nil, "", createdAt)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestShipment_Lifecycle(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewTrackingID(), 7, 1, "", "", destination(t), nil)
	require.NoError(t, err)

	// Delivering straight from WAITING is rejected.
	require.ErrorIs(t, s.MarkDelivered(), errs.ErrStateIsInvalid)
	assert.Equal(t, shipment.Waiting, s.Status())

	require.NoError(t, s.ChangeStatus(shipment.InTransit))
	require.NoError(t, s.MarkDelivered())
	assert.Equal(t, shipment.Delivered, s.Status())

	// Second delivery fails and leaves the status untouched.
	require.ErrorIs(t, s.MarkDelivered(), errs.ErrStateIsInvalid)
	assert.Equal(t, shipment.Delivered, s.Status())
}

func TestShipment_ChangeStatus(t *testing.T) {
	s, _ := shipment.NewShipment(kernel.NewTrackingID(), 7, 1, "", "", destination(t), nil)

	require.NoError(t, s.ChangeStatus("CUSTOMS_HOLD"))
	assert.Equal(t, shipment.Status("CUSTOMS_HOLD"), s.Status())

	require.ErrorIs(t, s.ChangeStatus(""), errs.ErrValueIsRequired)
	assert.Equal(t, shipment.Status("CUSTOMS_HOLD"), s.Status())
}

func TestShipment_Validate(t *testing.T) {
	var nilShipment *shipment.Shipment
	require.ErrorIs(t, nilShipment.Validate(), shipment.ErrShipmentIsNotConstructed)

	literal := &shipment.Shipment{}
	require.ErrorIs(t, literal.Validate(), shipment.ErrShipmentIsNotConstructed)
}

func TestNewEvent(t *testing.T) {
	trackingID, _ := kernel.TrackingIDFromString("COORD_0000ABCD")
	s, _ := shipment.RestoreShipment(42, trackingID, 7, 1, "", "", destination(t), nil, shipment.InTransit, time.Now())
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	ev := shipment.NewEvent(shipment.EventStatusChanged, s, at)

	assert.Equal(t, shipment.EventStatusChanged, ev.Type)
	assert.Equal(t, int64(42), ev.ShipmentID)
	assert.Equal(t, "COORD_0000ABCD", ev.TrackingID)
	assert.Equal(t, int64(7), ev.UserID)
	assert.Equal(t, shipment.InTransit, ev.Status)
	assert.Equal(t, time.UTC, ev.OccurredAt.Location())
}
