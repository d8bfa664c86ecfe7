package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"packshift/internal/domains/booking/model"
)

func TestStatus_Valid(t *testing.T) {
	tests := []struct {
		status model.Status
		want   bool
	}{
		{model.StatusPending, true},
		{model.StatusPickedUp, true},
		{model.StatusDelivered, true},
		{model.Status("Shipped"), false},
		{model.Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Valid())
		})
	}
}

func TestTransition(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)

	t.Run("picked up stamps pickup time", func(t *testing.T) {
		status, effects := model.Transition(model.StatusPending, model.StatusPickedUp, now)

		assert.Equal(t, model.StatusPickedUp, status)
		assert.NotNil(t, effects.PickupTime)
		assert.Equal(t, now, *effects.PickupTime)
		assert.Nil(t, effects.DeliveryTime)
	})

	t.Run("delivered stamps delivery time", func(t *testing.T) {
		status, effects := model.Transition(model.StatusPickedUp, model.StatusDelivered, now)

		assert.Equal(t, model.StatusDelivered, status)
		assert.Nil(t, effects.PickupTime)
		assert.NotNil(t, effects.DeliveryTime)
		assert.Equal(t, now, *effects.DeliveryTime)
	})

	t.Run("delivered straight from pending skips pickup time", func(t *testing.T) {
		_, effects := model.Transition(model.StatusPending, model.StatusDelivered, now)

		assert.Nil(t, effects.PickupTime)
		assert.NotNil(t, effects.DeliveryTime)
	})

	t.Run("pending never touches timestamps", func(t *testing.T) {
		status, effects := model.Transition(model.StatusDelivered, model.StatusPending, now)

		assert.Equal(t, model.StatusPending, status)
		assert.Nil(t, effects.PickupTime)
		assert.Nil(t, effects.DeliveryTime)
	})

	t.Run("replaying picked up overwrites the stamp", func(t *testing.T) {
		later := now.Add(2 * time.Hour)
		_, effects := model.Transition(model.StatusPickedUp, model.StatusPickedUp, later)

		assert.NotNil(t, effects.PickupTime)
		assert.Equal(t, later, *effects.PickupTime)
	})
}
