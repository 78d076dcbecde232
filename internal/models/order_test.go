package models_test

import (
	"testing"

	"kalahaat/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    models.OrderStatus
		to      models.OrderStatus
		allowed bool
	}{
		{models.OrderPending, models.OrderProcessing, true},
		{models.OrderPending, models.OrderCancelled, true},
		{models.OrderProcessing, models.OrderShipped, true},
		{models.OrderShipped, models.OrderDelivered, true},

		// No skipping forward.
		{models.OrderPending, models.OrderShipped, false},
		{models.OrderPending, models.OrderDelivered, false},
		{models.OrderProcessing, models.OrderDelivered, false},

		// Cancellation only from pending.
		{models.OrderProcessing, models.OrderCancelled, false},
		{models.OrderShipped, models.OrderCancelled, false},

		// No moving backwards.
		{models.OrderProcessing, models.OrderPending, false},
		{models.OrderShipped, models.OrderProcessing, false},

		// Terminal states accept nothing.
		{models.OrderDelivered, models.OrderPending, false},
		{models.OrderDelivered, models.OrderShipped, false},
		{models.OrderCancelled, models.OrderPending, false},
		{models.OrderCancelled, models.OrderProcessing, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, models.OrderDelivered.Terminal())
	assert.True(t, models.OrderCancelled.Terminal())
	assert.False(t, models.OrderPending.Terminal())
	assert.False(t, models.OrderProcessing.Terminal())
	assert.False(t, models.OrderShipped.Terminal())
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, models.OrderPending.Valid())
	assert.True(t, models.OrderCancelled.Valid())
	assert.False(t, models.OrderStatus("refunded").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}
