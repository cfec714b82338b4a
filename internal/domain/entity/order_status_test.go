package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{name: "payment pending to confirmed", from: StatusPaymentPending, to: StatusPaymentConfirmed, allowed: true},
		{name: "print ready to shipped", from: StatusPrintReady, to: StatusShipped, allowed: true},
		{name: "shipped to delivered", from: StatusShipped, to: StatusDelivered, allowed: true},
		{name: "cancel request resolves", from: StatusCancelRequest, to: StatusCancelled, allowed: true},
		{name: "cancel request rejected back to processing", from: StatusCancelRequest, to: StatusProcessing, allowed: true},
		{name: "delivered cannot go back to draft", from: StatusDelivered, to: StatusDraft, allowed: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusDraft, allowed: false},
		{name: "refund success is terminal", from: StatusRefundSuccess, to: StatusProcessing, allowed: false},
		{name: "no self transition", from: StatusShipped, to: StatusShipped, allowed: false},
		{name: "draft cannot skip to delivered", from: StatusDraft, to: StatusDelivered, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_TransitionTargetsAreValid(t *testing.T) {
	for _, from := range AllOrderStatuses {
		for _, to := range from.Transitions() {
			assert.True(t, to.IsValid(), "transition %s -> %s names an unknown status", from, to)
			assert.NotEqual(t, from, to, "self transition on %s", from)
		}
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRefundSuccess.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusDelivered.IsTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("Transferred to delivery partner")
	assert.True(t, ok)
	assert.Equal(t, StatusTransferred, s)

	_, ok = ParseOrderStatus("Teleported")
	assert.False(t, ok)
}
