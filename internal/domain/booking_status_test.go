package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	cases := map[string]BookingStatus{
		"":                       StatusPending,
		"confirmed":              StatusConfirmed,
		"Confirmed":              StatusConfirmed,
		" Cancelled ":            StatusCancelled,
		"cancellation requested": StatusCancellationRequested,
		"Cancelled with Refund":  StatusCancelledWithRefund,
	}
	for in, want := range cases {
		got, ok := ParseBookingStatus(in)
		require.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseBookingStatus("shipped")
	assert.False(t, ok)
}

func TestTransitionPermissiveAcceptsEverything(t *testing.T) {
	next, err := Transition(PolicyPermissive, StatusCancelled, ActionDenyCancellation)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, next)

	next, err = Transition(PolicyPermissive, StatusCancelledWithRefund, ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, next)
}

func TestTransitionConfirmIsCanonical(t *testing.T) {
	for _, a := range []BookingAction{ActionApprove, ActionConfirm, ActionPaymentConfirmed, ActionDenyCancellation} {
		next, err := Transition(PolicyPermissive, StatusPending, a)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, next, a)
	}
}

func TestTransitionStrict(t *testing.T) {
	next, err := Transition(PolicyStrict, StatusPending, ActionRequestCancellation)
	require.NoError(t, err)
	assert.Equal(t, StatusCancellationRequested, next)

	next, err = Transition(PolicyStrict, StatusCancellationRequested, ActionApproveCancellation)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelledWithRefund, next)

	_, err = Transition(PolicyStrict, StatusCancelled, ActionDenyCancellation)
	assert.True(t, IsTransitionRejected(err))

	_, err = Transition(PolicyStrict, StatusConfirmed, ActionApproveCancellation)
	assert.True(t, IsTransitionRejected(err))

	_, err = Transition(PolicyStrict, StatusCancelledWithRefund, ActionPaymentConfirmed)
	assert.True(t, IsTransitionRejected(err))
}

func TestTransitionUnknownAction(t *testing.T) {
	_, err := Transition(PolicyPermissive, StatusPending, BookingAction("teleport"))
	assert.True(t, IsValidation(err))
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCancelledWithRefund.Terminal())
	assert.False(t, StatusCancellationRequested.Terminal())
}
