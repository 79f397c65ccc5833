package domain

import "strings"

// BookingStatus is the closed set of labels a booking can carry.
type BookingStatus string

const (
	StatusPending               BookingStatus = "Pending"
	StatusConfirmed             BookingStatus = "Confirmed"
	StatusCancelled             BookingStatus = "Cancelled"
	StatusCancellationRequested BookingStatus = "Cancellation Requested"
	StatusCancelledWithRefund   BookingStatus = "Cancelled with Refund"
)

// ParseBookingStatus maps a stored label onto the closed set. Matching is
// case-insensitive so legacy "confirmed" rows read as StatusConfirmed; an
// empty label is a freshly created booking.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPending, true
	}
	for _, st := range []BookingStatus{
		StatusPending,
		StatusConfirmed,
		StatusCancelled,
		StatusCancellationRequested,
		StatusCancelledWithRefund,
	} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Terminal reports whether no further action is expected on the booking.
func (s BookingStatus) Terminal() bool {
	return s == StatusCancelled || s == StatusCancelledWithRefund
}

type BookingAction string

const (
	ActionCancel              BookingAction = "cancel"
	ActionApprove             BookingAction = "approve"
	ActionApproveCancellation BookingAction = "approve_cancellation"
	ActionConfirm             BookingAction = "confirm"
	ActionRequestCancellation BookingAction = "request_cancellation"
	ActionDenyCancellation    BookingAction = "deny_cancellation"
	ActionPaymentConfirmed    BookingAction = "payment_confirmed"
)

var actionTargets = map[BookingAction]BookingStatus{
	ActionCancel:              StatusCancelled,
	ActionApprove:             StatusConfirmed,
	ActionApproveCancellation: StatusCancelledWithRefund,
	ActionConfirm:             StatusConfirmed,
	ActionRequestCancellation: StatusCancellationRequested,
	ActionDenyCancellation:    StatusConfirmed,
	ActionPaymentConfirmed:    StatusConfirmed,
}

// TransitionPolicy decides how strictly actions are checked against the
// current status.
type TransitionPolicy int

const (
	// PolicyPermissive accepts every action from every status.
	PolicyPermissive TransitionPolicy = iota
	// PolicyStrict only accepts the edges in strictEdges.
	PolicyStrict
)

var strictEdges = map[BookingStatus]map[BookingAction]bool{
	StatusPending: {
		ActionApprove:             true,
		ActionConfirm:             true,
		ActionPaymentConfirmed:    true,
		ActionCancel:              true,
		ActionRequestCancellation: true,
	},
	StatusConfirmed: {
		ActionApprove:             true,
		ActionConfirm:             true,
		ActionPaymentConfirmed:    true,
		ActionCancel:              true,
		ActionRequestCancellation: true,
	},
	StatusCancellationRequested: {
		ActionDenyCancellation:    true,
		ActionApproveCancellation: true,
	},
}

// Transition returns the status a booking moves to when action is applied
// in status current.
func Transition(policy TransitionPolicy, current BookingStatus, action BookingAction) (BookingStatus, error) {
	next, ok := actionTargets[action]
	if !ok {
		return "", ValidationError{Field: "action", Msg: "unknown booking action " + string(action)}
	}
	if policy == PolicyStrict && !strictEdges[current][action] {
		return "", TransitionRejectedError{From: current, Action: action}
	}
	return next, nil
}
