package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// TransitionRejectedError is returned when a booking action is not allowed
// from the booking's current status.
type TransitionRejectedError struct {
	From   BookingStatus
	Action BookingAction
}

func (e TransitionRejectedError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Action, e.From)
}

// InvalidPaymentError means the gateway did not vouch for the transaction.
type InvalidPaymentError struct {
	TransactionID string
	Status        string
}

func (e InvalidPaymentError) Error() string {
	return fmt.Sprintf("invalid payment %s (gateway status %q)", e.TransactionID, e.Status)
}

type GatewayErrorKind string

const (
	GatewayUnreachable      GatewayErrorKind = "gateway_unreachable"
	GatewayInitiationFailed GatewayErrorKind = "gateway_initiation_failed"
)

type GatewayError struct {
	Kind GatewayErrorKind
	Err  error
}

func (e GatewayError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e GatewayError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsTransitionRejected(err error) bool {
	var target TransitionRejectedError
	return errors.As(err, &target)
}

func IsInvalidPayment(err error) bool {
	var target InvalidPaymentError
	return errors.As(err, &target)
}

func IsGateway(err error) bool {
	var target GatewayError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
