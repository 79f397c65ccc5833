package domain

import "strings"

// Role is the single field that separates admins from regular users.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// Payment status labels written by the payment workflow.
const (
	PaymentPending = "Pending"
	PaymentSuccess = "success"

	PaymentMethodGateway = "SSLCommerz"
)
