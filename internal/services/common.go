package services

import (
	"database/sql"
	"errors"
	"strings"

	"tourtravel/internal/domain"
)

// storeErr translates a repository error: missing rows become NotFound for
// resource, everything else is an internal store failure.
func storeErr(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return domain.InternalError{Msg: "database error", Err: err}
}

// affected turns a zero-row update/delete into NotFound.
func affected(n int64, err error, resource string) error {
	if err != nil {
		return domain.InternalError{Msg: "database error", Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

// fieldCheck pairs a request field name with whether it was supplied.
type fieldCheck struct {
	name string
	ok   bool
}

func requireFields(checks ...fieldCheck) error {
	missing := []string{}
	for _, c := range checks {
		if !c.ok {
			missing = append(missing, c.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return domain.ValidationError{
		Field: strings.Join(missing, ", "),
		Msg:   "all fields are required",
	}
}

func present(s string) bool { return strings.TrimSpace(s) != "" }
