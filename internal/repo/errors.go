package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

var (
	// ErrDuplicateName is matched by errors.Is when a write collides with an
	// existing product name.
	ErrDuplicateName = errors.New(`duplicate key value violates unique constraint "products_name_key"`)
	// ErrMissingField is matched by errors.Is when a required column is null.
	ErrMissingField = errors.New("not-null constraint violated")
)

// storeError keeps the driver's message while matching a repo sentinel.
type storeError struct {
	kind error
	err  error
}

func (e *storeError) Error() string        { return e.err.Error() }
func (e *storeError) Unwrap() error        { return e.err }
func (e *storeError) Is(target error) bool { return target == e.kind }

// classify maps Postgres constraint failures onto the repo sentinels.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return &storeError{kind: ErrDuplicateName, err: err}
	case pgNotNullViolation:
		return &storeError{kind: ErrMissingField, err: err}
	}
	return err
}

func notNullError(column string) error {
	return &storeError{
		kind: ErrMissingField,
		err:  fmt.Errorf(`null value in column "%s" of relation "products" violates not-null constraint`, column),
	}
}
