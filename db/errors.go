package db

import (
	"errors"

	"fyyur/entities"

	"github.com/lib/pq"
)

const (
	postgresForeignKeyViolationErrorCode = "23503"
)

func foreignKeyViolation(err error) (constraint string, ok bool) {
	var psqlErr *pq.Error
	if errors.As(err, &psqlErr) && psqlErr.Code == postgresForeignKeyViolationErrorCode {
		return psqlErr.Constraint, true
	}
	return "", false
}

// persistenceError keeps domain errors raised inside a transaction as they
// are and wraps everything else.
func persistenceError(op string, err error) error {
	var (
		notFound   *entities.NotFoundError
		validation *entities.ValidationError
		conflict   *entities.ConflictError
	)
	if errors.As(err, &notFound) || errors.As(err, &validation) || errors.As(err, &conflict) {
		return err
	}

	return &entities.PersistenceError{Op: op, Err: err}
}
