package postgres

import (
	"strings"

	domainerrors "grainauth/internal/domain/errors"
	"grainauth/internal/errors"

	"gorm.io/gorm"
)

// translateError maps a GORM error onto the domain taxonomy. Callers pass the
// NotFound and duplicate-key variants relevant to the table they touched.
func translateError(err error, notFound, duplicate *domainerrors.BaseError, details string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound.WithDetails(details)
	case isUniqueConstraintViolation(err) && duplicate != nil:
		return duplicate.WithCause(err)
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrReferentialIntegrity.WithDetails(details).WithCause(err)
	case isCheckConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails(details).WithCause(err)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value in column") ||
		strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
