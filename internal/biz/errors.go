package biz

import (
	stderrors "errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

// Error reasons carried by the domain errors.
const (
	ReasonValidation       = "VALIDATION_FAILED"
	ReasonConflict         = "CONFLICT"
	ReasonNotFound         = "NOT_FOUND"
	ReasonReferenceMissing = "REFERENCE_MISSING"
)

// Sentinel errors. Kratos errors compare by code and reason, so
// errors.Is(err, ErrNotFound) holds for every not-found error whatever its
// message.
var (
	ErrValidation       = errors.New(422, ReasonValidation, "validation failed")
	ErrConflict         = errors.Conflict(ReasonConflict, "entity already exists")
	ErrNotFound         = errors.NotFound(ReasonNotFound, "entity not found")
	ErrReferenceMissing = errors.NotFound(ReasonReferenceMissing, "referenced entity not found")

	ErrRankingUnavailable = stderrors.New("ranking store unavailable")
)

func validationError(format string, a ...interface{}) error {
	return errors.New(422, ReasonValidation, fmt.Sprintf(format, a...))
}

func conflictError(format string, a ...interface{}) error {
	return errors.Conflict(ReasonConflict, fmt.Sprintf(format, a...))
}

func notFoundError(format string, a ...interface{}) error {
	return errors.NotFound(ReasonNotFound, fmt.Sprintf(format, a...))
}

func referenceMissingError(format string, a ...interface{}) error {
	return errors.NotFound(ReasonReferenceMissing, fmt.Sprintf(format, a...))
}
