// Package grpcmap translates domain errors into gRPC status codes. The HTTP
// transport derives its response codes from this table, and an RPC surface
// can reuse it unchanged.
package grpcmap

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

// Code returns the gRPC code for a domain error. Errors outside the domain
// taxonomy map to Internal.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK

	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrComponentNotFound):
		return codes.NotFound

	case errors.Is(err, domain.ErrSelfReference),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyCode),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrUnknownType),
		errors.Is(err, domain.ErrUnknownPriceMode),
		errors.Is(err, domain.ErrNegativeCost),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrNegativeWeight):
		return codes.InvalidArgument

	case errors.Is(err, domain.ErrCycleDetected),
		errors.Is(err, domain.ErrInvalidProductType),
		errors.Is(err, domain.ErrMaxDepthExceeded),
		errors.Is(err, domain.ErrAlreadyArchived),
		errors.Is(err, domain.ErrCannotModifyArchived),
		errors.Is(err, domain.ErrProductInactive):
		return codes.FailedPrecondition

	default:
		return codes.Internal
	}
}

// Error converts a domain error to a gRPC status error. Internal errors get
// a generic message so callers never see storage details.
func Error(err error) error {
	if err == nil {
		return nil
	}
	code := Code(err)
	if code == codes.Internal {
		return status.Error(codes.Internal, "internal server error")
	}
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		err = unwrapped
	}
	return status.Error(code, err.Error())
}
