package http

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/light-bringer/bom-service/internal/transport/grpcmap"
)

// statusForError maps domain errors to HTTP status codes via the shared
// gRPC code table. Unknown errors surface as 500 without leaking internals.
func statusForError(err error) int {
	switch grpcmap.Code(err) {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.FailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage keeps 500 responses generic and passes every other domain
// error text through.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		err = unwrapped
	}
	return err.Error()
}
