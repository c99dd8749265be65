package grpcmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
)

func TestCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"product not found", domain.ErrProductNotFound, codes.NotFound},
		{"component not found", domain.ErrComponentNotFound, codes.NotFound},
		{"self reference", domain.ErrSelfReference, codes.InvalidArgument},
		{"invalid quantity", domain.ErrInvalidQuantity, codes.InvalidArgument},
		{"negative cost", domain.ErrNegativeCost, codes.InvalidArgument},
		{"cycle detected", domain.ErrCycleDetected, codes.FailedPrecondition},
		{"leaf cannot own components", domain.ErrInvalidProductType, codes.FailedPrecondition},
		{"max depth exceeded", domain.ErrMaxDepthExceeded, codes.FailedPrecondition},
		{"archived product", domain.ErrCannotModifyArchived, codes.FailedPrecondition},
		{"unknown error", assert.AnError, codes.Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Code(tc.err))
		})
	}

	t.Run("sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("add component: %w", domain.ErrCycleDetected)
		assert.Equal(t, codes.FailedPrecondition, Code(wrapped))
	})
}

func TestError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, Error(nil))
	})

	t.Run("carries the domain message", func(t *testing.T) {
		st, ok := status.FromError(Error(domain.ErrProductNotFound))
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
		assert.Equal(t, domain.ErrProductNotFound.Error(), st.Message())
	})

	t.Run("unwraps before rendering the message", func(t *testing.T) {
		wrapped := fmt.Errorf("get product: %w", domain.ErrProductNotFound)
		st, ok := status.FromError(Error(wrapped))
		require.True(t, ok)
		assert.Equal(t, domain.ErrProductNotFound.Error(), st.Message())
	})

	t.Run("internal errors get a generic message", func(t *testing.T) {
		st, ok := status.FromError(Error(assert.AnError))
		require.True(t, ok)
		assert.Equal(t, codes.Internal, st.Code())
		assert.Equal(t, "internal server error", st.Message())
	})
}
