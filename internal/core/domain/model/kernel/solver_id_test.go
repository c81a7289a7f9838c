package kernel_test

import (
	"testing"

	"solverdesk/internal/core/domain/model/kernel"
	"solverdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolverID(t *testing.T) {
	t.Run("should accept positive ids", func(t *testing.T) {
		id, err := kernel.NewSolverID(2)

		require.NoError(t, err)
		assert.Equal(t, 2, id.Int())
		assert.Equal(t, "2", id.String())
	})

	t.Run("should reject zero and negative ids", func(t *testing.T) {
		for _, n := range []int{0, -1, -42} {
			_, err := kernel.NewSolverID(n)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, "id %d", n)
		}
	})
}

func TestSolverIDFromString(t *testing.T) {
	id, err := kernel.SolverIDFromString("7")
	require.NoError(t, err)
	assert.Equal(t, kernel.SolverID(7), id)

	_, err = kernel.SolverIDFromString("seven")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), `"seven" is not a number`)

	_, err = kernel.SolverIDFromString("0")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
