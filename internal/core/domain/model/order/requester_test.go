package order_test

import (
	"testing"
	"time"

	"solverdesk/internal/core/domain/model/order"
	"solverdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequester(t *testing.T) {
	t.Run("should trim fields", func(t *testing.T) {
		r, err := order.NewRequester("  Ann ", "\tPhysics", " Lab report\n", " 555 010 9999 ")

		require.NoError(t, err)
		assert.Equal(t, "Ann", r.StudentName())
		assert.Equal(t, "Physics", r.Subject())
		assert.Equal(t, "Lab report", r.Description())
		assert.Equal(t, "555 010 9999", r.Phone().String())
	})

	t.Run("should report empty subject as missing field", func(t *testing.T) {
		_, err := order.NewRequester("Ann", "", "Lab report", "5550109999")

		require.ErrorIs(t, err, order.ErrMissingField)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "subject")
	})

	t.Run("should report whitespace-only fields as missing", func(t *testing.T) {
		_, err := order.NewRequester("   ", "Physics", "\t", "5550109999")

		require.ErrorIs(t, err, order.ErrMissingField)
		assert.Contains(t, err.Error(), "student name")
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("should report blank phone as missing field", func(t *testing.T) {
		_, err := order.NewRequester("Ann", "Physics", "Lab", "  ")

		require.ErrorIs(t, err, order.ErrMissingField)
		require.NotErrorIs(t, err, order.ErrInvalidPhone)
	})

	t.Run("should report five digit phone as invalid phone", func(t *testing.T) {
		_, err := order.NewRequester("Ann", "Physics", "Lab", "12345")

		require.ErrorIs(t, err, order.ErrInvalidPhone)
		require.NotErrorIs(t, err, order.ErrMissingField)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		require.ErrorIs(t, order.Requester{}.Validate(), order.ErrMissingField)
	})
}

func TestParseDeadline(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	t.Run("should accept supported layouts", func(t *testing.T) {
		cases := map[string]time.Time{
			"2026-10-20T18:30:00Z":      time.Date(2026, 10, 20, 18, 30, 0, 0, time.UTC),
			"2026-10-20T18:30:00+03:00": time.Date(2026, 10, 20, 15, 30, 0, 0, time.UTC),
			"2026-10-20T18:30":          time.Date(2026, 10, 20, 18, 30, 0, 0, loc),
			"2026-10-20 18:30":          time.Date(2026, 10, 20, 18, 30, 0, 0, loc),
			"2026-10-20":                time.Date(2026, 10, 20, 0, 0, 0, 0, loc),
		}

		for raw, want := range cases {
			got, err := order.ParseDeadline(raw, loc)

			require.NoError(t, err, raw)
			assert.True(t, want.Equal(got), "%s: want %s got %s", raw, want, got)
		}
	})

	t.Run("should default to UTC without location", func(t *testing.T) {
		got, err := order.ParseDeadline("2026-10-20T18:30", nil)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("should reject garbage as invalid deadline", func(t *testing.T) {
		for _, raw := range []string{"tomorrow", "2026-13-40", "20/10/2026"} {
			_, err := order.ParseDeadline(raw, loc)

			require.ErrorIs(t, err, order.ErrInvalidDeadline, raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})

	t.Run("should report blank deadline as missing field", func(t *testing.T) {
		_, err := order.ParseDeadline("  ", loc)

		require.ErrorIs(t, err, order.ErrMissingField)
	})
}
