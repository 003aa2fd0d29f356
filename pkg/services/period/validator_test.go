package period

import (
	"testing"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsWellFormedRange(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, Zone())
	rng := domain.DateRange{
		Start: time.Date(2025, 8, 1, 0, 0, 0, 0, Zone()),
		End:   EndOfDay(time.Date(2025, 8, 28, 0, 0, 0, 0, Zone())),
	}

	assert.NoError(t, Validate(rng, now))
}

func TestValidate_RejectsMissingEndpoints(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, Zone())

	err := Validate(domain.DateRange{End: now}, now)

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeMissingPeriod, ve.Code)
}

func TestValidate_RejectsReversedRange(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, Zone())
	rng := domain.DateRange{
		Start: time.Date(2025, 8, 20, 0, 0, 0, 0, Zone()),
		End:   time.Date(2025, 8, 10, 0, 0, 0, 0, Zone()),
	}

	err := Validate(rng, now)

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeReversedRange, ve.Code)
}

func TestValidate_SpanBoundary(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, Zone())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, Zone())

	t.Run("exactly 365 days is accepted", func(t *testing.T) {
		rng := domain.DateRange{Start: start, End: EndOfDay(start.AddDate(0, 0, 365))}
		assert.NoError(t, Validate(rng, now))
	})

	t.Run("366 days is rejected", func(t *testing.T) {
		rng := domain.DateRange{Start: start, End: EndOfDay(start.AddDate(0, 0, 366))}

		err := Validate(rng, now)

		ve, ok := IsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, CodeSpanTooLarge, ve.Code)
	})
}

func TestValidate_RejectsFutureStart(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, Zone())
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, Zone())
	rng := domain.DateRange{Start: start, End: EndOfDay(start)}

	err := Validate(rng, now)

	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, CodeFutureStart, ve.Code)
	assert.Equal(t, "the start date cannot be in the future", ve.Reason)
}

func TestValidate_ChecksRunInOrder(t *testing.T) {
	// A range that is both reversed and in the future reports the
	// ordering failure first.
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, Zone())
	rng := domain.DateRange{
		Start: time.Date(2026, 3, 2, 0, 0, 0, 0, Zone()),
		End:   time.Date(2026, 3, 1, 0, 0, 0, 0, Zone()),
	}

	ve, ok := IsValidationError(Validate(rng, now))
	require.True(t, ok)
	assert.Equal(t, CodeReversedRange, ve.Code)
}
