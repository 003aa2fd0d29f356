package period

import (
	"errors"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
)

// MaxSpanDays is the largest inclusive range a single report may cover.
const MaxSpanDays = 365

// Validation codes, one per distinct failure.
const (
	CodeMissingPeriod = "missing_period"
	CodeInvalidMonth  = "invalid_month"
	CodeReversedRange = "reversed_range"
	CodeSpanTooLarge  = "span_too_large"
	CodeFutureStart   = "future_start"
)

// ValidationError is an input error with a user-facing reason. The reason
// is surfaced inline to the user as-is; no retry applies.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err is an input error and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var (
	errMissingMonth = &ValidationError{
		Code:   CodeMissingPeriod,
		Reason: "select a month before generating the report",
	}
	errMissingAnchor = &ValidationError{
		Code:   CodeMissingPeriod,
		Reason: "select a date before generating the report",
	}
	errMissingEndpoints = &ValidationError{
		Code:   CodeMissingPeriod,
		Reason: "select both a start date and an end date before generating the report",
	}
)

// Validate enforces the range invariants in order, short-circuiting on the
// first failure: endpoints present, start <= end, span <= MaxSpanDays,
// start not in the future.
func Validate(rng domain.DateRange, now time.Time) error {
	if rng.Start.IsZero() || rng.End.IsZero() {
		return errMissingEndpoints
	}
	if rng.Start.After(rng.End) {
		return &ValidationError{
			Code:   CodeReversedRange,
			Reason: "the start date must be on or before the end date",
		}
	}
	if spanDays(rng) > MaxSpanDays {
		return &ValidationError{
			Code:   CodeSpanTooLarge,
			Reason: "the selected period cannot span more than 365 days",
		}
	}
	if rng.Start.After(now) {
		return &ValidationError{
			Code:   CodeFutureStart,
			Reason: "the start date cannot be in the future",
		}
	}
	return nil
}

// spanDays counts whole calendar days from the start day to the end day,
// so a single-day range spans 0 and exactly-365 is still accepted.
func spanDays(rng domain.DateRange) int {
	return int(StartOfDay(rng.End).Sub(StartOfDay(rng.Start)) / (24 * time.Hour))
}
