package billing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The correlation token is the opaque "external reference" embedded in every
// checkout link and echoed back by the provider in the resulting webhooks.
// Format: {operationType}_{userID}_{planID}_{timestampMillis}. The timestamp
// makes tokens unique within the process clock resolution and lets us detect
// legacy or foreign references instead of silently mis-parsing them.

// ErrMalformedCorrelation indicates a non-empty reference that does not match
// the token schema. Callers must not guess; they fall back to email lookup
// plus heuristic classification.
var ErrMalformedCorrelation = errors.New("malformed correlation reference")

// Correlation is the decoded operation descriptor. Known is false for the
// sentinel result produced when the provider dropped the reference.
type Correlation struct {
	Operation OperationType
	UserID    uint
	PlanID    uint
	Timestamp time.Time
	Known     bool
}

// EncodeCorrelation builds the token for a checkout link. The timestamp is
// taken at call time.
func EncodeCorrelation(op OperationType, userID, planID uint) string {
	return encodeCorrelationAt(op, userID, planID, time.Now())
}

func encodeCorrelationAt(op OperationType, userID, planID uint, at time.Time) string {
	return fmt.Sprintf("%s_%d_%d_%d", op, userID, planID, at.UnixMilli())
}

// DecodeCorrelation parses a provider-echoed external reference. An empty or
// absent reference yields the unknown sentinel with a nil error; a non-empty
// reference that fails the schema check yields ErrMalformedCorrelation.
func DecodeCorrelation(ref string) (Correlation, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.EqualFold(ref, "null") {
		return Correlation{}, nil
	}

	parts := strings.Split(ref, "_")
	if len(parts) != 4 {
		return Correlation{}, fmt.Errorf("%w: expected 4 segments, got %d", ErrMalformedCorrelation, len(parts))
	}

	op, ok := ParseOperationType(parts[0])
	if !ok {
		return Correlation{}, fmt.Errorf("%w: unknown operation %q", ErrMalformedCorrelation, parts[0])
	}

	userID, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || userID == 0 {
		return Correlation{}, fmt.Errorf("%w: bad user id %q", ErrMalformedCorrelation, parts[1])
	}
	planID, err := strconv.ParseUint(parts[2], 10, 32)
	if err != nil || planID == 0 {
		return Correlation{}, fmt.Errorf("%w: bad plan id %q", ErrMalformedCorrelation, parts[2])
	}
	millis, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || millis <= 0 {
		return Correlation{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedCorrelation, parts[3])
	}

	return Correlation{
		Operation: op,
		UserID:    uint(userID),
		PlanID:    uint(planID),
		Timestamp: time.UnixMilli(millis),
		Known:     true,
	}, nil
}
