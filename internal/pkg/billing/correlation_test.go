package billing

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeCorrelation(t *testing.T) {
	token := EncodeCorrelation(OperationUpgrade, 42, 7)
	if !strings.HasPrefix(token, "upgrade_42_7_") {
		t.Fatalf("unexpected token %q", token)
	}

	corr, err := DecodeCorrelation(token)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if !corr.Known {
		t.Fatalf("expected known correlation")
	}
	if corr.Operation != OperationUpgrade || corr.UserID != 42 || corr.PlanID != 7 {
		t.Fatalf("roundtrip mismatch: %+v", corr)
	}
	if time.Since(corr.Timestamp) > time.Minute {
		t.Fatalf("timestamp not taken at encode time: %v", corr.Timestamp)
	}
}

func TestDecodeCorrelationEmptyIsUnknownSentinel(t *testing.T) {
	for _, ref := range []string{"", "   ", "null", "NULL"} {
		corr, err := DecodeCorrelation(ref)
		if err != nil {
			t.Fatalf("DecodeCorrelation(%q) returned error: %v", ref, err)
		}
		if corr.Known {
			t.Fatalf("DecodeCorrelation(%q) expected unknown sentinel", ref)
		}
	}
}

func TestDecodeCorrelationMalformed(t *testing.T) {
	tests := []string{
		"new_1_2",                 // missing timestamp
		"new_1_2_3_4",             // too many segments
		"refund_1_2_1700000000",   // operation outside the closed enum
		"new_zero_2_1700000000",   // non-numeric user id
		"new_0_2_1700000000",      // zero user id
		"new_1_0_1700000000",      // zero plan id
		"new_1_2_notatime",        // non-numeric timestamp
		"legacy-token-from-v1",    // free-form legacy reference
	}

	for _, ref := range tests {
		if _, err := DecodeCorrelation(ref); !errors.Is(err, ErrMalformedCorrelation) {
			t.Fatalf("DecodeCorrelation(%q) = %v, want ErrMalformedCorrelation", ref, err)
		}
	}
}

func TestParseOperationType(t *testing.T) {
	for _, valid := range []string{"new", "renewal", "upgrade", "downgrade", "cancellation", " New "} {
		if _, ok := ParseOperationType(valid); !ok {
			t.Fatalf("expected %q to parse", valid)
		}
	}
	for _, invalid := range []string{"", "refund", "trial"} {
		if _, ok := ParseOperationType(invalid); ok {
			t.Fatalf("expected %q to be rejected", invalid)
		}
	}
}
