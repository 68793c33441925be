package dto

import (
	"context"
	"strings"
	"testing"

	"aadhrita/pkg/validator"
)

func TestAboutRequestLengthLimits(t *testing.T) {
	ctx := context.Background()

	ok := AboutRequest{About: "A fest.", Mission: "Build.", Stat1: "50+ events"}
	if err := validator.Validate(ctx, ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	long := AboutRequest{Stat1: strings.Repeat("x", 256)}
	if err := validator.Validate(ctx, long); err == nil {
		t.Fatalf("over-long stat accepted")
	}
	if err := validator.Validate(ctx, AboutRequest{About: strings.Repeat("x", 4001)}); err == nil {
		t.Fatalf("over-long about accepted")
	}
}

func TestPriorityLabelRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		label    string
		priority int
	}{
		{"high", 3},
		{"medium", 2},
		{"low", 1},
	} {
		if got := PriorityFromLabel(tc.label); got != tc.priority {
			t.Fatalf("PriorityFromLabel(%q) = %d, want %d", tc.label, got, tc.priority)
		}
		if got := PriorityToLabel(tc.priority); got != tc.label {
			t.Fatalf("PriorityToLabel(%d) = %q, want %q", tc.priority, got, tc.label)
		}
	}
	if got := PriorityFromLabel("urgent"); got != 2 {
		t.Fatalf("unknown label must map to medium, got %d", got)
	}
}
