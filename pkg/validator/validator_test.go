package validator

import (
	"context"
	"strings"
	"testing"
)

type sponsorForm struct {
	Name     string `validate:"required"`
	Category string `validate:"required,sponsortier"`
	Website  string `validate:"omitempty,url"`
}

type announcementForm struct {
	Title         string `validate:"required"`
	PriorityLabel string `validate:"omitempty,prioritylabel"`
}

func TestValidateSponsorTier(t *testing.T) {
	ctx := context.Background()

	for _, tier := range []string{"Title", "Gold", "Silver", "Supporter"} {
		if err := Validate(ctx, sponsorForm{Name: "x", Category: tier}); err != nil {
			t.Fatalf("tier %q rejected: %v", tier, err)
		}
	}

	err := Validate(ctx, sponsorForm{Name: "x", Category: "Platinum"})
	if err == nil {
		t.Fatalf("unknown tier accepted")
	}
	if !strings.Contains(err.Error(), "Title, Gold, Silver or Supporter") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidatePriorityLabel(t *testing.T) {
	ctx := context.Background()

	for _, label := range []string{"high", "medium", "low", ""} {
		if err := Validate(ctx, announcementForm{Title: "x", PriorityLabel: label}); err != nil {
			t.Fatalf("label %q rejected: %v", label, err)
		}
	}
	if err := Validate(ctx, announcementForm{Title: "x", PriorityLabel: "urgent"}); err == nil {
		t.Fatalf("unknown label accepted")
	}
}

func TestValidateRequired(t *testing.T) {
	err := Validate(context.Background(), sponsorForm{Category: "Gold"})
	if err == nil {
		t.Fatalf("missing name accepted")
	}
	if !strings.Contains(err.Error(), ErrFieldRequired) {
		t.Fatalf("unexpected message: %v", err)
	}
}
