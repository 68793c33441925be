package imageurl

import (
	"strings"
	"testing"
)

func TestNormalizePassthrough(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"https://example.com/poster.png", "https://example.com/poster.png"},
		{"  https://example.com/poster.png  ", "https://example.com/poster.png"},
		{"not a url at all", "not a url at all"},
		{"https://images.unsplash.com/photo-123?w=800", "https://images.unsplash.com/photo-123?w=800"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDriveForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		id   string
	}{
		{"file path", "https://drive.google.com/file/d/ABC123/view", "ABC123"},
		{"file path no view", "https://drive.google.com/file/d/ABC123", "ABC123"},
		{"open query", "https://drive.google.com/open?id=XYZ789", "XYZ789"},
		{"uc query", "https://docs.google.com/uc?export=view&id=QQ11", "QQ11"},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		want := "https://drive.google.com/thumbnail?id=" + tt.id + "&sz=w1000"
		if got != want {
			t.Fatalf("%s: Normalize(%q) = %q, want %q", tt.name, tt.in, got, want)
		}
	}
}

func TestNormalizePathFormWinsOverQuery(t *testing.T) {
	got := Normalize("https://drive.google.com/file/d/PATHID/view?id=QUERYID")
	if !strings.Contains(got, "PATHID") || strings.Contains(got, "QUERYID") {
		t.Fatalf("expected path ID to win, got %q", got)
	}
}

func TestNormalizeDriveWithoutID(t *testing.T) {
	in := "https://drive.google.com/drive/folders/somefolder"
	if got := Normalize(in); got != in {
		t.Fatalf("Normalize(%q) = %q, want passthrough", in, got)
	}
}

func TestNormalizeWidth(t *testing.T) {
	got := NormalizeWidth("https://drive.google.com/file/d/A1/view", 400)
	if got != "https://drive.google.com/thumbnail?id=A1&sz=w400" {
		t.Fatalf("got %q", got)
	}
	// Non-positive width falls back to the default.
	got = NormalizeWidth("https://drive.google.com/file/d/A1/view", 0)
	if !strings.Contains(got, "sz=w1000") {
		t.Fatalf("got %q", got)
	}
}

func TestFallback(t *testing.T) {
	for _, c := range []Category{CategoryEvent, CategorySponsor, CategoryTeam, CategoryGallery, CategoryLogo} {
		if Fallback(c) == "" {
			t.Fatalf("empty fallback for %q", c)
		}
	}
	if Fallback("bogus") != Fallback(CategoryEvent) {
		t.Fatalf("unknown category must map to event fallback")
	}
	if Fallback(CategoryLogo) != "/placeholder.svg" {
		t.Fatalf("logo fallback must be the local asset")
	}
}

func TestImageOnErrorAppliesFallbackOnce(t *testing.T) {
	im := NewImage("https://example.com/broken.jpg", CategoryGallery)

	if !im.OnError() {
		t.Fatalf("first failure must rewrite the source")
	}
	if im.Src != Fallback(CategoryGallery) {
		t.Fatalf("src = %q, want gallery fallback", im.Src)
	}

	// Simulate the fallback URL itself failing: must be a no-op.
	im.Src = "mutated-by-caller"
	if im.OnError() {
		t.Fatalf("second failure must be a no-op")
	}
	if im.Src != "mutated-by-caller" {
		t.Fatalf("second failure rewrote the source")
	}
	if !im.FallbackApplied() {
		t.Fatalf("fallbackApplied flag lost")
	}
}

func TestResolve(t *testing.T) {
	src, fb := Resolve("https://drive.google.com/file/d/ABC123/view", CategorySponsor)
	if !strings.Contains(src, "ABC123") {
		t.Fatalf("src = %q, want thumbnail URL with file ID", src)
	}
	if fb != Fallback(CategorySponsor) {
		t.Fatalf("fallback mismatch")
	}
}
