// Package imageurl converts the image links stored by admins (often Google
// Drive sharing URLs) into directly fetchable sources and provides the
// per-category placeholder fallbacks used when a link is missing or dead.
package imageurl

import (
	"fmt"
	"regexp"
	"strings"
)

const DefaultThumbnailWidth = 1000

var defaultWidth = DefaultThumbnailWidth

// SetDefaultWidth overrides the thumbnail width used by Normalize. Values
// below 1 are ignored. Call once at startup, before serving requests.
func SetDefaultWidth(width int) {
	if width > 0 {
		defaultWidth = width
	}
}

type Category string

const (
	CategoryEvent   Category = "event"
	CategorySponsor Category = "sponsor"
	CategoryTeam    Category = "team"
	CategoryGallery Category = "gallery"
	CategoryLogo    Category = "logo"
)

var (
	filePathRe = regexp.MustCompile(`/file/d/([^/]+)`)
	queryIDRe  = regexp.MustCompile(`[?&]id=([^&]+)`)
)

var fallbacks = map[Category]string{
	CategoryEvent:   "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800&q=80",
	CategorySponsor: "https://images.unsplash.com/photo-1560179707-f14e90ef3623?w=400&q=80",
	CategoryTeam:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&q=80",
	CategoryGallery: "https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=800&q=80",
	CategoryLogo:    "/placeholder.svg",
}

func isDriveURL(u string) bool {
	return strings.Contains(u, "drive.google.com") || strings.Contains(u, "docs.google.com")
}

// Normalize turns a stored image reference into a URL usable as an image
// source. Empty input yields "", non-Drive URLs pass through trimmed, and
// Drive sharing links are rewritten to the thumbnail endpoint. A Drive URL
// with no recognizable file ID passes through unchanged.
func Normalize(raw string) string {
	return NormalizeWidth(raw, defaultWidth)
}

// NormalizeWidth is Normalize with an explicit thumbnail width.
func NormalizeWidth(raw string, width int) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return ""
	}
	if !isDriveURL(u) {
		return u
	}

	// The /file/d/{ID}/view form takes precedence over ?id={ID} forms.
	var fileID string
	if m := filePathRe.FindStringSubmatch(u); m != nil {
		fileID = m[1]
	} else if m := queryIDRe.FindStringSubmatch(u); m != nil {
		fileID = m[1]
	}
	if fileID == "" {
		return u
	}
	if width <= 0 {
		width = defaultWidth
	}
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w%d", fileID, width)
}

// Fallback returns the placeholder URL for a category. Unknown categories get
// the event placeholder.
func Fallback(category Category) string {
	if u, ok := fallbacks[category]; ok {
		return u
	}
	return fallbacks[CategoryEvent]
}

// Image is a rendered image source with one-shot fallback semantics: the
// first load failure swaps Src to the category placeholder, every later
// failure is a no-op so a broken placeholder cannot loop.
type Image struct {
	Src             string
	Category        Category
	fallbackApplied bool
}

func NewImage(raw string, category Category) *Image {
	return &Image{Src: Normalize(raw), Category: category}
}

// OnError is the load-failure hook. It reports whether the source was
// rewritten by this call.
func (im *Image) OnError() bool {
	if im.fallbackApplied {
		return false
	}
	im.fallbackApplied = true
	im.Src = Fallback(im.Category)
	return true
}

// FallbackApplied reports whether a failure already swapped in the placeholder.
func (im *Image) FallbackApplied() bool {
	return im.fallbackApplied
}

// Resolve pairs the normalized source with its category placeholder so API
// consumers can register their own failure hook.
func Resolve(raw string, category Category) (src, fallback string) {
	return Normalize(raw), Fallback(category)
}
