// Package store defines the content-store capability both backends implement:
// an embedded per-device store and the hosted database store share this
// interface so every consumer stays backend-agnostic.
package store

import (
	"context"
	"errors"

	"aadhrita/internal/model"
)

var (
	ErrNotFound     = errors.New("item not found")
	ErrUnknownKind  = errors.New("unknown entity kind")
	ErrInvalidPatch = errors.New("patch value has wrong type")
)

// Kind names one backing collection or singleton.
type Kind string

const (
	KindEvents        Kind = "events"
	KindFAQs          Kind = "faqs"
	KindAnnouncements Kind = "announcements"
	KindGallery       Kind = "gallery"
	KindSponsors      Kind = "sponsors"
	KindTeam          Kind = "team"
	KindBranding      Kind = "branding"
	KindAbout         Kind = "about"
)

// Collections lists the multi-row kinds in a stable order.
func Collections() []Kind {
	return []Kind{KindEvents, KindFAQs, KindAnnouncements, KindGallery, KindSponsors, KindTeam}
}

func (k Kind) Valid() bool {
	switch k {
	case KindEvents, KindFAQs, KindAnnouncements, KindGallery, KindSponsors, KindTeam, KindBranding, KindAbout:
		return true
	}
	return false
}

// PatchFields lists the JSON field names a partial update may touch for a
// collection kind. Both backends consult it: the local one when merging maps,
// the hosted one when building SET clauses.
func PatchFields(kind Kind) []string {
	switch kind {
	case KindEvents:
		return []string{"name", "category", "date", "time", "description", "poster_url", "logo_url", "accent_color", "registration_url", "enable_registration"}
	case KindFAQs:
		return []string{"event_id", "question", "answer", "priority"}
	case KindAnnouncements:
		return []string{"title", "content", "date", "priority"}
	case KindGallery:
		return []string{"image_url", "caption", "year", "event_name"}
	case KindSponsors:
		return []string{"name", "category", "logo_url", "website"}
	case KindTeam:
		return []string{"name", "role", "department", "phone", "photo_url", "type"}
	}
	return nil
}

// Notifier carries coarse table-change notifications: any mutation to a kind
// is published as-is, and subscribers refetch the whole collection.
type Notifier interface {
	Publish(kind Kind)
	// Subscribe registers onChange for kind and returns an unsubscribe
	// handle. The handle must be called on consumer teardown.
	Subscribe(kind Kind, onChange func()) (func(), error)
}

// ContentStore is the read/write surface over festival content. Reads never
// surface storage errors as panics; mutations report ErrNotFound only where
// the contract says absence is an error (it mostly is not).
type ContentStore interface {
	// Initialize prepares the backing storage. Idempotent.
	Initialize(ctx context.Context) error

	Events(ctx context.Context) ([]model.Event, error)
	FAQs(ctx context.Context, eventID string) ([]model.FAQ, error)
	Announcements(ctx context.Context) ([]model.Announcement, error)
	Gallery(ctx context.Context) ([]model.GalleryImage, error)
	Sponsors(ctx context.Context) ([]model.Sponsor, error)
	Team(ctx context.Context) ([]model.TeamMember, error)

	// Branding and About return (nil, nil) when no row exists.
	Branding(ctx context.Context) (*model.Branding, error)
	About(ctx context.Context) (*model.About, error)

	CreateEvent(ctx context.Context, e model.Event) (model.Event, error)
	// CreateFAQ returns ErrNotFound when the referenced event does not exist.
	CreateFAQ(ctx context.Context, f model.FAQ) (model.FAQ, error)
	CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error)
	CreateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error)
	CreateSponsor(ctx context.Context, s model.Sponsor) (model.Sponsor, error)
	CreateTeamMember(ctx context.Context, m model.TeamMember) (model.TeamMember, error)

	// UpdateItem merges patch over the stored item. Keys are the entity's
	// JSON field names; unknown keys are ignored, values of the wrong type
	// fail with ErrInvalidPatch. A missing id is a no-op.
	UpdateItem(ctx context.Context, kind Kind, id string, patch map[string]any) error

	// DeleteItem removes the item; absence is not an error.
	DeleteItem(ctx context.Context, kind Kind, id string) error

	// Singleton upserts.
	SaveBranding(ctx context.Context, b model.Branding) error
	SaveAbout(ctx context.Context, a model.About) error

	Subscribe(kind Kind, onChange func()) (func(), error)
}

// RoleReader resolves the role held by an authenticated identity. Only the
// hosted backend has a user_roles table; the local variant gates on the
// configured password alone.
type RoleReader interface {
	RoleFor(ctx context.Context, userID string) (string, error)
}
