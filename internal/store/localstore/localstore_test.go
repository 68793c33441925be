package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"aadhrita/internal/model"
	"aadhrita/internal/notify"
	"aadhrita/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	log := zerolog.Nop()
	s, err := New(filepath.Join(t.TempDir(), "content.db"), notify.NewBroker(), &log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Initialize(context.Background()))
	return s
}

func TestInitializeSeedsOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A second Initialize must not duplicate or reset seed data.
	require.NoError(t, s.Initialize(ctx))

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 6)

	seen := make(map[string]bool)
	for _, e := range events {
		require.NotEmpty(t, e.ID)
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestGetCollectionWithoutInitialize(t *testing.T) {
	log := zerolog.Nop()
	s, err := New(filepath.Join(t.TempDir(), "content.db"), nil, &log)
	require.NoError(t, err)
	defer s.Close()

	// Only create the table, skip seeding: reads still serve defaults.
	_, err = s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	events, err := s.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 6)
}

func TestCreateEvent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateEvent(ctx, model.Event{Name: "Hack2026", Category: "Coding"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Hack2026", created.Name)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 7)

	count := 0
	for _, e := range events {
		if e.ID == created.ID {
			count++
		}
	}
	require.Equal(t, 1, count, "created event must appear exactly once")
}

func TestIDsMonotonic(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.CreateSponsor(ctx, model.Sponsor{Name: "A", Category: model.SponsorGold})
	require.NoError(t, err)
	b, err := s.CreateSponsor(ctx, model.Sponsor{Name: "B", Category: model.SponsorGold})
	require.NoError(t, err)
	require.Greater(t, b.ID, a.ID)
}

func TestUpdateItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.UpdateItem(ctx, store.KindEvents, "1", map[string]any{
		"name":    "CodeStorm X",
		"ignored": "junk",
	})
	require.NoError(t, err)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Equal(t, "CodeStorm X", events[0].Name)
	// Untouched fields survive the merge.
	require.Equal(t, "Coding", events[0].Category)

	// Missing id is a no-op.
	require.NoError(t, s.UpdateItem(ctx, store.KindEvents, "does-not-exist", map[string]any{"name": "x"}))
}

func TestUpdateItemRejectsWrongTypedValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.UpdateItem(ctx, store.KindEvents, "1", map[string]any{"name": "Renamed"}))

	// A number where a string belongs must fail, not persist a blob that
	// reads cannot decode.
	err := s.UpdateItem(ctx, store.KindEvents, "2", map[string]any{"name": 12345})
	require.ErrorIs(t, err, store.ErrInvalidPatch)

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 6)

	byID := make(map[string]model.Event)
	for _, e := range events {
		byID[e.ID] = e
	}
	require.Equal(t, "Renamed", byID["1"].Name, "earlier edit must survive a rejected patch")
	require.Equal(t, "RoboWars", byID["2"].Name)
}

func TestDeleteItem(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteItem(ctx, store.KindEvents, "2"))

	events, err := s.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 5)
	for _, e := range events {
		require.NotEqual(t, "2", e.ID)
	}

	// Absence is not an error.
	require.NoError(t, s.DeleteItem(ctx, store.KindEvents, "2"))
}

func TestAnnouncementsPrependAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateAnnouncement(ctx, model.Announcement{Title: "Flash", Priority: 3})
	require.NoError(t, err)

	items, err := s.Announcements(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	// Same priority as the seeded high entry, but prepended, so it wins the tie.
	require.Equal(t, created.ID, items[0].ID)
	for i := 1; i < len(items); i++ {
		require.GreaterOrEqual(t, items[i-1].Priority, items[i].Priority)
	}
}

func TestEventsAttachFAQsByPriority(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateFAQ(ctx, model.FAQ{EventID: "1", Question: "Entry fee?", Answer: "None.", Priority: 0})
	require.NoError(t, err)

	events, err := s.Events(ctx)
	require.NoError(t, err)

	var codestorm *model.Event
	for i := range events {
		if events[i].ID == "1" {
			codestorm = &events[i]
		}
	}
	require.NotNil(t, codestorm)
	require.Len(t, codestorm.FAQs, 3)
	require.Equal(t, "Entry fee?", codestorm.FAQs[0].Question)
	for _, f := range codestorm.FAQs {
		require.Equal(t, "1", f.EventID)
	}
}

func TestCreateFAQUnknownEvent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateFAQ(ctx, model.FAQ{EventID: "999", Question: "Where?"})
	require.ErrorIs(t, err, store.ErrNotFound)

	faqs, err := s.FAQs(ctx, "")
	require.NoError(t, err)
	require.Len(t, faqs, 3)
}

func TestBrandingSingleton(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	b, err := s.Branding(ctx)
	require.NoError(t, err)
	require.Equal(t, "AADHRITA – 2026", b.FestName)

	b.FestName = "AADHRITA – 2027"
	require.NoError(t, s.SaveBranding(ctx, *b))

	b2, err := s.Branding(ctx)
	require.NoError(t, err)
	require.Equal(t, "AADHRITA – 2027", b2.FestName)
}

func TestSubscribeFiresOnMutation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	fired := 0
	unsub, err := s.Subscribe(store.KindGallery, func() { fired++ })
	require.NoError(t, err)

	_, err = s.CreateGalleryImage(ctx, model.GalleryImage{ImageURL: "https://example.com/a.jpg"})
	require.NoError(t, err)
	require.Equal(t, 1, fired)

	unsub()
	_, err = s.CreateGalleryImage(ctx, model.GalleryImage{ImageURL: "https://example.com/b.jpg"})
	require.NoError(t, err)
	require.Equal(t, 1, fired, "unsubscribed callback must not fire")
}

func TestSessions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, ok, err := s.SessionUser(ctx, "tok")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.PutSession(ctx, "tok", "admin"))
	userID, ok, err := s.SessionUser(ctx, "tok")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "admin", userID)

	require.NoError(t, s.DropSession(ctx, "tok"))
	_, ok, err = s.SessionUser(ctx, "tok")
	require.NoError(t, err)
	require.False(t, ok)
}
