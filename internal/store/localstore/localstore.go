// Package localstore is the embedded content-store backend: a namespaced
// key→JSON-blob table in a local SQLite database, seeded with default content
// on first run. It mirrors the hosted backend's contract so the two are
// interchangeable behind store.ContentStore.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"aadhrita/internal/model"
	"aadhrita/internal/store"
)

const (
	keyPrefix  = "aadhrita_"
	sessionKey = keyPrefix + "admin_session"
)

type Store struct {
	db       *sql.DB
	log      *zerolog.Logger
	notifier store.Notifier

	mu     sync.Mutex
	lastID int64
}

func New(path string, notifier store.Notifier, log *zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping local store: %w", err)
	}
	return &Store{db: db, notifier: notifier, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func storageKey(kind store.Kind) string {
	return keyPrefix + string(kind)
}

func seedFor(kind store.Kind) any {
	switch kind {
	case store.KindEvents:
		return defaultEvents
	case store.KindFAQs:
		return defaultFAQs
	case store.KindAnnouncements:
		return defaultAnnouncements
	case store.KindGallery:
		return defaultGallery
	case store.KindSponsors:
		return defaultSponsors
	case store.KindTeam:
		return defaultTeam
	case store.KindBranding:
		return defaultBranding
	case store.KindAbout:
		return defaultAbout
	}
	return nil
}

// Initialize creates the backing table and writes the default seed for every
// key that does not exist yet. Safe to call on every startup.
func (s *Store) Initialize(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	kinds := append(store.Collections(), store.KindBranding, store.KindAbout)
	for _, kind := range kinds {
		seed := seedFor(kind)
		raw, err := json.Marshal(seed)
		if err != nil {
			return fmt.Errorf("failed to marshal seed for %s: %w", kind, err)
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO kv (key, value) VALUES (?, ?)`,
			storageKey(kind), string(raw),
		); err != nil {
			return fmt.Errorf("failed to seed %s: %w", kind, err)
		}
	}
	return nil
}

func (s *Store) getRaw(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *Store) putRaw(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *Store) publish(kind store.Kind) {
	if s.notifier != nil {
		s.notifier.Publish(kind)
	}
}

// nextID is time-based so identifiers are monotonically increasing within a
// session even when two items are created in the same millisecond.
func (s *Store) nextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// readCollection is get-or-default: a missing key yields the seed, and a
// corrupted value logs and falls back to the seed rather than failing reads.
func readCollection[T any](ctx context.Context, s *Store, kind store.Kind, seed []T) ([]T, error) {
	raw, ok, err := s.getRaw(ctx, storageKey(kind))
	if err != nil {
		return nil, err
	}
	if !ok {
		return append([]T(nil), seed...), nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Error().Err(err).Msgf("corrupted collection %s, serving defaults", kind)
		return append([]T(nil), seed...), nil
	}
	return items, nil
}

func writeCollection[T any](ctx context.Context, s *Store, kind store.Kind, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	if err := s.putRaw(ctx, storageKey(kind), raw); err != nil {
		return err
	}
	s.publish(kind)
	return nil
}

func addItem[T any](ctx context.Context, s *Store, kind store.Kind, seed []T, item T, setID func(*T, string), prepend bool) (T, error) {
	items, err := readCollection(ctx, s, kind, seed)
	if err != nil {
		var zero T
		return zero, err
	}
	setID(&item, s.nextID())
	if prepend {
		items = append([]T{item}, items...)
	} else {
		items = append(items, item)
	}
	if err := writeCollection(ctx, s, kind, items); err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

func sortFAQs(faqs []model.FAQ) {
	// Stable: equal priorities keep insertion order.
	sort.SliceStable(faqs, func(i, j int) bool { return faqs[i].Priority < faqs[j].Priority })
}

func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	events, err := readCollection(ctx, s, store.KindEvents, defaultEvents)
	if err != nil {
		return nil, err
	}
	faqs, err := readCollection(ctx, s, store.KindFAQs, defaultFAQs)
	if err != nil {
		return nil, err
	}
	sortFAQs(faqs)
	for i := range events {
		events[i].FAQs = nil
		for _, f := range faqs {
			if f.EventID == events[i].ID {
				events[i].FAQs = append(events[i].FAQs, f)
			}
		}
	}
	return events, nil
}

func (s *Store) FAQs(ctx context.Context, eventID string) ([]model.FAQ, error) {
	faqs, err := readCollection(ctx, s, store.KindFAQs, defaultFAQs)
	if err != nil {
		return nil, err
	}
	if eventID != "" {
		filtered := faqs[:0]
		for _, f := range faqs {
			if f.EventID == eventID {
				filtered = append(filtered, f)
			}
		}
		faqs = filtered
	}
	sortFAQs(faqs)
	return faqs, nil
}

func (s *Store) Announcements(ctx context.Context) ([]model.Announcement, error) {
	items, err := readCollection(ctx, s, store.KindAnnouncements, defaultAnnouncements)
	if err != nil {
		return nil, err
	}
	// Higher priority first, stable.
	sort.SliceStable(items, func(i, j int) bool { return items[i].Priority > items[j].Priority })
	return items, nil
}

func (s *Store) Gallery(ctx context.Context) ([]model.GalleryImage, error) {
	return readCollection(ctx, s, store.KindGallery, defaultGallery)
}

func (s *Store) Sponsors(ctx context.Context) ([]model.Sponsor, error) {
	return readCollection(ctx, s, store.KindSponsors, defaultSponsors)
}

func (s *Store) Team(ctx context.Context) ([]model.TeamMember, error) {
	return readCollection(ctx, s, store.KindTeam, defaultTeam)
}

func (s *Store) Branding(ctx context.Context) (*model.Branding, error) {
	raw, ok, err := s.getRaw(ctx, storageKey(store.KindBranding))
	if err != nil {
		return nil, err
	}
	if !ok {
		b := defaultBranding
		return &b, nil
	}
	var b model.Branding
	if err := json.Unmarshal(raw, &b); err != nil {
		s.log.Error().Err(err).Msg("corrupted branding, serving defaults")
		b = defaultBranding
	}
	return &b, nil
}

func (s *Store) About(ctx context.Context) (*model.About, error) {
	raw, ok, err := s.getRaw(ctx, storageKey(store.KindAbout))
	if err != nil {
		return nil, err
	}
	if !ok {
		a := defaultAbout
		return &a, nil
	}
	var a model.About
	if err := json.Unmarshal(raw, &a); err != nil {
		s.log.Error().Err(err).Msg("corrupted about, serving defaults")
		a = defaultAbout
	}
	return &a, nil
}

func (s *Store) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	return addItem(ctx, s, store.KindEvents, defaultEvents, e,
		func(it *model.Event, id string) { it.ID = id }, false)
}

// CreateFAQ refuses to attach a question to an event that does not exist.
func (s *Store) CreateFAQ(ctx context.Context, f model.FAQ) (model.FAQ, error) {
	events, err := readCollection(ctx, s, store.KindEvents, defaultEvents)
	if err != nil {
		return model.FAQ{}, err
	}
	exists := false
	for _, e := range events {
		if e.ID == f.EventID {
			exists = true
			break
		}
	}
	if !exists {
		return model.FAQ{}, fmt.Errorf("event %s: %w", f.EventID, store.ErrNotFound)
	}
	return addItem(ctx, s, store.KindFAQs, defaultFAQs, f,
		func(it *model.FAQ, id string) { it.ID = id }, false)
}

// CreateAnnouncement prepends so the newest entry renders first among equals.
func (s *Store) CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	return addItem(ctx, s, store.KindAnnouncements, defaultAnnouncements, a,
		func(it *model.Announcement, id string) { it.ID = id }, true)
}

func (s *Store) CreateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	return addItem(ctx, s, store.KindGallery, defaultGallery, g,
		func(it *model.GalleryImage, id string) { it.ID = id }, false)
}

func (s *Store) CreateSponsor(ctx context.Context, sp model.Sponsor) (model.Sponsor, error) {
	return addItem(ctx, s, store.KindSponsors, defaultSponsors, sp,
		func(it *model.Sponsor, id string) { it.ID = id }, false)
}

func (s *Store) CreateTeamMember(ctx context.Context, m model.TeamMember) (model.TeamMember, error) {
	return addItem(ctx, s, store.KindTeam, defaultTeam, m,
		func(it *model.TeamMember, id string) { it.ID = id }, false)
}

// rawCollection reads a collection as loose maps for patch-style updates,
// materializing the seed if nothing is stored yet.
func (s *Store) rawCollection(ctx context.Context, kind store.Kind) ([]map[string]any, error) {
	raw, ok, err := s.getRaw(ctx, storageKey(kind))
	if err != nil {
		return nil, err
	}
	if !ok {
		raw, err = json.Marshal(seedFor(kind))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal seed for %s: %w", kind, err)
		}
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corrupted collection %s: %w", kind, err)
	}
	return items, nil
}

// checkCollection round-trips a merged raw collection through its typed model
// slice. A patch value of the wrong type must be rejected here, before it is
// persisted as a blob that reads would treat as corruption.
func checkCollection(kind store.Kind, raw []byte) error {
	var err error
	switch kind {
	case store.KindEvents:
		err = json.Unmarshal(raw, new([]model.Event))
	case store.KindFAQs:
		err = json.Unmarshal(raw, new([]model.FAQ))
	case store.KindAnnouncements:
		err = json.Unmarshal(raw, new([]model.Announcement))
	case store.KindGallery:
		err = json.Unmarshal(raw, new([]model.GalleryImage))
	case store.KindSponsors:
		err = json.Unmarshal(raw, new([]model.Sponsor))
	case store.KindTeam:
		err = json.Unmarshal(raw, new([]model.TeamMember))
	default:
		return store.ErrUnknownKind
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", store.ErrInvalidPatch, kind, err)
	}
	return nil
}

func (s *Store) UpdateItem(ctx context.Context, kind store.Kind, id string, patch map[string]any) error {
	if !kind.Valid() || kind == store.KindBranding || kind == store.KindAbout {
		return store.ErrUnknownKind
	}
	items, err := s.rawCollection(ctx, kind)
	if err != nil {
		return err
	}
	allowed := make(map[string]bool)
	for _, f := range store.PatchFields(kind) {
		allowed[f] = true
	}
	found := false
	for _, it := range items {
		if it["id"] == id {
			for k, v := range patch {
				if allowed[k] {
					it[k] = v
				}
			}
			found = true
			break
		}
	}
	if !found {
		// Absence is a no-op, not an error.
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	if err := checkCollection(kind, raw); err != nil {
		return err
	}
	if err := s.putRaw(ctx, storageKey(kind), raw); err != nil {
		return err
	}
	s.publish(kind)
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, kind store.Kind, id string) error {
	if !kind.Valid() || kind == store.KindBranding || kind == store.KindAbout {
		return store.ErrUnknownKind
	}
	items, err := s.rawCollection(ctx, kind)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it["id"] != id {
			kept = append(kept, it)
		}
	}
	raw, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}
	if err := s.putRaw(ctx, storageKey(kind), raw); err != nil {
		return err
	}
	s.publish(kind)
	return nil
}

func (s *Store) SaveBranding(ctx context.Context, b model.Branding) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal branding: %w", err)
	}
	if err := s.putRaw(ctx, storageKey(store.KindBranding), raw); err != nil {
		return err
	}
	s.publish(store.KindBranding)
	return nil
}

func (s *Store) SaveAbout(ctx context.Context, a model.About) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal about: %w", err)
	}
	if err := s.putRaw(ctx, storageKey(store.KindAbout), raw); err != nil {
		return err
	}
	s.publish(store.KindAbout)
	return nil
}

func (s *Store) Subscribe(kind store.Kind, onChange func()) (func(), error) {
	if s.notifier == nil {
		return func() {}, nil
	}
	return s.notifier.Subscribe(kind, onChange)
}

// Admin session tokens persist in the same kv table, replacing the old
// cleartext "authenticated" flag with opaque capabilities.

func (s *Store) sessions(ctx context.Context) (map[string]string, error) {
	raw, ok, err := s.getRaw(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	tokens := make(map[string]string)
	if ok {
		if err := json.Unmarshal(raw, &tokens); err != nil {
			s.log.Error().Err(err).Msg("corrupted session store, clearing")
		}
	}
	return tokens, nil
}

func (s *Store) saveSessions(ctx context.Context, tokens map[string]string) error {
	raw, err := json.Marshal(tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w", err)
	}
	return s.putRaw(ctx, sessionKey, raw)
}

func (s *Store) PutSession(ctx context.Context, token, userID string) error {
	tokens, err := s.sessions(ctx)
	if err != nil {
		return err
	}
	tokens[token] = userID
	return s.saveSessions(ctx, tokens)
}

func (s *Store) SessionUser(ctx context.Context, token string) (string, bool, error) {
	tokens, err := s.sessions(ctx)
	if err != nil {
		return "", false, err
	}
	userID, ok := tokens[token]
	return userID, ok, nil
}

func (s *Store) DropSession(ctx context.Context, token string) error {
	tokens, err := s.sessions(ctx)
	if err != nil {
		return err
	}
	delete(tokens, token)
	return s.saveSessions(ctx, tokens)
}
