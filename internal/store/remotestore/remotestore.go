// Package remotestore is the hosted content-store backend over Postgres.
// Every mutation publishes a coarse change notification for the touched
// table; reads are plain fetch-all queries with the orderings the site
// contract requires.
package remotestore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/dbpg"

	"aadhrita/internal/model"
	"aadhrita/internal/store"
)

type Store struct {
	db       *dbpg.DB
	log      *zerolog.Logger
	notifier store.Notifier
}

func New(db *dbpg.DB, notifier store.Notifier, log *zerolog.Logger) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	if err := db.Master.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}
	return &Store{db: db, notifier: notifier, log: log}, nil
}

func (s *Store) MigrateUp(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		if _, err := s.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
	}

	s.log.Info().Msgf("Migrations applied successfully from %s", migrationsDir)
	return nil
}

func (s *Store) MigrateDown(migrationsDir string) error {
	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.down.sql"))
	if err != nil {
		return fmt.Errorf("failed to read rollback files: %w", err)
	}

	for _, file := range files {
		sqlBytes, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read rollback file %s: %w", file, err)
		}

		if _, err := s.db.ExecContext(context.Background(), string(sqlBytes)); err != nil {
			return fmt.Errorf("failed to rollback migration %s: %w", file, err)
		}
	}

	s.log.Info().Msgf("Migrations rolled back successfully from %s", migrationsDir)
	return nil
}

// Initialize only verifies connectivity; schema and seed rows come from the
// migrations.
func (s *Store) Initialize(ctx context.Context) error {
	return s.db.Master.PingContext(ctx)
}

func (s *Store) publish(kind store.Kind) {
	if s.notifier != nil {
		s.notifier.Publish(kind)
	}
}

func tableFor(kind store.Kind) (string, error) {
	switch kind {
	case store.KindEvents:
		return "events", nil
	case store.KindFAQs:
		return "faqs", nil
	case store.KindAnnouncements:
		return "announcements", nil
	case store.KindGallery:
		return "gallery", nil
	case store.KindSponsors:
		return "sponsors", nil
	case store.KindTeam:
		return "team", nil
	}
	return "", store.ErrUnknownKind
}

func (s *Store) Events(ctx context.Context) ([]model.Event, error) {
	query := `
		SELECT id, name, category, date, time, description, poster_url,
		       logo_url, accent_color, registration_url, enable_registration
		FROM events
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Category, &e.Date, &e.Time, &e.Description,
			&e.PosterURL, &e.LogoURL, &e.AccentColor, &e.RegistrationURL,
			&e.EnableRegistration,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	// FAQs are fetched independently and attached here, not joined in SQL.
	faqs, err := s.FAQs(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range events {
		for _, f := range faqs {
			if f.EventID == events[i].ID {
				events[i].FAQs = append(events[i].FAQs, f)
			}
		}
	}
	return events, nil
}

func (s *Store) FAQs(ctx context.Context, eventID string) ([]model.FAQ, error) {
	query := `
		SELECT id, event_id, question, answer, priority
		FROM faqs
	`
	args := []any{}
	if eventID != "" {
		query += ` WHERE event_id = $1`
		args = append(args, eventID)
	}
	query += ` ORDER BY priority ASC, created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get faqs: %w", err)
	}
	defer rows.Close()

	var faqs []model.FAQ
	for rows.Next() {
		var f model.FAQ
		if err := rows.Scan(&f.ID, &f.EventID, &f.Question, &f.Answer, &f.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read faqs: %w", err)
	}
	return faqs, nil
}

func (s *Store) Announcements(ctx context.Context) ([]model.Announcement, error) {
	query := `
		SELECT id, title, content, date, priority
		FROM announcements
		ORDER BY priority DESC, created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcements: %w", err)
	}
	defer rows.Close()

	var items []model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.Date, &a.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read announcements: %w", err)
	}
	return items, nil
}

func (s *Store) Gallery(ctx context.Context) ([]model.GalleryImage, error) {
	query := `
		SELECT id, image_url, caption, year, event_name
		FROM gallery
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		var g model.GalleryImage
		if err := rows.Scan(&g.ID, &g.ImageURL, &g.Caption, &g.Year, &g.EventName); err != nil {
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gallery: %w", err)
	}
	return images, nil
}

func (s *Store) Sponsors(ctx context.Context) ([]model.Sponsor, error) {
	query := `
		SELECT id, name, category, logo_url, website
		FROM sponsors
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get sponsors: %w", err)
	}
	defer rows.Close()

	var sponsors []model.Sponsor
	for rows.Next() {
		var sp model.Sponsor
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Category, &sp.LogoURL, &sp.Website); err != nil {
			return nil, fmt.Errorf("failed to scan sponsor: %w", err)
		}
		sponsors = append(sponsors, sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sponsors: %w", err)
	}
	return sponsors, nil
}

func (s *Store) Team(ctx context.Context) ([]model.TeamMember, error) {
	query := `
		SELECT id, name, role, department, phone, photo_url, type
		FROM team
		ORDER BY created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	defer rows.Close()

	var members []model.TeamMember
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Department, &m.Phone, &m.PhotoURL, &m.Type); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read team: %w", err)
	}
	return members, nil
}

// Branding returns at most one row, nil when the table is empty.
func (s *Store) Branding(ctx context.Context) (*model.Branding, error) {
	query := `
		SELECT id, fest_name, college_name, location, logo_url, glow_color,
		       hero_title, hero_subtitle, hero_date, hero_venue,
		       fest_intro, fest_theme, fest_highlights, countdown_datetime
		FROM branding
		LIMIT 1
	`
	var b model.Branding
	err := s.db.QueryRowContext(ctx, query).Scan(
		&b.ID, &b.FestName, &b.CollegeName, &b.Location, &b.LogoURL, &b.GlowColor,
		&b.HeroTitle, &b.HeroSubtitle, &b.HeroDate, &b.HeroVenue,
		&b.FestIntro, &b.FestTheme, &b.FestHighlights, &b.CountdownDatetime,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get branding: %w", err)
	}
	return &b, nil
}

func (s *Store) About(ctx context.Context) (*model.About, error) {
	query := `
		SELECT id, about, mission, vision, stat1, stat2, stat3, stat4
		FROM about
		LIMIT 1
	`
	var a model.About
	err := s.db.QueryRowContext(ctx, query).Scan(
		&a.ID, &a.About, &a.Mission, &a.Vision, &a.Stat1, &a.Stat2, &a.Stat3, &a.Stat4,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get about: %w", err)
	}
	return &a, nil
}

func (s *Store) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	e.ID = uuid.NewString()
	query := `
		INSERT INTO events (id, name, category, date, time, description, poster_url,
		                    logo_url, accent_color, registration_url, enable_registration)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := s.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Category, e.Date, e.Time, e.Description, e.PosterURL,
		e.LogoURL, e.AccentColor, e.RegistrationURL, e.EnableRegistration,
	); err != nil {
		return model.Event{}, fmt.Errorf("failed to insert event: %w", err)
	}
	s.publish(store.KindEvents)
	return e, nil
}

// CreateFAQ refuses to attach a question to an event that does not exist.
func (s *Store) CreateFAQ(ctx context.Context, f model.FAQ) (model.FAQ, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = $1`, f.EventID).Scan(&one)
	if err == sql.ErrNoRows {
		return model.FAQ{}, fmt.Errorf("event %s: %w", f.EventID, store.ErrNotFound)
	}
	if err != nil {
		return model.FAQ{}, fmt.Errorf("failed to check event: %w", err)
	}

	f.ID = uuid.NewString()
	query := `
		INSERT INTO faqs (id, event_id, question, answer, priority)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query, f.ID, f.EventID, f.Question, f.Answer, f.Priority); err != nil {
		return model.FAQ{}, fmt.Errorf("failed to insert faq: %w", err)
	}
	s.publish(store.KindFAQs)
	return f, nil
}

func (s *Store) CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	a.ID = uuid.NewString()
	query := `
		INSERT INTO announcements (id, title, content, date, priority)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query, a.ID, a.Title, a.Content, a.Date, a.Priority); err != nil {
		return model.Announcement{}, fmt.Errorf("failed to insert announcement: %w", err)
	}
	s.publish(store.KindAnnouncements)
	return a, nil
}

func (s *Store) CreateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	g.ID = uuid.NewString()
	query := `
		INSERT INTO gallery (id, image_url, caption, year, event_name)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query, g.ID, g.ImageURL, g.Caption, g.Year, g.EventName); err != nil {
		return model.GalleryImage{}, fmt.Errorf("failed to insert gallery image: %w", err)
	}
	s.publish(store.KindGallery)
	return g, nil
}

func (s *Store) CreateSponsor(ctx context.Context, sp model.Sponsor) (model.Sponsor, error) {
	sp.ID = uuid.NewString()
	query := `
		INSERT INTO sponsors (id, name, category, logo_url, website)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.db.ExecContext(ctx, query, sp.ID, sp.Name, sp.Category, sp.LogoURL, sp.Website); err != nil {
		return model.Sponsor{}, fmt.Errorf("failed to insert sponsor: %w", err)
	}
	s.publish(store.KindSponsors)
	return sp, nil
}

func (s *Store) CreateTeamMember(ctx context.Context, m model.TeamMember) (model.TeamMember, error) {
	m.ID = uuid.NewString()
	query := `
		INSERT INTO team (id, name, role, department, phone, photo_url, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query, m.ID, m.Name, m.Role, m.Department, m.Phone, m.PhotoURL, m.Type); err != nil {
		return model.TeamMember{}, fmt.Errorf("failed to insert team member: %w", err)
	}
	s.publish(store.KindTeam)
	return m, nil
}

// UpdateItem builds a SET clause from the whitelisted patch keys. Updating a
// missing id is a no-op, matching the store contract.
func (s *Store) UpdateItem(ctx context.Context, kind store.Kind, id string, patch map[string]any) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	var sets []string
	var args []any
	for _, f := range store.PatchFields(kind) {
		if v, ok := patch[f]; ok {
			args = append(args, v)
			sets = append(sets, fmt.Sprintf("%s = $%d", f, len(args)))
		}
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(sets, ", "), len(args))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	s.publish(kind)
	return nil
}

func (s *Store) DeleteItem(ctx context.Context, kind store.Kind, id string) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)
	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	s.publish(kind)
	return nil
}

func (s *Store) SaveBranding(ctx context.Context, b model.Branding) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	query := `
		INSERT INTO branding (id, fest_name, college_name, location, logo_url, glow_color,
		                      hero_title, hero_subtitle, hero_date, hero_venue,
		                      fest_intro, fest_theme, fest_highlights, countdown_datetime)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			fest_name = EXCLUDED.fest_name,
			college_name = EXCLUDED.college_name,
			location = EXCLUDED.location,
			logo_url = EXCLUDED.logo_url,
			glow_color = EXCLUDED.glow_color,
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			hero_date = EXCLUDED.hero_date,
			hero_venue = EXCLUDED.hero_venue,
			fest_intro = EXCLUDED.fest_intro,
			fest_theme = EXCLUDED.fest_theme,
			fest_highlights = EXCLUDED.fest_highlights,
			countdown_datetime = EXCLUDED.countdown_datetime
	`
	if _, err := s.db.ExecContext(ctx, query,
		b.ID, b.FestName, b.CollegeName, b.Location, b.LogoURL, b.GlowColor,
		b.HeroTitle, b.HeroSubtitle, b.HeroDate, b.HeroVenue,
		b.FestIntro, b.FestTheme, b.FestHighlights, b.CountdownDatetime,
	); err != nil {
		return fmt.Errorf("failed to save branding: %w", err)
	}
	s.publish(store.KindBranding)
	return nil
}

func (s *Store) SaveAbout(ctx context.Context, a model.About) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	query := `
		INSERT INTO about (id, about, mission, vision, stat1, stat2, stat3, stat4)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			about = EXCLUDED.about,
			mission = EXCLUDED.mission,
			vision = EXCLUDED.vision,
			stat1 = EXCLUDED.stat1,
			stat2 = EXCLUDED.stat2,
			stat3 = EXCLUDED.stat3,
			stat4 = EXCLUDED.stat4
	`
	if _, err := s.db.ExecContext(ctx, query,
		a.ID, a.About, a.Mission, a.Vision, a.Stat1, a.Stat2, a.Stat3, a.Stat4,
	); err != nil {
		return fmt.Errorf("failed to save about: %w", err)
	}
	s.publish(store.KindAbout)
	return nil
}

// RoleFor resolves the role for an identity. No row means a plain user, not
// an error: the caller must not learn whether the identity exists.
func (s *Store) RoleFor(ctx context.Context, userID string) (string, error) {
	var ur model.UserRole
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, role FROM user_roles WHERE user_id = $1 LIMIT 1`, userID,
	).Scan(&ur.ID, &ur.UserID, &ur.Role)
	if err == sql.ErrNoRows {
		return model.RoleUser, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get role: %w", err)
	}
	return ur.Role, nil
}

func (s *Store) Subscribe(kind store.Kind, onChange func()) (func(), error) {
	if s.notifier == nil {
		return func() {}, nil
	}
	return s.notifier.Subscribe(kind, onChange)
}
