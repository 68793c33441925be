package live

import (
	"context"

	"github.com/rs/zerolog"

	"aadhrita/internal/model"
	"aadhrita/internal/store"
)

// Views bundles one live view per public collection and singleton. Each view
// subscribes independently; refresh cycles of different kinds are unordered.
type Views struct {
	Events        *View[[]model.Event]
	Announcements *View[[]model.Announcement]
	Gallery       *View[[]model.GalleryImage]
	Sponsors      *View[[]model.Sponsor]
	Team          *View[[]model.TeamMember]
	Branding      *View[*model.Branding]
	About         *View[*model.About]

	faqUnsub func()
}

func NewViews(cs store.ContentStore, log *zerolog.Logger) *Views {
	return &Views{
		Events:        NewView(store.KindEvents, cs.Events, log),
		Announcements: NewView(store.KindAnnouncements, cs.Announcements, log),
		Gallery:       NewView(store.KindGallery, cs.Gallery, log),
		Sponsors:      NewView(store.KindSponsors, cs.Sponsors, log),
		Team:          NewView(store.KindTeam, cs.Team, log),
		Branding:      NewView(store.KindBranding, cs.Branding, log),
		About:         NewView(store.KindAbout, cs.About, log),
	}
}

// Start brings every view online. The events view also refreshes on FAQ
// changes because FAQs are attached to the events snapshot.
func (v *Views) Start(ctx context.Context, sub Subscriber) error {
	if err := v.Events.Start(ctx, sub); err != nil {
		return err
	}
	faqUnsub, err := sub.Subscribe(store.KindFAQs, func() {
		go v.Events.refetch(ctx)
	})
	if err != nil {
		return err
	}
	v.faqUnsub = faqUnsub

	for _, start := range []func(context.Context, Subscriber) error{
		v.Announcements.Start,
		v.Gallery.Start,
		v.Sponsors.Start,
		v.Team.Start,
		v.Branding.Start,
		v.About.Start,
	} {
		if err := start(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

func (v *Views) Stop() {
	if v.faqUnsub != nil {
		v.faqUnsub()
		v.faqUnsub = nil
	}
	v.Events.Stop()
	v.Announcements.Stop()
	v.Gallery.Stop()
	v.Sponsors.Stop()
	v.Team.Stop()
	v.Branding.Stop()
	v.About.Stop()
}
