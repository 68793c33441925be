package notify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aadhrita/internal/store"
)

func TestBrokerPublishReachesOnlySubscribedKind(t *testing.T) {
	b := NewBroker()

	var events, sponsors int
	unsubEvents, err := b.Subscribe(store.KindEvents, func() { events++ })
	require.NoError(t, err)
	defer unsubEvents()

	unsubSponsors, err := b.Subscribe(store.KindSponsors, func() { sponsors++ })
	require.NoError(t, err)
	defer unsubSponsors()

	b.Publish(store.KindEvents)
	b.Publish(store.KindEvents)

	require.Equal(t, 2, events)
	require.Equal(t, 0, sponsors)
}

func TestBrokerUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroker()

	var calls int
	unsub, err := b.Subscribe(store.KindGallery, func() { calls++ })
	require.NoError(t, err)

	b.Publish(store.KindGallery)
	unsub()
	b.Publish(store.KindGallery)

	require.Equal(t, 1, calls)
}

func TestBrokerMultipleSubscribersSameKind(t *testing.T) {
	b := NewBroker()

	var first, second int
	unsub1, err := b.Subscribe(store.KindTeam, func() { first++ })
	require.NoError(t, err)
	defer unsub1()
	unsub2, err := b.Subscribe(store.KindTeam, func() { second++ })
	require.NoError(t, err)
	defer unsub2()

	b.Publish(store.KindTeam)

	require.Equal(t, 1, first)
	require.Equal(t, 1, second)
}
