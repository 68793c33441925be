package live

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"aadhrita/internal/notify"
	"aadhrita/internal/store"
)

func TestViewRefetchesOnNotification(t *testing.T) {
	broker := notify.NewBroker()
	log := zerolog.Nop()

	var calls atomic.Int32
	v := NewView(store.KindGallery, func(ctx context.Context) ([]int, error) {
		n := calls.Add(1)
		return []int{int(n)}, nil
	}, &log)

	require.NoError(t, v.Start(context.Background(), broker))

	data, state := v.Snapshot()
	require.Equal(t, StateReady, state)
	require.Equal(t, []int{1}, data)

	broker.Publish(store.KindGallery)
	require.Eventually(t, func() bool {
		data, _ := v.Snapshot()
		return len(data) == 1 && data[0] == 2
	}, time.Second, 5*time.Millisecond)
}

func TestViewUnsubscribeStopsRefreshes(t *testing.T) {
	broker := notify.NewBroker()
	log := zerolog.Nop()

	var calls atomic.Int32
	v := NewView(store.KindTeam, func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}, &log)

	require.NoError(t, v.Start(context.Background(), broker))
	v.Stop()

	broker.Publish(store.KindTeam)
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load(), "stopped view must not refetch")
}

func TestViewKeepsStaleDataOnError(t *testing.T) {
	broker := notify.NewBroker()
	log := zerolog.Nop()

	var fail atomic.Bool
	v := NewView(store.KindSponsors, func(ctx context.Context) (string, error) {
		if fail.Load() {
			return "", errors.New("backend down")
		}
		return "good", nil
	}, &log)

	require.NoError(t, v.Start(context.Background(), broker))
	fail.Store(true)
	broker.Publish(store.KindSponsors)

	time.Sleep(20 * time.Millisecond)
	data, state := v.Snapshot()
	require.Equal(t, StateReady, state, "error after ready keeps ready state")
	require.Equal(t, "good", data, "stale-but-present beats empty")
}

func TestViewErrorBeforeFirstSuccess(t *testing.T) {
	broker := notify.NewBroker()
	log := zerolog.Nop()

	v := NewView(store.KindEvents, func(ctx context.Context) ([]string, error) {
		return nil, errors.New("backend down")
	}, &log)

	require.NoError(t, v.Start(context.Background(), broker))
	_, state := v.Snapshot()
	require.Equal(t, StateError, state)
}

func TestViewDiscardsSupersededCompletion(t *testing.T) {
	broker := notify.NewBroker()
	log := zerolog.Nop()

	entered2 := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	v := NewView(store.KindAnnouncements, func(ctx context.Context) (int, error) {
		switch calls.Add(1) {
		case 1:
			return 1, nil
		case 2:
			// Stale fetch: completes only after the newer one applied.
			close(entered2)
			<-release
			return 2, nil
		default:
			return 3, nil
		}
	}, &log)

	require.NoError(t, v.Start(context.Background(), broker))

	broker.Publish(store.KindAnnouncements)
	<-entered2
	broker.Publish(store.KindAnnouncements)

	require.Eventually(t, func() bool {
		data, _ := v.Snapshot()
		return data == 3
	}, time.Second, 5*time.Millisecond)

	// Let the stale fetch complete; its older result must be dropped.
	close(release)
	time.Sleep(20 * time.Millisecond)
	data, _ := v.Snapshot()
	require.Equal(t, 3, data, "older completion overwrote newer data")
}

func TestViewGetFallsThroughWhileLoading(t *testing.T) {
	log := zerolog.Nop()
	v := NewView(store.KindAbout, func(ctx context.Context) (string, error) {
		return "direct", nil
	}, &log)

	// Never started: Get still serves.
	got, err := v.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "direct", got)
}
