package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingRefresher struct {
	err   error
	calls chan string
}

func newRecordingRefresher() *recordingRefresher {
	return &recordingRefresher{calls: make(chan string, 10)}
}

func (r *recordingRefresher) Refresh(ctx context.Context, habitID string) error {
	r.calls <- habitID
	return r.err
}

func TestStatsWorker_ProcessesJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher := newRecordingRefresher()
	w := NewStatsWorker(refresher, 10)
	w.Start(ctx)

	w.Enqueue("h1")
	w.Enqueue("h2")

	for _, want := range []string{"h1", "h2"} {
		select {
		case got := <-refresher.calls:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for refresh of %s", want)
		}
	}
}

func TestStatsWorker_RefreshErrorDoesNotStopWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	refresher := newRecordingRefresher()
	refresher.err = errors.New("db down")
	w := NewStatsWorker(refresher, 10)
	w.Start(ctx)

	w.Enqueue("h1")
	w.Enqueue("h2")

	for i := 0; i < 2; i++ {
		select {
		case <-refresher.calls:
		case <-time.After(2 * time.Second):
			t.Fatal("worker stopped after a failed refresh")
		}
	}
}

func TestStatsWorker_EnqueueDropsWhenFull(t *testing.T) {
	w := NewStatsWorker(nil, 2)

	w.Enqueue("a")
	w.Enqueue("b")
	w.Enqueue("c")

	assert.Equal(t, 2, w.Pending())
}

func TestNewStatsWorker_DefaultQueueSize(t *testing.T) {
	w := NewStatsWorker(nil, 0)
	assert.Equal(t, 100, cap(w.jobs))
}
