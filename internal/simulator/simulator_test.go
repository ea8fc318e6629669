package simulator

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/bookdemo/internal/demo"
	"github.com/idilsaglam/bookdemo/internal/model"
	"github.com/idilsaglam/bookdemo/internal/store/jsonstore"
	"github.com/idilsaglam/bookdemo/internal/ui"
)

var monday = time.Date(2024, time.May, 13, 9, 30, 0, 0, time.UTC)

func quiet(t *testing.T) *bytes.Buffer {
	t.Helper()
	ui.SetColorForcing(false, true)
	var buf bytes.Buffer
	old := ui.Out
	ui.Out = &buf
	t.Cleanup(func() { ui.Out = old })
	return &buf
}

func newSim(store Appender, seed int64) *Simulator {
	return New(store,
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return monday }),
		WithPace(0),
	)
}

func TestRunAppendsRecordsFromCandidates(t *testing.T) {
	out := quiet(t)
	store, err := jsonstore.New(filepath.Join(t.TempDir(), "bookings.json"))
	require.NoError(t, err)

	before, err := store.Load()
	require.NoError(t, err)

	const runs = 5
	sim := newSim(store, 42)
	for i := 0; i < runs; i++ {
		_, err := sim.Run(context.Background())
		require.NoError(t, err)
	}

	after, err := store.Load()
	require.NoError(t, err)
	require.Len(t, after, len(before)+runs)

	for _, rec := range after {
		assert.Equal(t, "2024-05-14", rec.Date)
		assert.Contains(t, demo.TimeSlots, rec.Time)
		assert.Contains(t, demo.Candidates, model.Contact{Name: rec.Name, Company: rec.Company, Email: rec.Email, Phone: rec.Phone})
		assert.Equal(t, demo.DefaultMessage, rec.Message)
		assert.NotEmpty(t, rec.ID)
		require.NotNil(t, rec.CreatedAt)
	}

	assert.Contains(t, out.String(), "=== Starting Booking Simulation ===")
	assert.Contains(t, out.String(), "Selected Date: Tuesday, 14 May 2024")
	assert.Contains(t, out.String(), "✓ Confirmation email sent")
}

func TestRunIsDeterministicWithSeed(t *testing.T) {
	quiet(t)
	a := &memStore{}
	b := &memStore{}
	_, err := newSim(a, 7).Run(context.Background())
	require.NoError(t, err)
	_, err = newSim(b, 7).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a.recs[0].Time, b.recs[0].Time)
	assert.Equal(t, a.recs[0].Name, b.recs[0].Name)
}

func TestRunPausesAreScaled(t *testing.T) {
	quiet(t)
	var slept []time.Duration
	sim := New(&memStore{},
		WithClock(func() time.Time { return monday }),
		WithPace(2),
		WithSleep(func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		}),
	)
	_, err := sim.Run(context.Background())
	require.NoError(t, err)

	// 1.5s, five fields at 0.5s, 1s, 0.5s, all doubled.
	require.Len(t, slept, 8)
	assert.Equal(t, 3*time.Second, slept[0])
	assert.Equal(t, time.Second, slept[1])
	assert.Equal(t, 2*time.Second, slept[6])
}

func TestRunCancelled(t *testing.T) {
	quiet(t)
	store := &memStore{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSim(store, 1).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, store.recs)
}

func TestRunStoreError(t *testing.T) {
	quiet(t)
	_, err := newSim(&memStore{err: errors.New("disk full")}, 1).Run(context.Background())
	assert.ErrorContains(t, err, "save booking: disk full")
}

func TestPick(t *testing.T) {
	sim := newSim(&memStore{}, 3)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		date, slot, c := sim.Pick()
		assert.Equal(t, time.Tuesday, date.Weekday())
		seen[slot] = true
		assert.True(t, model.ValidEmail(c.Email))
	}
	assert.Len(t, seen, len(demo.TimeSlots))
}

type memStore struct {
	recs []model.Booking
	err  error
}

func (m *memStore) Append(rec model.Booking) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.recs = append(m.recs, rec)
	return len(m.recs), nil
}
