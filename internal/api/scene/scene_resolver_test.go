package scene

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/paragourmet/internal/types"
)

type fakeFinder struct {
	name  string
	calls int
}

func (f *fakeFinder) GetTimezoneName(_, _ float64) string {
	f.calls++
	return f.name
}

var fixedNow = time.Date(2025, 7, 14, 3, 30, 0, 0, time.UTC)

func newTestResolver(finder ZoneFinder) *Resolver {
	r := NewResolver(finder, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.now = func() time.Time { return fixedNow }
	return r
}

func TestResolver_LocalTime(t *testing.T) {
	t.Run("known zone", func(t *testing.T) {
		r := newTestResolver(&fakeFinder{name: "Asia/Seoul"})
		got := r.LocalTime(37.544, 127.056)

		assert.Equal(t, "Asia/Seoul", got.Location().String())
		assert.True(t, got.Equal(fixedNow))
		assert.Equal(t, 12, got.Hour())
	})

	t.Run("no zone falls back to UTC", func(t *testing.T) {
		r := newTestResolver(&fakeFinder{name: ""})
		got := r.LocalTime(0, -160)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("unknown zone falls back to UTC", func(t *testing.T) {
		r := newTestResolver(&fakeFinder{name: "Mars/Olympus_Mons"})
		got := r.LocalTime(1, 1)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("nil finder falls back to UTC", func(t *testing.T) {
		r := newTestResolver(nil)
		assert.Equal(t, time.UTC, r.LocalTime(1, 1).Location())
	})
}

func TestResolver_NewScene(t *testing.T) {
	in := types.SceneInput{
		Lat: 37.544, Lon: 127.056, City: "Seoul", District: "Seongsu-dong",
		TemperatureC: 28, Sky: "very sunny", HumidityPct: 60, RadiusM: 350,
	}

	t.Run("resolves local time once", func(t *testing.T) {
		finder := &fakeFinder{name: "Asia/Seoul"}
		r := newTestResolver(finder)

		s := r.NewScene(in)
		require.Equal(t, 1, finder.calls)
		assert.Equal(t, "Asia/Seoul", s.LocalTime.Location().String())
		assert.Equal(t, "Seongsu-dong", s.District)
		assert.Equal(t, 350, s.RadiusM)
		assert.NotEqual(t, uuid.Nil, s.ID)
	})

	t.Run("supplied local time is kept", func(t *testing.T) {
		finder := &fakeFinder{name: "Asia/Seoul"}
		r := newTestResolver(finder)
		supplied := time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)

		withTime := in
		withTime.LocalTime = supplied
		s := r.NewScene(withTime)

		assert.Equal(t, 0, finder.calls)
		assert.True(t, s.LocalTime.Equal(supplied))
	})
}
