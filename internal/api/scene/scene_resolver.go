package scene

import (
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/ringsaturn/tzf"

	"github.com/FACorreiaa/paragourmet/internal/types"
)

// ZoneFinder looks up an IANA timezone name for a coordinate. tzf.F satisfies it.
type ZoneFinder interface {
	GetTimezoneName(lng float64, lat float64) string
}

// Resolver turns scene inputs into Scenes, resolving local time from the coordinate
// when the caller did not supply one.
type Resolver struct {
	finder ZoneFinder
	now    func() time.Time
	logger *slog.Logger
}

// NewResolver builds a Resolver backed by the given finder.
func NewResolver(finder ZoneFinder, logger *slog.Logger) *Resolver {
	return &Resolver{
		finder: finder,
		now:    time.Now,
		logger: logger,
	}
}

// NewDefaultResolver loads the bundled tzf polygon index. This is slow and memory hungry,
// so it is done once at startup.
func NewDefaultResolver(logger *slog.Logger) (*Resolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone index: %w", err)
	}
	return NewResolver(finder, logger), nil
}

// LocalTime returns the current wall-clock instant in the zone containing the coordinate.
// Unknown or unresolvable zones fall back to UTC.
func (r *Resolver) LocalTime(lat, lon float64) time.Time {
	loc := time.UTC
	name := ""
	if r.finder != nil {
		name = r.finder.GetTimezoneName(lon, lat)
	}

	switch {
	case name == "":
		r.logger.Warn("No timezone found for coordinate, defaulting to UTC",
			slog.Float64("lat", lat), slog.Float64("lon", lon))
	default:
		zone, err := time.LoadLocation(name)
		if err != nil {
			r.logger.Warn("Could not load timezone, defaulting to UTC",
				slog.String("timezone", name), slog.Any("error", err))
		} else {
			loc = zone
		}
	}

	return r.now().In(loc)
}

// NewScene freezes in into a Scene. Local time is resolved at most once, here.
func (r *Resolver) NewScene(in types.SceneInput) types.Scene {
	localTime := in.LocalTime
	if localTime.IsZero() {
		localTime = r.LocalTime(in.Lat, in.Lon)
	}

	return types.Scene{
		ID:           uuid.New(),
		Lat:          in.Lat,
		Lon:          in.Lon,
		City:         in.City,
		District:     in.District,
		TemperatureC: in.TemperatureC,
		Sky:          in.Sky,
		HumidityPct:  in.HumidityPct,
		RadiusM:      in.RadiusM,
		LocalTime:    localTime,
	}
}
