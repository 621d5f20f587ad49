package scene

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/FACorreiaa/paragourmet/internal/types"
)

// ParseQuery validates the scene query parameters shared by the prompt and suggestion
// endpoints. Errors wrap types.ErrInvalidParam.
func ParseQuery(q url.Values, defaultRadius int) (types.SceneInput, error) {
	var in types.SceneInput
	var err error

	if in.Lat, err = requiredFloat(q, "lat"); err != nil {
		return in, err
	}
	if in.Lon, err = requiredFloat(q, "lon"); err != nil {
		return in, err
	}
	if in.Lat < -90 || in.Lat > 90 {
		return in, fmt.Errorf("%w: lat %v out of range", types.ErrInvalidParam, in.Lat)
	}
	if in.Lon < -180 || in.Lon > 180 {
		return in, fmt.Errorf("%w: lon %v out of range", types.ErrInvalidParam, in.Lon)
	}
	if in.City, err = requiredString(q, "city"); err != nil {
		return in, err
	}
	if in.District, err = requiredString(q, "district"); err != nil {
		return in, err
	}
	if in.TemperatureC, err = requiredFloat(q, "temp_c"); err != nil {
		return in, err
	}
	if in.Sky, err = requiredString(q, "sky"); err != nil {
		return in, err
	}
	if in.HumidityPct, err = parseHumidity(q.Get("humidity")); err != nil {
		return in, err
	}

	in.RadiusM = defaultRadius
	if in.RadiusM <= 0 {
		in.RadiusM = types.DefaultSearchRadiusM
	}
	if raw := strings.TrimSpace(q.Get("radius")); raw != "" {
		radius, err := strconv.Atoi(raw)
		if err != nil || radius <= 0 {
			return in, fmt.Errorf("%w: radius must be a positive integer, got %q", types.ErrInvalidParam, raw)
		}
		in.RadiusM = radius
	}

	return in, nil
}

func requiredString(q url.Values, key string) (string, error) {
	if !q.Has(key) {
		return "", fmt.Errorf("%w: missing %q", types.ErrInvalidParam, key)
	}
	return q.Get(key), nil
}

func requiredFloat(q url.Values, key string) (float64, error) {
	raw, err := requiredString(q, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number: %q", types.ErrInvalidParam, key, raw)
	}
	return v, nil
}

// parseHumidity accepts an integer percentage. Weather widgets report "N/A" when the
// reading is unavailable; that and an absent value count as 0.
func parseHumidity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "n/a") {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: humidity must be an integer, got %q", types.ErrInvalidParam, raw)
	}
	return v, nil
}
