package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/paragourmet/internal/types"
)

func pois(categories ...string) types.POICounts {
	out := types.POICounts{}
	for _, c := range categories {
		out = append(out, types.POICount{Category: c, Count: 1})
	}
	return out
}

func TestDeriveIntents_HotSunnyHumidCafe(t *testing.T) {
	got := DeriveIntents(30.0, "sunny", 70, types.POICounts{{Category: "cafe", Count: 5}})

	assert.Equal(t, []string{
		"heat_relief", "hydration", "lighter_meal",
		"very_sunny", "high_humidity",
		"dessert_pairing_possible", "iced_beverage_pair",
	}, got)
}

func TestDeriveIntents_Cold(t *testing.T) {
	got := DeriveIntents(5.0, "cloudy", 40, types.POICounts{{Category: "bakery", Count: 3}})

	assert.Equal(t, []string{"warmth", "hearty_meal", "dessert_pairing_possible", "iced_beverage_pair"}, got)
	assert.NotContains(t, got, "very_sunny")
	assert.NotContains(t, got, "high_humidity")
}

func TestDeriveIntents_Rules(t *testing.T) {
	tests := []struct {
		name     string
		temp     float64
		sky      string
		humidity int
		pois     types.POICounts
		want     []string
	}{
		{"mild and empty", 18, "cloudy", 50, nil, []string{}},
		{"just below hot", 26.99, "overcast", 0, nil, []string{}},
		{"hot boundary", 27, "overcast", 0, nil, []string{"heat_relief", "hydration", "lighter_meal"}},
		{"just above cold", 5.01, "overcast", 0, nil, []string{}},
		{"clear sky is case insensitive", 15, "Mostly CLEAR", 0, nil, []string{"very_sunny"}},
		{"humidity boundary", 15, "rain", 70, nil, []string{"high_humidity"}},
		{"humidity below", 15, "rain", 69, nil, []string{}},
		{"subway", 15, "rain", 0, pois("subway_entrance"), []string{"portable", "quick_serve", "low_wait"}},
		{"both transit kinds emit once", 15, "rain", 0, pois("bus_stop", "subway_entrance"), []string{"portable", "quick_serve", "low_wait"}},
		{"supermarket", 15, "rain", 0, pois("supermarket"), []string{"street_food_friendly"}},
		{"convenience alone does nothing", 15, "rain", 0, pois("convenience"), []string{}},
		{"river", 15, "rain", 0, pois("river"), []string{"picnic_ready", "shareable"}},
		{"university", 15, "rain", 0, pois("university"), []string{"rush_lunch", "budget_sensitive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveIntents(tt.temp, tt.sky, tt.humidity, tt.pois)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveIntents_EverythingFires(t *testing.T) {
	all := pois("bus_stop", "marketplace", "cafe", "park", "office")
	got := DeriveIntents(35, "sunny", 90, all)

	assert.Equal(t, []string{
		"heat_relief", "hydration", "lighter_meal", "very_sunny", "high_humidity",
		"portable", "quick_serve", "low_wait", "street_food_friendly",
		"dessert_pairing_possible", "iced_beverage_pair", "picnic_ready", "shareable",
		"rush_lunch", "budget_sensitive",
	}, got)
}

func TestDeriveIntents_Idempotent(t *testing.T) {
	in := pois("bus_stop", "cafe")
	assert.Equal(t, DeriveIntents(28, "clear", 75, in), DeriveIntents(28, "clear", 75, in))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{}, dedupe(nil))
}
