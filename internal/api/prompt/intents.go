package prompt

import (
	"strings"

	"github.com/FACorreiaa/paragourmet/internal/types"
)

type intentRule struct {
	when   func(signals) bool
	labels []string
}

// intentRules are evaluated in order and independently; weather rules come first.
var intentRules = []intentRule{
	{when: signals.hot, labels: []string{"heat_relief", "hydration", "lighter_meal"}},
	{when: signals.cold, labels: []string{"warmth", "hearty_meal"}},
	{when: func(s signals) bool {
		sky := strings.ToLower(s.sky)
		return strings.Contains(sky, "sunny") || strings.Contains(sky, "clear")
	}, labels: []string{"very_sunny"}},
	{when: func(s signals) bool { return s.humidityPct >= 70 }, labels: []string{"high_humidity"}},
	{when: func(s signals) bool { return s.pois.HasAny(transitPOIs...) }, labels: []string{"portable", "quick_serve", "low_wait"}},
	{when: func(s signals) bool { return s.pois.HasAny(marketPOIs...) }, labels: []string{"street_food_friendly"}},
	{when: func(s signals) bool { return s.pois.HasAny(dessertPOIs...) }, labels: []string{"dessert_pairing_possible", "iced_beverage_pair"}},
	{when: func(s signals) bool { return s.pois.HasAny(outdoorPOIs...) }, labels: []string{"picnic_ready", "shareable"}},
	{when: func(s signals) bool { return s.pois.HasAny(workPOIs...) }, labels: []string{"rush_lunch", "budget_sensitive"}},
}

// DeriveIntents maps weather and POI presence to abstract intent labels, in rule order,
// each label at most once. It never names dishes.
func DeriveIntents(temperatureC float64, sky string, humidityPct int, pois types.POICounts) []string {
	s := signals{temperatureC: temperatureC, sky: sky, humidityPct: humidityPct, pois: pois}

	var intents []string
	for _, r := range intentRules {
		if r.when(s) {
			intents = append(intents, r.labels...)
		}
	}
	return dedupe(intents)
}
